package transport

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrTimeout(t *testing.T) {
	require.True(t, os.IsTimeout(ErrTimeout))
	require.EqualError(t, ErrTimeout, "read timeout")
}

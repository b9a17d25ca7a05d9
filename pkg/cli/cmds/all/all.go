// Package all imports all command providers for the interactive shell.
package all

import (
	_ "github.com/robotalks/vmu.go/pkg/cli/cmds/vmu"
)

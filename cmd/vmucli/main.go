package main

import (
	"github.com/robotalks/vmu.go/pkg/cli/sh"
	"github.com/robotalks/vmu.go/pkg/transport/serial"
	"github.com/robotalks/vmu.go/pkg/transport/usb"

	_ "github.com/robotalks/vmu.go/pkg/cli/cmds/all"
)

func init() {
	serial.SetupFlags()
	usb.SetupFlags()
}

func main() {
	sh.Main()
}

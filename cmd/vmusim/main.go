package main

//go-build: CGO_ENABLED=0

import (
	"flag"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robotalks/vmu.go/pkg/protocol"
	"github.com/robotalks/vmu.go/pkg/sim"
)

var (
	streams   = "gyro"
	count     int
	interval  = 10 * time.Millisecond
	junkEvery int
)

func init() {
	flag.StringVar(&streams, "streams", streams, "Comma separated streams to enable: accel,gyro,mag,quat,euler,heading.")
	flag.IntVar(&count, "count", count, "Chunks to emit, 0 for unlimited.")
	flag.DurationVar(&interval, "interval", interval, "Delay between chunks.")
	flag.IntVar(&junkEvery, "junk", junkEvery, "Inject noise bytes every N chunks, 0 to disable.")
}

func streamType(name string) (protocol.MsgType, bool) {
	switch name {
	case "accel", "a":
		return protocol.MsgAccel, true
	case "gyro", "g":
		return protocol.MsgGyro, true
	case "mag", "c":
		return protocol.MsgMag, true
	case "quat", "q":
		return protocol.MsgQuat, true
	case "euler", "e":
		return protocol.MsgEuler, true
	case "heading", "h":
		return protocol.MsgHeading, true
	}
	return 0, false
}

func main() {
	flag.Parse()

	dev := sim.NewDevice()
	dev.Status.Streams = protocol.Streams{}
	for _, name := range strings.Split(streams, ",") {
		typ, ok := streamType(name)
		if !ok {
			log.Fatalf("unknown stream %q", name)
		}
		dev.Status.Streams.Toggle(typ)
	}

	buf := make([]byte, 64)
	for n := 0; count == 0 || n < count; n++ {
		if junkEvery > 0 && n%junkEvery == junkEvery-1 {
			dev.Inject([]byte{0x01, 0xde, 0xad})
		}
		rn, err := dev.Read(buf)
		if err != nil {
			log.Fatalln(err)
		}
		if _, err = os.Stdout.Write(buf[:rn]); err != nil {
			log.Fatalln(err)
		}
		time.Sleep(interval)
	}
}

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/robotalks/vmu.go/pkg/driver"
	"github.com/robotalks/vmu.go/pkg/protocol"
	"github.com/robotalks/vmu.go/pkg/sim"
	"github.com/robotalks/vmu.go/pkg/transport/serial"
	"github.com/robotalks/vmu.go/pkg/transport/usb"
)

var (
	useUSB     bool
	useSim     bool
	useStdin   bool
	streamName = "gyro"
	count      int
	outputJSON bool
	configure  = true
)

func init() {
	serial.SetupFlags()
	usb.SetupFlags()
	flag.BoolVar(&useUSB, "usb", useUSB, "Use raw USB instead of serial.")
	flag.BoolVar(&useSim, "sim", useSim, "Use a simulated device.")
	flag.BoolVar(&useStdin, "stdin", useStdin, "Read the frame stream from stdin.")
	flag.StringVar(&streamName, "type", streamName, "Motion stream to monitor: accel, gyro, mag or euler.")
	flag.IntVar(&count, "count", count, "Samples to read, 0 for unlimited.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print samples in JSON.")
	flag.BoolVar(&configure, "configure", configure, "Configure the device to stream the monitored type.")
}

// readOnly adapts a plain stream for the driver. Command bytes are
// dropped, there is no device behind the stream.
type readOnly struct {
	io.Reader
}

func (readOnly) Write(p []byte) (int, error) {
	return len(p), nil
}

func streamType(name string) (protocol.MsgType, bool) {
	switch name {
	case "accel", "a":
		return protocol.MsgAccel, true
	case "gyro", "g":
		return protocol.MsgGyro, true
	case "mag", "c":
		return protocol.MsgMag, true
	case "euler", "e":
		return protocol.MsgEuler, true
	}
	return 0, false
}

func open() (io.ReadWriter, io.Closer) {
	switch {
	case useStdin:
		return readOnly{os.Stdin}, nil
	case useSim:
		dev := sim.NewDevice()
		return dev, dev
	case useUSB:
		conn, err := usb.NewConfig().Open()
		if err != nil {
			log.Fatalln(err)
		}
		return conn, conn
	default:
		conn, err := serial.NewConfig().Open()
		if err != nil {
			log.Fatalln(err)
		}
		return conn, conn
	}
}

func main() {
	flag.Parse()
	log.SetFlags(log.Lmicroseconds)

	typ, ok := streamType(streamName)
	if !ok {
		log.Fatalf("unknown stream type %q", streamName)
	}

	rw, closer := open()
	if closer != nil {
		defer closer.Close()
	}
	d := driver.New(rw)

	ctx := context.Background()
	if configure && !useStdin {
		desired := driver.BasicConfiguration()
		desired.Streams = protocol.Streams{}
		desired.Streams.Toggle(typ)
		if err := d.Configure(ctx, desired); err != nil {
			log.Fatalln(err)
		}
	}

	for n := 0; count == 0 || n < count; n++ {
		sample, err := d.ReadSample(ctx, typ)
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Fatalln(err)
		}
		if outputJSON {
			out, err := json.Marshal(sample)
			if err != nil {
				log.Fatalln(err)
			}
			fmt.Println(string(out))
			continue
		}
		log.Printf("[%s] t=%dms x=%g y=%g z=%g", typ, sample.Timestamp, sample.X, sample.Y, sample.Z)
	}
}

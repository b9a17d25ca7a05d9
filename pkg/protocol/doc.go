// Package protocol implements the VMU931 wire protocol.
package protocol

// The VMU931 streams framed binary messages over a byte-oriented
// transport (USB bulk endpoint or serial port). Every frame carries a
// start marker, a declared length, an ASCII type tag, the payload and
// a terminator byte. The protocol has no checksum; it relies on the
// marker/terminator pair and resynchronization to recover from stream
// corruption.
//
// Producer: VMU931 firmware
// Consumer: driver session layer

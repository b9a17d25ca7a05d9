package protocol

import "bytes"

// Scanner extracts frames from a raw byte stream fed in arbitrary
// chunks. It owns an accumulating buffer which persists across feeds,
// so a frame split over multiple transport reads is recovered once
// all of its bytes arrived. A Scanner is not safe for concurrent use.
type Scanner struct {
	buf []byte
}

// ScanResult indicates the result after one scan pass.
type ScanResult struct {
	Frame   *Frame // matched frame, nil when more bytes are needed
	Resyncs int    // spurious start markers dropped
	Skipped int    // valid frames of other types consumed
}

// Feed appends bytes read from the transport.
func (s *Scanner) Feed(p []byte) {
	s.buf = append(s.buf, p...)
}

// Buffered returns the number of bytes not yet consumed.
func (s *Scanner) Buffered() int {
	return len(s.buf)
}

// Reset drops all buffered bytes.
func (s *Scanner) Reset() {
	s.buf = s.buf[:0]
}

// Scan searches buffered bytes for the next frame with type tag want.
// A nil Frame in the result means no complete frame of that type is
// buffered yet and more bytes must be fed. Corrupt stretches are
// resynchronized past and complete frames of other types are consumed,
// both silently; neither is ever an error.
func (s *Scanner) Scan(want MsgType) (r ScanResult) {
	i := 0
	for {
		j := bytes.IndexByte(s.buf[i:], startMarker)
		if j < 0 {
			// all scanned bytes are junk
			s.consume(len(s.buf))
			return
		}
		k := i + j
		if len(s.buf)-k-1 < scanAhead {
			// not enough bytes after the marker to qualify yet
			s.consume(k)
			return
		}
		declared := int(s.buf[k+1])
		if declared < minFrameLen {
			r.Resyncs++
			i = k + 1
			continue
		}
		if k+declared > len(s.buf) {
			// frame extends beyond buffered bytes
			s.consume(k)
			return
		}
		if s.buf[k+declared-1] != terminator {
			// spurious start marker, resync from the next byte
			r.Resyncs++
			i = k + 1
			continue
		}
		if MsgType(s.buf[k+2]) != want {
			// valid frame of another type, drop the whole span
			r.Skipped++
			i = k + declared
			continue
		}
		payload := make([]byte, declared-minFrameLen)
		copy(payload, s.buf[k+headerLen:])
		r.Frame = &Frame{Type: want, Payload: payload}
		s.consume(k + declared)
		return
	}
}

// consume drops the first n buffered bytes.
func (s *Scanner) consume(n int) {
	if n > 0 {
		s.buf = s.buf[:copy(s.buf, s.buf[n:])]
	}
}

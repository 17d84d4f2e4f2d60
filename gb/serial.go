package gb

import (
	"io"

	"github.com/golang/glog"
)

// Serial is the link port with nothing plugged in. Bytes the program sends
// with the internal clock go to out instead, which is how test programs print.
// Reference: https://gbdev.io/pandocs/Serial_Data_Transfer_(Link_Cable).html
type Serial struct {
	bus *Bus
	out io.Writer
}

// SC bits
const (
	scTransfer = 7
	scInternal = 0
)

// NewSerial creates a serial port writing to out, out may be nil.
func NewSerial(bus *Bus, out io.Writer) *Serial {
	return &Serial{bus: bus, out: out}
}

// Advance implements Peripheral. A transfer completes at the next step.
func (s *Serial) Advance(cycles int) {
	if !s.bus.ReadBit(SC, scTransfer) || !s.bus.ReadBit(SC, scInternal) {
		return
	}
	data := s.bus.Read(SB, Internal)
	if s.out != nil {
		if _, err := s.out.Write([]byte{data}); err != nil {
			glog.Warningf("Failed to write serial output: %v", err)
		}
	}
	// Nothing on the other end, it shifts in ones.
	s.bus.Write(SB, 0xFF, Internal)
	s.bus.WriteBit(SC, scTransfer, false)
	s.bus.RequestInterrupt(InterruptSerial)
}

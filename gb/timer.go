package gb

// Timer drives DIV, TIMA and the timer interrupt.
// Reference: https://gbdev.io/pandocs/Timer_and_Divider_Registers.html
type Timer struct {
	bus          *Bus
	divClock     int // cycles since DIV last incremented
	counterClock int // cycles since TIMA last incremented
}

// divThreshold is the number of cycles per DIV increment, 16384Hz.
const divThreshold = 256

// TAC bits
const (
	tacEnable = 2
	tacSpeed  = 0x03
)

// counterThresholds is the number of cycles per TIMA increment, indexed by the
// two speed bits of TAC: 4096Hz, 262144Hz, 65536Hz, 16384Hz.
var counterThresholds = [4]int{1024, 16, 64, 256}

// NewTimer creates a timer.
func NewTimer(bus *Bus) *Timer {
	return &Timer{bus: bus}
}

// Reset clears the internal cycle counters.
func (t *Timer) Reset() {
	t.divClock = 0
	t.counterClock = 0
}

// Tick advances the timer by cycles clock cycles, one at a time.
func (t *Timer) Tick(cycles int) {
	for i := 0; i < cycles; i++ {
		t.tick()
	}
}

func (t *Timer) tick() {
	t.divClock++
	if t.divClock == divThreshold {
		// DIV wraps from 0xFF to 0x00 without any side effect.
		t.bus.Write(DIV, t.bus.Read(DIV, Internal)+1, Internal)
		t.divClock = 0
	}
	if !t.bus.ReadBit(TAC, tacEnable) {
		return
	}
	t.counterClock++
	if t.counterClock < counterThresholds[t.bus.Read(TAC, Internal)&tacSpeed] {
		return
	}
	t.counterClock = 0
	counter := t.bus.Read(TIMA, Internal)
	if counter == 0xFF {
		t.bus.Write(TIMA, t.bus.Read(TMA, Internal), Internal)
		t.bus.RequestInterrupt(InterruptTimer)
		return
	}
	t.bus.Write(TIMA, counter+1, Internal)
}

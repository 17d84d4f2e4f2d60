package gb

// LCD runs the timing side of the display: the line counter, the STAT mode
// bits and the interrupts that come with them. It draws nothing.
// A frame is 154 lines of 456 cycles, lines 144-153 are the vertical blank.
// Reference: https://gbdev.io/pandocs/Rendering.html
type LCD struct {
	bus          *Bus
	cycle        int // cycles into the current line
	scanline     int
	currentFrame uint64
	lastFrame    uint64
	coincidence  bool // LY matched LYC at the last comparison
}

const (
	lineCycles     = 456
	visibleLines   = 144
	lines          = 154
	oamScanCycles  = 80
	transferCycles = 252

	// CyclesPerFrame is the number of clock cycles per frame, about 59.7 frames per second.
	CyclesPerFrame = lineCycles * lines
)

// LCDC, STAT bits
const (
	lcdcEnable      = 7
	statCoincidence = 2
	statLYCSelect   = 6
)

// STAT modes
const (
	modeHBlank   byte = 0
	modeVBlank   byte = 1
	modeOAMScan  byte = 2
	modeTransfer byte = 3
)

// NewLCD creates an LCD timing unit.
func NewLCD(bus *Bus) *LCD {
	return &LCD{bus: bus}
}

// Reset goes back to the first line.
func (l *LCD) Reset() {
	l.cycle = 0
	l.scanline = 0
	l.currentFrame = 0
	l.lastFrame = 0
	l.coincidence = false
}

// Advance implements Peripheral.
func (l *LCD) Advance(cycles int) {
	if !l.bus.ReadBit(LCDC, lcdcEnable) {
		// With the display off LY stays at 0 and STAT reports HBlank.
		l.cycle = 0
		l.scanline = 0
		l.coincidence = false
		l.bus.Write(LY, 0, Internal)
		l.setMode(modeHBlank)
		return
	}
	l.cycle += cycles
	for l.cycle >= lineCycles {
		l.cycle -= lineCycles
		l.scanline++
		if l.scanline == visibleLines {
			l.bus.RequestInterrupt(InterruptVBlank)
			l.currentFrame++
		}
		if l.scanline == lines {
			l.scanline = 0
		}
		l.bus.Write(LY, byte(l.scanline), Internal)
		l.compareLine()
	}
	// LYC may have been written since the last line change.
	l.compareLine()
	l.setMode(l.mode())
}

func (l *LCD) mode() byte {
	switch {
	case l.scanline >= visibleLines:
		return modeVBlank
	case l.cycle < oamScanCycles:
		return modeOAMScan
	case l.cycle < transferCycles:
		return modeTransfer
	}
	return modeHBlank
}

func (l *LCD) setMode(mode byte) {
	stat := l.bus.Read(STAT, Internal)
	l.bus.Write(STAT, stat&^0x03|mode, Internal)
}

// compareLine updates the coincidence flag and raises the STAT interrupt when
// a match begins.
func (l *LCD) compareLine() {
	match := l.bus.Read(LYC, Internal) == byte(l.scanline)
	l.bus.WriteBit(STAT, statCoincidence, match)
	if match && !l.coincidence && l.bus.ReadBit(STAT, statLYCSelect) {
		l.bus.RequestInterrupt(InterruptLCDStat)
	}
	l.coincidence = match
}

// Frame reports whether a frame was completed since the last call.
func (l *LCD) Frame() bool {
	if l.lastFrame < l.currentFrame {
		l.lastFrame = l.currentFrame
		return true
	}
	return false
}

// Scanline returns the current line.
func (l *LCD) Scanline() int {
	return l.scanline
}

package gb

import "testing"

// newTestROM creates a two bank ROM image with the given header bytes and
// the code segments copied at their addresses.
func newTestROM(cartridgeType, ramCode byte, segments map[uint16][]byte) []byte {
	rom := make([]byte, 2*romBankSize)
	rom[headerType] = cartridgeType
	rom[headerRAMSize] = ramCode
	for address, code := range segments {
		copy(rom[address:], code)
	}
	return rom
}

func newTestBus(t *testing.T, rom []byte, boot []byte) *Bus {
	t.Helper()
	cartridge, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	bus, err := NewBus(cartridge, boot, NewJoypad())
	if err != nil {
		t.Fatalf("NewBus: %v", err)
	}
	return bus
}

func newTestConsole(t *testing.T, rom []byte, boot []byte, options Options) *Console {
	t.Helper()
	cartridge, err := NewCartridge(rom)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	console, err := NewConsole(cartridge, boot, options)
	if err != nil {
		t.Fatalf("NewConsole: %v", err)
	}
	return console
}

// newTestCPU creates a CPU running program from the start of work RAM.
func newTestCPU(t *testing.T, program ...byte) *CPU {
	t.Helper()
	bus := newTestBus(t, newTestROM(0x00, 0x00, nil), nil)
	for i, b := range program {
		bus.Write(wram0Start+uint16(i), b, Internal)
	}
	cpu := NewCPU(bus)
	cpu.r.pc = wram0Start
	cpu.r.sp = 0xFFFE
	return cpu
}

// mustStep executes one instruction and checks the cycles it took.
func mustStep(t *testing.T, cpu *CPU, wantCycles int) {
	t.Helper()
	cycles, err := cpu.Step()
	if err != nil {
		t.Fatalf("Step: %v", err)
	}
	if cycles != wantCycles {
		t.Fatalf("cycles after %s: got=%d, want=%d", cpu.LastExecution(), cycles, wantCycles)
	}
}

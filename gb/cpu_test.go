package gb

import (
	"errors"
	"math/rand"
	"testing"
)

func TestStackRoundTrip(t *testing.T) {
	values := []uint16{0x0000, 0xFFFF, 0x8001, 0x00FF, 0xFF00}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 64; i++ {
		values = append(values, uint16(r.Intn(0x10000)))
	}
	for _, v := range values {
		cpu := newTestCPU(t)
		cpu.push16(v)
		if cpu.r.sp != 0xFFFC {
			t.Fatalf("SP after push: got=0x%04x, want=0xfffc", cpu.r.sp)
		}
		if got := cpu.bus.Read(0xFFFD, Internal); got != byte(v>>8) {
			t.Errorf("high byte of 0x%04x: got=0x%02x, want=0x%02x", v, got, byte(v>>8))
		}
		if got := cpu.bus.Read(0xFFFC, Internal); got != byte(v) {
			t.Errorf("low byte of 0x%04x: got=0x%02x, want=0x%02x", v, got, byte(v))
		}
		if got := cpu.pop16(); got != v {
			t.Errorf("pop: got=0x%04x, want=0x%04x", got, v)
		}
		if cpu.r.sp != 0xFFFE {
			t.Errorf("SP after pop: got=0x%04x, want=0xfffe", cpu.r.sp)
		}
	}
}

func TestPushPopPairs(t *testing.T) {
	cpu := newTestCPU(t,
		0x01, 0x34, 0x12, // LD BC,0x1234
		0xC5,             // PUSH BC
		0xD1,             // POP DE
		0x01, 0xFF, 0xFF, // LD BC,0xFFFF
		0xC5, // PUSH BC
		0xF1, // POP AF
	)
	mustStep(t, cpu, 12)
	mustStep(t, cpu, 16)
	mustStep(t, cpu, 12)
	if got := cpu.r.de(); got != 0x1234 {
		t.Errorf("DE: got=0x%04x, want=0x1234", got)
	}
	mustStep(t, cpu, 12)
	mustStep(t, cpu, 16)
	mustStep(t, cpu, 12)
	// The low nibble of F doesn't exist.
	if got := cpu.r.af(); got != 0xFFF0 {
		t.Errorf("AF: got=0x%04x, want=0xfff0", got)
	}
}

func TestALUFlags(t *testing.T) {
	tests := []struct {
		name    string
		a       byte
		f       byte
		program []byte
		wantA   byte
		wantF   byte
	}{
		{"ADD overflow", 0xFF, 0, []byte{0xC6, 0x01}, 0x00, flagZ | flagH | flagC},
		{"ADD half carry", 0x0F, 0, []byte{0xC6, 0x01}, 0x10, flagH},
		{"ADC carry in", 0x01, flagC, []byte{0xCE, 0x01}, 0x03, 0},
		{"SUB equal", 0x42, 0, []byte{0xD6, 0x42}, 0x00, flagZ | flagN},
		{"SUB borrow", 0x10, 0, []byte{0xD6, 0x01}, 0x0F, flagN | flagH},
		{"SUB underflow", 0x00, 0, []byte{0xD6, 0x01}, 0xFF, flagN | flagH | flagC},
		{"SBC carry in", 0x10, flagC, []byte{0xDE, 0x0F}, 0x00, flagZ | flagN | flagH},
		{"AND", 0xF0, flagC, []byte{0xE6, 0x0F}, 0x00, flagZ | flagH},
		{"XOR A", 0x5A, flagC | flagN, []byte{0xAF}, 0x00, flagZ},
		{"OR", 0x50, 0, []byte{0xF6, 0x05}, 0x55, 0},
		{"CP keeps A", 0x20, 0, []byte{0xFE, 0x30}, 0x20, flagN | flagC},
		{"INC keeps carry", 0xFF, flagC, []byte{0x3C}, 0x00, flagZ | flagH | flagC},
		{"DEC half borrow", 0x10, 0, []byte{0x3D}, 0x0F, flagN | flagH},
		{"DAA after ADD", 0x15, 0, []byte{0xC6, 0x27, 0x27}, 0x42, 0},
		{"DAA after ADD carry", 0x99, 0, []byte{0xC6, 0x01, 0x27}, 0x00, flagZ | flagC},
		{"DAA after SUB", 0x42, 0, []byte{0xD6, 0x15, 0x27}, 0x27, flagN},
		{"RLCA clears Z", 0x80, 0, []byte{0x07}, 0x01, flagC},
		{"RRA through carry", 0x01, flagC, []byte{0x1F}, 0x80, flagC},
		{"CPL", 0x0F, 0, []byte{0x2F}, 0xF0, flagN | flagH},
		{"SCF", 0x00, flagN | flagH, []byte{0x37}, 0x00, flagC},
		{"CCF", 0x00, flagC, []byte{0x3F}, 0x00, 0},
		{"SWAP", 0xF1, 0, []byte{0xCB, 0x37}, 0x1F, 0},
		{"SRL", 0x01, 0, []byte{0xCB, 0x3F}, 0x00, flagZ | flagC},
		{"SRA keeps sign", 0x81, 0, []byte{0xCB, 0x2F}, 0xC0, flagC},
		{"BIT set", 0x80, flagC, []byte{0xCB, 0x7F}, 0x80, flagH | flagC},
		{"BIT clear", 0x7F, 0, []byte{0xCB, 0x7F}, 0x7F, flagZ | flagH},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cpu := newTestCPU(t, test.program...)
			cpu.r.a = test.a
			cpu.r.f = test.f
			end := wram0Start + uint16(len(test.program))
			for cpu.r.pc < end {
				if _, err := cpu.Step(); err != nil {
					t.Fatalf("Step: %v", err)
				}
			}
			if cpu.r.a != test.wantA {
				t.Errorf("A: got=0x%02x, want=0x%02x", cpu.r.a, test.wantA)
			}
			if cpu.r.f != test.wantF {
				t.Errorf("F: got=%08b, want=%08b", cpu.r.f, test.wantF)
			}
		})
	}
}

func TestAddHL(t *testing.T) {
	cpu := newTestCPU(t,
		0x21, 0xFF, 0x0F, // LD HL,0x0FFF
		0x01, 0x01, 0x00, // LD BC,0x0001
		0x09,             // ADD HL,BC
		0x01, 0x00, 0xF0, // LD BC,0xF000
		0x09, // ADD HL,BC
	)
	cpu.r.f = flagZ
	mustStep(t, cpu, 12)
	mustStep(t, cpu, 12)
	mustStep(t, cpu, 8)
	if cpu.r.hl() != 0x1000 || cpu.r.f != flagZ|flagH {
		t.Errorf("ADD HL: got HL=0x%04x, F=%08b, want HL=0x1000, F=%08b", cpu.r.hl(), cpu.r.f, flagZ|flagH)
	}
	mustStep(t, cpu, 12)
	mustStep(t, cpu, 8)
	if cpu.r.hl() != 0x0000 || cpu.r.f != flagZ|flagC {
		t.Errorf("ADD HL: got HL=0x%04x, F=%08b, want HL=0x0000, F=%08b", cpu.r.hl(), cpu.r.f, flagZ|flagC)
	}
}

func TestBranchCycles(t *testing.T) {
	tests := []struct {
		name    string
		f       byte
		program []byte
		cycles  int
		pc      uint16
	}{
		{"NOP", 0, []byte{0x00}, 4, 0xC001},
		{"JR", 0, []byte{0x18, 0x05}, 12, 0xC007},
		{"JR back to itself", 0, []byte{0x18, 0xFE}, 12, 0xC000},
		{"JR NZ taken", 0, []byte{0x20, 0x02}, 12, 0xC004},
		{"JR NZ not taken", flagZ, []byte{0x20, 0x02}, 8, 0xC002},
		{"JP", 0, []byte{0xC3, 0x50, 0x01}, 16, 0x0150},
		{"JP C taken", flagC, []byte{0xDA, 0x00, 0xD0}, 16, 0xD000},
		{"JP C not taken", 0, []byte{0xDA, 0x00, 0xD0}, 12, 0xC003},
		{"CALL", 0, []byte{0xCD, 0x00, 0xD0}, 24, 0xD000},
		{"CALL NZ not taken", flagZ, []byte{0xC4, 0x00, 0xD0}, 12, 0xC003},
		{"RET NZ not taken", flagZ, []byte{0xC0}, 8, 0xC001},
		{"RST 38", 0, []byte{0xFF}, 16, 0x0038},
		{"LD (HL),d8", 0, []byte{0x36, 0x00}, 12, 0xC002},
		{"CB RLC B", 0, []byte{0xCB, 0x00}, 8, 0xC002},
		{"CB RLC (HL)", 0, []byte{0xCB, 0x06}, 16, 0xC002},
		{"CB BIT 0,(HL)", 0, []byte{0xCB, 0x46}, 12, 0xC002},
		{"STOP", 0, []byte{0x10, 0x00}, 4, 0xC002},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cpu := newTestCPU(t, test.program...)
			cpu.r.f = test.f
			cpu.r.setHL(0xC100)
			mustStep(t, cpu, test.cycles)
			if cpu.r.pc != test.pc {
				t.Errorf("PC: got=0x%04x, want=0x%04x", cpu.r.pc, test.pc)
			}
		})
	}
}

func TestCallReturn(t *testing.T) {
	cpu := newTestCPU(t, 0xCD, 0x10, 0xC0) // CALL 0xC010
	cpu.bus.Write(0xC010, 0xC9, Internal)  // RET
	mustStep(t, cpu, 24)
	if got := cpu.bus.Read16(cpu.r.sp, Internal); got != 0xC003 {
		t.Errorf("return address: got=0x%04x, want=0xc003", got)
	}
	mustStep(t, cpu, 16)
	if cpu.r.pc != 0xC003 || cpu.r.sp != 0xFFFE {
		t.Errorf("after RET: got PC=0x%04x, SP=0x%04x, want PC=0xc003, SP=0xfffe", cpu.r.pc, cpu.r.sp)
	}
}

func TestLoads(t *testing.T) {
	cpu := newTestCPU(t,
		0x21, 0x00, 0xD0, // LD HL,0xD000
		0x3E, 0x7E, // LD A,0x7E
		0x22,       // LD (HL+),A
		0x32,       // LD (HL-),A
		0x46,       // LD B,(HL)
		0xE0, 0x80, // LDH (0x80),A
		0xEA, 0x34, 0xD1, // LD (0xD134),A
		0x08, 0x40, 0xD0, // LD (0xD040),SP
	)
	for _, cycles := range []int{12, 8, 8, 8, 8, 12, 16, 20} {
		mustStep(t, cpu, cycles)
	}
	if cpu.r.hl() != 0xD000 {
		t.Errorf("HL: got=0x%04x, want=0xd000", cpu.r.hl())
	}
	if cpu.r.b != 0x7E {
		t.Errorf("B: got=0x%02x, want=0x7e", cpu.r.b)
	}
	for _, address := range []uint16{0xD000, 0xD001, 0xFF80, 0xD134} {
		if got := cpu.bus.Read(address, Internal); got != 0x7E {
			t.Errorf("0x%04x: got=0x%02x, want=0x7e", address, got)
		}
	}
	if got := cpu.bus.Read16(0xD040, Internal); got != 0xFFFE {
		t.Errorf("stored SP: got=0x%04x, want=0xfffe", got)
	}
}

func TestIllegalOpcode(t *testing.T) {
	for _, opcode := range []byte{0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD} {
		cpu := newTestCPU(t, opcode)
		_, err := cpu.Step()
		if !errors.Is(err, ErrIllegalOpcode) {
			t.Errorf("opcode 0x%02x: got=%v, want=%v", opcode, err, ErrIllegalOpcode)
		}
		if cpu.r.pc != wram0Start {
			t.Errorf("opcode 0x%02x moved PC to 0x%04x", opcode, cpu.r.pc)
		}
	}
}

func TestDefinedOpcodes(t *testing.T) {
	cpu := newTestCPU(t)
	illegal := map[int]bool{0xCB: true, 0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true,
		0xEB: true, 0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true}
	for opcode, instruction := range cpu.instructions {
		if illegal[opcode] {
			continue
		}
		if instruction.execute == nil || instruction.size == 0 || instruction.cycles == 0 {
			t.Errorf("opcode 0x%02x is not defined: %+v", opcode, instruction)
		}
	}
	for opcode, instruction := range cpu.prefixed {
		if instruction.execute == nil || instruction.size != 2 {
			t.Errorf("opcode CB 0x%02x is not defined", opcode)
		}
	}
}

func TestHalt(t *testing.T) {
	cpu := newTestCPU(t, 0x76, 0x00) // HALT, NOP
	mustStep(t, cpu, 4)
	if !cpu.Halted() {
		t.Fatalf("CPU should be halted")
	}
	for i := 0; i < 3; i++ {
		mustStep(t, cpu, haltCycles)
		if cpu.r.pc != 0xC001 {
			t.Fatalf("PC moved while halted: 0x%04x", cpu.r.pc)
		}
	}
}

func TestSkipBoot(t *testing.T) {
	cpu := newTestCPU(t)
	cpu.skipBoot()
	for _, test := range []struct {
		name      string
		got, want uint16
	}{
		{"AF", cpu.r.af(), 0x01B0},
		{"BC", cpu.r.bc(), 0x0013},
		{"DE", cpu.r.de(), 0x00D8},
		{"HL", cpu.r.hl(), 0x014D},
		{"SP", cpu.r.sp, 0xFFFE},
		{"PC", cpu.PC(), 0x0100},
	} {
		if test.got != test.want {
			t.Errorf("%s: got=0x%04x, want=0x%04x", test.name, test.got, test.want)
		}
	}
}

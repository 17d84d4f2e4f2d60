package gb

import (
	"errors"
	"fmt"
)

// CPU emulates the Sharp SM83, the 8080/Z80 relative inside the handheld.
// References:
//   https://gbdev.io/pandocs/CPU_Registers_and_Flags.html
//   https://gbdev.io/gb-opcodes/optables/

// ClockSpeed is the number of clock cycles per second.
const ClockSpeed = 4194304

const (
	haltCycles = 4
	prefixCB   = 0xCB
)

// ErrIllegalOpcode is returned when the CPU fetches an opcode the hardware
// doesn't define. The real CPU locks up on these.
var ErrIllegalOpcode = errors.New("illegal opcode")

// Flag bits of the F register, the low nibble is always zero.
const (
	flagZ byte = 1 << 7 // zero
	flagN byte = 1 << 6 // subtract
	flagH byte = 1 << 5 // half carry
	flagC byte = 1 << 4 // carry
)

type registers struct {
	a, f byte
	b, c byte
	d, e byte
	h, l byte
	sp   uint16 // Stack pointer
	pc   uint16 // Program counter
	ime  bool   // Interrupt master enable
}

func (r *registers) af() uint16 { return uint16(r.a)<<8 | uint16(r.f) }
func (r *registers) bc() uint16 { return uint16(r.b)<<8 | uint16(r.c) }
func (r *registers) de() uint16 { return uint16(r.d)<<8 | uint16(r.e) }
func (r *registers) hl() uint16 { return uint16(r.h)<<8 | uint16(r.l) }

func (r *registers) setAF(x uint16) { r.a, r.f = byte(x>>8), byte(x)&0xF0 }
func (r *registers) setBC(x uint16) { r.b, r.c = byte(x>>8), byte(x) }
func (r *registers) setDE(x uint16) { r.d, r.e = byte(x>>8), byte(x) }
func (r *registers) setHL(x uint16) { r.h, r.l = byte(x>>8), byte(x) }

type instruction struct {
	mnemonic     string
	size         uint16
	cycles       int
	branchCycles int // cycles when a conditional jump, call or return is taken
	execute      func(operand uint16)
}

type execution struct {
	pc       uint16
	opcode   byte
	prefixed bool
	operand  uint16
	mnemonic string
}

type CPU struct {
	r            registers
	bus          *Bus
	instructions [256]instruction
	prefixed     [256]instruction
	halted       bool
	servicing    bool // set while an interrupt handler runs, until RETI
	branched     bool
	last         execution // For debug
}

// NewCPU creates a new CPU in the power-on state.
func NewCPU(bus *Bus) *CPU {
	c := &CPU{bus: bus}
	c.instructions = c.createInstructions()
	c.prefixed = c.createPrefixedInstructions()
	c.Reset()
	return c
}

// Reset puts the CPU in the power-on state, the boot program sets up the rest.
func (c *CPU) Reset() {
	c.r = registers{}
	c.halted = false
	c.servicing = false
	c.branched = false
	c.last = execution{}
}

// skipBoot sets the registers the way the DMG boot program leaves them.
func (c *CPU) skipBoot() {
	c.r.setAF(0x01B0)
	c.r.setBC(0x0013)
	c.r.setDE(0x00D8)
	c.r.setHL(0x014D)
	c.r.sp = 0xFFFE
	c.r.pc = 0x0100
}

// PC returns the program counter.
func (c *CPU) PC() uint16 {
	return c.r.pc
}

// Halted reports whether the CPU waits for an interrupt.
func (c *CPU) Halted() bool {
	return c.halted
}

// LastExecution describes the last executed instruction.
func (c *CPU) LastExecution() string {
	if c.last.mnemonic == "" {
		return "none"
	}
	prefix := ""
	if c.last.prefixed {
		prefix = "CB "
	}
	return fmt.Sprintf("PC=0x%04x, opcode=%s0x%02x, mnemonic=%s, operand=0x%04x",
		c.last.pc, prefix, c.last.opcode, c.last.mnemonic, c.last.operand)
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC=0x%04x, SP=0x%04x, AF=0x%04x, BC=0x%04x, DE=0x%04x, HL=0x%04x, IME=%t, halted=%t",
		c.r.pc, c.r.sp, c.r.af(), c.r.bc(), c.r.de(), c.r.hl(), c.r.ime, c.halted)
}

func (c *CPU) read(address uint16) byte {
	return c.bus.Read(address, Program)
}

func (c *CPU) write(address uint16, data byte) {
	c.bus.Write(address, data, Program)
}

func (c *CPU) flag(f byte) bool {
	return c.r.f&f != 0
}

func (c *CPU) setFlag(f byte, on bool) {
	if on {
		c.r.f |= f
	} else {
		c.r.f &^= f
	}
}

// setZNHC sets all four flags.
func (c *CPU) setZNHC(z, n, h, cy bool) {
	c.r.f = 0
	c.setFlag(flagZ, z)
	c.setFlag(flagN, n)
	c.setFlag(flagH, h)
	c.setFlag(flagC, cy)
}

// push pushes data to stack.
func (c *CPU) push(x byte) {
	c.r.sp--
	c.write(c.r.sp, x)
}

// pop pops data from stack.
func (c *CPU) pop() byte {
	x := c.read(c.r.sp)
	c.r.sp++
	return x
}

// push16 pushes the high byte first so it ends up at the higher address.
func (c *CPU) push16(x uint16) {
	c.push(byte(x >> 8))
	c.push(byte(x))
}

// pop16 pops the low byte first.
func (c *CPU) pop16() uint16 {
	l := c.pop()
	h := c.pop()
	return uint16(h)<<8 | uint16(l)
}

// Step executes one instruction and returns the cycles it took.
func (c *CPU) Step() (int, error) {
	if c.halted {
		return haltCycles, nil
	}
	pc := c.r.pc
	opcode := c.read(pc)
	instruction := c.instructions[opcode]
	prefixed := opcode == prefixCB
	if prefixed {
		opcode = c.read(pc + 1)
		instruction = c.prefixed[opcode]
	}
	if instruction.execute == nil {
		return 0, fmt.Errorf("tried to execute 0x%02x at 0x%04x: %w", opcode, pc, ErrIllegalOpcode)
	}
	var operand uint16
	if !prefixed {
		switch instruction.size {
		case 2:
			operand = uint16(c.read(pc + 1))
		case 3:
			operand = c.bus.Read16(pc+1, Program)
		}
	}
	c.r.pc += instruction.size
	c.last = execution{pc, opcode, prefixed, operand, instruction.mnemonic}
	c.branched = false
	instruction.execute(operand)
	if c.branched && instruction.branchCycles > 0 {
		return instruction.branchCycles, nil
	}
	return instruction.cycles, nil
}

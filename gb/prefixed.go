package gb

import "fmt"

// Instructions behind the 0xCB prefix. The table is regular:
//   bits 7-6: 00 rotate/shift/swap, 01 BIT, 10 RES, 11 SET
//   bits 5-3: operation or bit number
//   bits 2-0: register, 6 is (HL)
// Every entry is 2 bytes long including the prefix and has no operand.
func (c *CPU) createPrefixedInstructions() [256]instruction {
	shifts := [8]struct {
		mnemonic string
		op       func(byte) byte
	}{
		{"RLC", c.rlc},
		{"RRC", c.rrc},
		{"RL", c.rl},
		{"RR", c.rr},
		{"SLA", c.sla},
		{"SRA", c.sra},
		{"SWAP", c.swap},
		{"SRL", c.srl},
	}
	var t [256]instruction
	for opcode := 0; opcode < 256; opcode++ {
		r := opcode & 0x07
		y := (opcode >> 3) & 0x07
		cycles := 8
		if r == regHLI {
			cycles = 16
		}
		switch opcode >> 6 {
		case 0:
			t[opcode] = instruction{fmt.Sprintf("%s %s", shifts[y].mnemonic, regNames[r]), 2, cycles, 0, c.shift(shifts[y].op, r)}
		case 1:
			// BIT only reads (HL).
			if r == regHLI {
				cycles = 12
			}
			t[opcode] = instruction{fmt.Sprintf("BIT %d,%s", y, regNames[r]), 2, cycles, 0, c.bit(uint(y), r)}
		case 2:
			t[opcode] = instruction{fmt.Sprintf("RES %d,%s", y, regNames[r]), 2, cycles, 0, c.res(uint(y), r)}
		case 3:
			t[opcode] = instruction{fmt.Sprintf("SET %d,%s", y, regNames[r]), 2, cycles, 0, c.set(uint(y), r)}
		}
	}
	return t
}

// shift applies a rotate/shift operation to a register in place.
func (c *CPU) shift(op func(byte) byte, i int) func(uint16) {
	return func(uint16) {
		c.setReg8(i, op(c.reg8(i)))
	}
}

// rotated sets the flags every rotate/shift leaves behind.
func (c *CPU) rotated(x byte, cy bool) byte {
	c.setZNHC(x == 0, false, false, cy)
	return x
}

// RLC - Rotate left, bit 7 to carry and bit 0.
func (c *CPU) rlc(x byte) byte {
	return c.rotated(x<<1|x>>7, x&0x80 != 0)
}

// RRC - Rotate right, bit 0 to carry and bit 7.
func (c *CPU) rrc(x byte) byte {
	return c.rotated(x>>1|x<<7, x&1 != 0)
}

// RL - Rotate left through carry.
func (c *CPU) rl(x byte) byte {
	return c.rotated(x<<1|c.carry(), x&0x80 != 0)
}

// RR - Rotate right through carry.
func (c *CPU) rr(x byte) byte {
	return c.rotated(x>>1|c.carry()<<7, x&1 != 0)
}

// SLA - Shift left arithmetic.
func (c *CPU) sla(x byte) byte {
	return c.rotated(x<<1, x&0x80 != 0)
}

// SRA - Shift right arithmetic, bit 7 stays.
func (c *CPU) sra(x byte) byte {
	return c.rotated(x>>1|x&0x80, x&1 != 0)
}

// SWAP - Swap nibbles.
func (c *CPU) swap(x byte) byte {
	return c.rotated(x<<4|x>>4, false)
}

// SRL - Shift right logical.
func (c *CPU) srl(x byte) byte {
	return c.rotated(x>>1, x&1 != 0)
}

// BIT n,r - Z is set when the bit is 0, C unaffected.
func (c *CPU) bit(n uint, i int) func(uint16) {
	return func(uint16) {
		c.setFlag(flagZ, (c.reg8(i)>>n)&1 == 0)
		c.setFlag(flagN, false)
		c.setFlag(flagH, true)
	}
}

// RES n,r - No flags.
func (c *CPU) res(n uint, i int) func(uint16) {
	return func(uint16) {
		c.setReg8(i, c.reg8(i)&^(1<<n))
	}
}

// SET n,r - No flags.
func (c *CPU) set(n uint, i int) func(uint16) {
	return func(uint16) {
		c.setReg8(i, c.reg8(i)|1<<n)
	}
}

package gb

// Operand encoding shared by the regular blocks of the opcode table.
const (
	regB = iota
	regC
	regD
	regE
	regH
	regL
	regHLI // (HL)
	regA
)

var regNames = [...]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

const (
	pairBC = iota
	pairDE
	pairHL
	pairSP
	pairAF
)

type condition int

const (
	condAlways condition = iota
	condNZ
	condZ
	condNC
	condC
)

func (c *CPU) createInstructions() [256]instruction {
	return [256]instruction{
		{"NOP", 1, 4, 0, c.nop},                        // 0x00
		{"LD BC,d16", 3, 12, 0, c.ld16(pairBC)},        // 0x01
		{"LD (BC),A", 1, 8, 0, c.ldIndirectA(pairBC)},  // 0x02
		{"INC BC", 1, 8, 0, c.inc16(pairBC)},           // 0x03
		{"INC B", 1, 4, 0, c.inc8(regB)},               // 0x04
		{"DEC B", 1, 4, 0, c.dec8(regB)},               // 0x05
		{"LD B,d8", 2, 8, 0, c.ldD8(regB)},             // 0x06
		{"RLCA", 1, 4, 0, c.rlca},                      // 0x07
		{"LD (a16),SP", 3, 20, 0, c.ldA16SP},           // 0x08
		{"ADD HL,BC", 1, 8, 0, c.addHL(pairBC)},        // 0x09
		{"LD A,(BC)", 1, 8, 0, c.ldAIndirect(pairBC)},  // 0x0A
		{"DEC BC", 1, 8, 0, c.dec16(pairBC)},           // 0x0B
		{"INC C", 1, 4, 0, c.inc8(regC)},               // 0x0C
		{"DEC C", 1, 4, 0, c.dec8(regC)},               // 0x0D
		{"LD C,d8", 2, 8, 0, c.ldD8(regC)},             // 0x0E
		{"RRCA", 1, 4, 0, c.rrca},                      // 0x0F
		{"STOP", 2, 4, 0, c.stop},                      // 0x10
		{"LD DE,d16", 3, 12, 0, c.ld16(pairDE)},        // 0x11
		{"LD (DE),A", 1, 8, 0, c.ldIndirectA(pairDE)},  // 0x12
		{"INC DE", 1, 8, 0, c.inc16(pairDE)},           // 0x13
		{"INC D", 1, 4, 0, c.inc8(regD)},               // 0x14
		{"DEC D", 1, 4, 0, c.dec8(regD)},               // 0x15
		{"LD D,d8", 2, 8, 0, c.ldD8(regD)},             // 0x16
		{"RLA", 1, 4, 0, c.rla},                        // 0x17
		{"JR r8", 2, 12, 0, c.jr(condAlways)},          // 0x18
		{"ADD HL,DE", 1, 8, 0, c.addHL(pairDE)},        // 0x19
		{"LD A,(DE)", 1, 8, 0, c.ldAIndirect(pairDE)},  // 0x1A
		{"DEC DE", 1, 8, 0, c.dec16(pairDE)},           // 0x1B
		{"INC E", 1, 4, 0, c.inc8(regE)},               // 0x1C
		{"DEC E", 1, 4, 0, c.dec8(regE)},               // 0x1D
		{"LD E,d8", 2, 8, 0, c.ldD8(regE)},             // 0x1E
		{"RRA", 1, 4, 0, c.rra},                        // 0x1F
		{"JR NZ,r8", 2, 8, 12, c.jr(condNZ)},           // 0x20
		{"LD HL,d16", 3, 12, 0, c.ld16(pairHL)},        // 0x21
		{"LD (HL+),A", 1, 8, 0, c.ldHLIncA},            // 0x22
		{"INC HL", 1, 8, 0, c.inc16(pairHL)},           // 0x23
		{"INC H", 1, 4, 0, c.inc8(regH)},               // 0x24
		{"DEC H", 1, 4, 0, c.dec8(regH)},               // 0x25
		{"LD H,d8", 2, 8, 0, c.ldD8(regH)},             // 0x26
		{"DAA", 1, 4, 0, c.daa},                        // 0x27
		{"JR Z,r8", 2, 8, 12, c.jr(condZ)},             // 0x28
		{"ADD HL,HL", 1, 8, 0, c.addHL(pairHL)},        // 0x29
		{"LD A,(HL+)", 1, 8, 0, c.ldAHLInc},            // 0x2A
		{"DEC HL", 1, 8, 0, c.dec16(pairHL)},           // 0x2B
		{"INC L", 1, 4, 0, c.inc8(regL)},               // 0x2C
		{"DEC L", 1, 4, 0, c.dec8(regL)},               // 0x2D
		{"LD L,d8", 2, 8, 0, c.ldD8(regL)},             // 0x2E
		{"CPL", 1, 4, 0, c.cpl},                        // 0x2F
		{"JR NC,r8", 2, 8, 12, c.jr(condNC)},           // 0x30
		{"LD SP,d16", 3, 12, 0, c.ld16(pairSP)},        // 0x31
		{"LD (HL-),A", 1, 8, 0, c.ldHLDecA},            // 0x32
		{"INC SP", 1, 8, 0, c.inc16(pairSP)},           // 0x33
		{"INC (HL)", 1, 12, 0, c.inc8(regHLI)},         // 0x34
		{"DEC (HL)", 1, 12, 0, c.dec8(regHLI)},         // 0x35
		{"LD (HL),d8", 2, 12, 0, c.ldD8(regHLI)},       // 0x36
		{"SCF", 1, 4, 0, c.scf},                        // 0x37
		{"JR C,r8", 2, 8, 12, c.jr(condC)},             // 0x38
		{"ADD HL,SP", 1, 8, 0, c.addHL(pairSP)},        // 0x39
		{"LD A,(HL-)", 1, 8, 0, c.ldAHLDec},            // 0x3A
		{"DEC SP", 1, 8, 0, c.dec16(pairSP)},           // 0x3B
		{"INC A", 1, 4, 0, c.inc8(regA)},               // 0x3C
		{"DEC A", 1, 4, 0, c.dec8(regA)},               // 0x3D
		{"LD A,d8", 2, 8, 0, c.ldD8(regA)},             // 0x3E
		{"CCF", 1, 4, 0, c.ccf},                        // 0x3F
		{"LD B,B", 1, 4, 0, c.ldRR(regB, regB)},        // 0x40
		{"LD B,C", 1, 4, 0, c.ldRR(regB, regC)},        // 0x41
		{"LD B,D", 1, 4, 0, c.ldRR(regB, regD)},        // 0x42
		{"LD B,E", 1, 4, 0, c.ldRR(regB, regE)},        // 0x43
		{"LD B,H", 1, 4, 0, c.ldRR(regB, regH)},        // 0x44
		{"LD B,L", 1, 4, 0, c.ldRR(regB, regL)},        // 0x45
		{"LD B,(HL)", 1, 8, 0, c.ldRR(regB, regHLI)},   // 0x46
		{"LD B,A", 1, 4, 0, c.ldRR(regB, regA)},        // 0x47
		{"LD C,B", 1, 4, 0, c.ldRR(regC, regB)},        // 0x48
		{"LD C,C", 1, 4, 0, c.ldRR(regC, regC)},        // 0x49
		{"LD C,D", 1, 4, 0, c.ldRR(regC, regD)},        // 0x4A
		{"LD C,E", 1, 4, 0, c.ldRR(regC, regE)},        // 0x4B
		{"LD C,H", 1, 4, 0, c.ldRR(regC, regH)},        // 0x4C
		{"LD C,L", 1, 4, 0, c.ldRR(regC, regL)},        // 0x4D
		{"LD C,(HL)", 1, 8, 0, c.ldRR(regC, regHLI)},   // 0x4E
		{"LD C,A", 1, 4, 0, c.ldRR(regC, regA)},        // 0x4F
		{"LD D,B", 1, 4, 0, c.ldRR(regD, regB)},        // 0x50
		{"LD D,C", 1, 4, 0, c.ldRR(regD, regC)},        // 0x51
		{"LD D,D", 1, 4, 0, c.ldRR(regD, regD)},        // 0x52
		{"LD D,E", 1, 4, 0, c.ldRR(regD, regE)},        // 0x53
		{"LD D,H", 1, 4, 0, c.ldRR(regD, regH)},        // 0x54
		{"LD D,L", 1, 4, 0, c.ldRR(regD, regL)},        // 0x55
		{"LD D,(HL)", 1, 8, 0, c.ldRR(regD, regHLI)},   // 0x56
		{"LD D,A", 1, 4, 0, c.ldRR(regD, regA)},        // 0x57
		{"LD E,B", 1, 4, 0, c.ldRR(regE, regB)},        // 0x58
		{"LD E,C", 1, 4, 0, c.ldRR(regE, regC)},        // 0x59
		{"LD E,D", 1, 4, 0, c.ldRR(regE, regD)},        // 0x5A
		{"LD E,E", 1, 4, 0, c.ldRR(regE, regE)},        // 0x5B
		{"LD E,H", 1, 4, 0, c.ldRR(regE, regH)},        // 0x5C
		{"LD E,L", 1, 4, 0, c.ldRR(regE, regL)},        // 0x5D
		{"LD E,(HL)", 1, 8, 0, c.ldRR(regE, regHLI)},   // 0x5E
		{"LD E,A", 1, 4, 0, c.ldRR(regE, regA)},        // 0x5F
		{"LD H,B", 1, 4, 0, c.ldRR(regH, regB)},        // 0x60
		{"LD H,C", 1, 4, 0, c.ldRR(regH, regC)},        // 0x61
		{"LD H,D", 1, 4, 0, c.ldRR(regH, regD)},        // 0x62
		{"LD H,E", 1, 4, 0, c.ldRR(regH, regE)},        // 0x63
		{"LD H,H", 1, 4, 0, c.ldRR(regH, regH)},        // 0x64
		{"LD H,L", 1, 4, 0, c.ldRR(regH, regL)},        // 0x65
		{"LD H,(HL)", 1, 8, 0, c.ldRR(regH, regHLI)},   // 0x66
		{"LD H,A", 1, 4, 0, c.ldRR(regH, regA)},        // 0x67
		{"LD L,B", 1, 4, 0, c.ldRR(regL, regB)},        // 0x68
		{"LD L,C", 1, 4, 0, c.ldRR(regL, regC)},        // 0x69
		{"LD L,D", 1, 4, 0, c.ldRR(regL, regD)},        // 0x6A
		{"LD L,E", 1, 4, 0, c.ldRR(regL, regE)},        // 0x6B
		{"LD L,H", 1, 4, 0, c.ldRR(regL, regH)},        // 0x6C
		{"LD L,L", 1, 4, 0, c.ldRR(regL, regL)},        // 0x6D
		{"LD L,(HL)", 1, 8, 0, c.ldRR(regL, regHLI)},   // 0x6E
		{"LD L,A", 1, 4, 0, c.ldRR(regL, regA)},        // 0x6F
		{"LD (HL),B", 1, 8, 0, c.ldRR(regHLI, regB)},   // 0x70
		{"LD (HL),C", 1, 8, 0, c.ldRR(regHLI, regC)},   // 0x71
		{"LD (HL),D", 1, 8, 0, c.ldRR(regHLI, regD)},   // 0x72
		{"LD (HL),E", 1, 8, 0, c.ldRR(regHLI, regE)},   // 0x73
		{"LD (HL),H", 1, 8, 0, c.ldRR(regHLI, regH)},   // 0x74
		{"LD (HL),L", 1, 8, 0, c.ldRR(regHLI, regL)},   // 0x75
		{"HALT", 1, 4, 0, c.halt},                      // 0x76
		{"LD (HL),A", 1, 8, 0, c.ldRR(regHLI, regA)},   // 0x77
		{"LD A,B", 1, 4, 0, c.ldRR(regA, regB)},        // 0x78
		{"LD A,C", 1, 4, 0, c.ldRR(regA, regC)},        // 0x79
		{"LD A,D", 1, 4, 0, c.ldRR(regA, regD)},        // 0x7A
		{"LD A,E", 1, 4, 0, c.ldRR(regA, regE)},        // 0x7B
		{"LD A,H", 1, 4, 0, c.ldRR(regA, regH)},        // 0x7C
		{"LD A,L", 1, 4, 0, c.ldRR(regA, regL)},        // 0x7D
		{"LD A,(HL)", 1, 8, 0, c.ldRR(regA, regHLI)},   // 0x7E
		{"LD A,A", 1, 4, 0, c.ldRR(regA, regA)},        // 0x7F
		{"ADD A,B", 1, 4, 0, c.alu(c.add8, regB)},      // 0x80
		{"ADD A,C", 1, 4, 0, c.alu(c.add8, regC)},      // 0x81
		{"ADD A,D", 1, 4, 0, c.alu(c.add8, regD)},      // 0x82
		{"ADD A,E", 1, 4, 0, c.alu(c.add8, regE)},      // 0x83
		{"ADD A,H", 1, 4, 0, c.alu(c.add8, regH)},      // 0x84
		{"ADD A,L", 1, 4, 0, c.alu(c.add8, regL)},      // 0x85
		{"ADD A,(HL)", 1, 8, 0, c.alu(c.add8, regHLI)}, // 0x86
		{"ADD A,A", 1, 4, 0, c.alu(c.add8, regA)},      // 0x87
		{"ADC A,B", 1, 4, 0, c.alu(c.adc8, regB)},      // 0x88
		{"ADC A,C", 1, 4, 0, c.alu(c.adc8, regC)},      // 0x89
		{"ADC A,D", 1, 4, 0, c.alu(c.adc8, regD)},      // 0x8A
		{"ADC A,E", 1, 4, 0, c.alu(c.adc8, regE)},      // 0x8B
		{"ADC A,H", 1, 4, 0, c.alu(c.adc8, regH)},      // 0x8C
		{"ADC A,L", 1, 4, 0, c.alu(c.adc8, regL)},      // 0x8D
		{"ADC A,(HL)", 1, 8, 0, c.alu(c.adc8, regHLI)}, // 0x8E
		{"ADC A,A", 1, 4, 0, c.alu(c.adc8, regA)},      // 0x8F
		{"SUB B", 1, 4, 0, c.alu(c.sub8, regB)},        // 0x90
		{"SUB C", 1, 4, 0, c.alu(c.sub8, regC)},        // 0x91
		{"SUB D", 1, 4, 0, c.alu(c.sub8, regD)},        // 0x92
		{"SUB E", 1, 4, 0, c.alu(c.sub8, regE)},        // 0x93
		{"SUB H", 1, 4, 0, c.alu(c.sub8, regH)},        // 0x94
		{"SUB L", 1, 4, 0, c.alu(c.sub8, regL)},        // 0x95
		{"SUB (HL)", 1, 8, 0, c.alu(c.sub8, regHLI)},   // 0x96
		{"SUB A", 1, 4, 0, c.alu(c.sub8, regA)},        // 0x97
		{"SBC A,B", 1, 4, 0, c.alu(c.sbc8, regB)},      // 0x98
		{"SBC A,C", 1, 4, 0, c.alu(c.sbc8, regC)},      // 0x99
		{"SBC A,D", 1, 4, 0, c.alu(c.sbc8, regD)},      // 0x9A
		{"SBC A,E", 1, 4, 0, c.alu(c.sbc8, regE)},      // 0x9B
		{"SBC A,H", 1, 4, 0, c.alu(c.sbc8, regH)},      // 0x9C
		{"SBC A,L", 1, 4, 0, c.alu(c.sbc8, regL)},      // 0x9D
		{"SBC A,(HL)", 1, 8, 0, c.alu(c.sbc8, regHLI)}, // 0x9E
		{"SBC A,A", 1, 4, 0, c.alu(c.sbc8, regA)},      // 0x9F
		{"AND B", 1, 4, 0, c.alu(c.and8, regB)},        // 0xA0
		{"AND C", 1, 4, 0, c.alu(c.and8, regC)},        // 0xA1
		{"AND D", 1, 4, 0, c.alu(c.and8, regD)},        // 0xA2
		{"AND E", 1, 4, 0, c.alu(c.and8, regE)},        // 0xA3
		{"AND H", 1, 4, 0, c.alu(c.and8, regH)},        // 0xA4
		{"AND L", 1, 4, 0, c.alu(c.and8, regL)},        // 0xA5
		{"AND (HL)", 1, 8, 0, c.alu(c.and8, regHLI)},   // 0xA6
		{"AND A", 1, 4, 0, c.alu(c.and8, regA)},        // 0xA7
		{"XOR B", 1, 4, 0, c.alu(c.xor8, regB)},        // 0xA8
		{"XOR C", 1, 4, 0, c.alu(c.xor8, regC)},        // 0xA9
		{"XOR D", 1, 4, 0, c.alu(c.xor8, regD)},        // 0xAA
		{"XOR E", 1, 4, 0, c.alu(c.xor8, regE)},        // 0xAB
		{"XOR H", 1, 4, 0, c.alu(c.xor8, regH)},        // 0xAC
		{"XOR L", 1, 4, 0, c.alu(c.xor8, regL)},        // 0xAD
		{"XOR (HL)", 1, 8, 0, c.alu(c.xor8, regHLI)},   // 0xAE
		{"XOR A", 1, 4, 0, c.alu(c.xor8, regA)},        // 0xAF
		{"OR B", 1, 4, 0, c.alu(c.or8, regB)},          // 0xB0
		{"OR C", 1, 4, 0, c.alu(c.or8, regC)},          // 0xB1
		{"OR D", 1, 4, 0, c.alu(c.or8, regD)},          // 0xB2
		{"OR E", 1, 4, 0, c.alu(c.or8, regE)},          // 0xB3
		{"OR H", 1, 4, 0, c.alu(c.or8, regH)},          // 0xB4
		{"OR L", 1, 4, 0, c.alu(c.or8, regL)},          // 0xB5
		{"OR (HL)", 1, 8, 0, c.alu(c.or8, regHLI)},     // 0xB6
		{"OR A", 1, 4, 0, c.alu(c.or8, regA)},          // 0xB7
		{"CP B", 1, 4, 0, c.alu(c.cp8, regB)},          // 0xB8
		{"CP C", 1, 4, 0, c.alu(c.cp8, regC)},          // 0xB9
		{"CP D", 1, 4, 0, c.alu(c.cp8, regD)},          // 0xBA
		{"CP E", 1, 4, 0, c.alu(c.cp8, regE)},          // 0xBB
		{"CP H", 1, 4, 0, c.alu(c.cp8, regH)},          // 0xBC
		{"CP L", 1, 4, 0, c.alu(c.cp8, regL)},          // 0xBD
		{"CP (HL)", 1, 8, 0, c.alu(c.cp8, regHLI)},     // 0xBE
		{"CP A", 1, 4, 0, c.alu(c.cp8, regA)},          // 0xBF
		{"RET NZ", 1, 8, 20, c.ret(condNZ)},            // 0xC0
		{"POP BC", 1, 12, 0, c.popPair(pairBC)},        // 0xC1
		{"JP NZ,a16", 3, 12, 16, c.jp(condNZ)},         // 0xC2
		{"JP a16", 3, 16, 0, c.jp(condAlways)},         // 0xC3
		{"CALL NZ,a16", 3, 12, 24, c.call(condNZ)},     // 0xC4
		{"PUSH BC", 1, 16, 0, c.pushPair(pairBC)},      // 0xC5
		{"ADD A,d8", 2, 8, 0, c.aluD8(c.add8)},         // 0xC6
		{"RST 00H", 1, 16, 0, c.rst(0x00)},             // 0xC7
		{"RET Z", 1, 8, 20, c.ret(condZ)},              // 0xC8
		{"RET", 1, 16, 0, c.ret(condAlways)},           // 0xC9
		{"JP Z,a16", 3, 12, 16, c.jp(condZ)},           // 0xCA
		{},                                             // 0xCB (prefix, see prefixed.go)
		{"CALL Z,a16", 3, 12, 24, c.call(condZ)},       // 0xCC
		{"CALL a16", 3, 24, 0, c.call(condAlways)},     // 0xCD
		{"ADC A,d8", 2, 8, 0, c.aluD8(c.adc8)},         // 0xCE
		{"RST 08H", 1, 16, 0, c.rst(0x08)},             // 0xCF
		{"RET NC", 1, 8, 20, c.ret(condNC)},            // 0xD0
		{"POP DE", 1, 12, 0, c.popPair(pairDE)},        // 0xD1
		{"JP NC,a16", 3, 12, 16, c.jp(condNC)},         // 0xD2
		{},                                             // 0xD3
		{"CALL NC,a16", 3, 12, 24, c.call(condNC)},     // 0xD4
		{"PUSH DE", 1, 16, 0, c.pushPair(pairDE)},      // 0xD5
		{"SUB d8", 2, 8, 0, c.aluD8(c.sub8)},           // 0xD6
		{"RST 10H", 1, 16, 0, c.rst(0x10)},             // 0xD7
		{"RET C", 1, 8, 20, c.ret(condC)},              // 0xD8
		{"RETI", 1, 16, 0, c.reti},                     // 0xD9
		{"JP C,a16", 3, 12, 16, c.jp(condC)},           // 0xDA
		{},                                             // 0xDB
		{"CALL C,a16", 3, 12, 24, c.call(condC)},       // 0xDC
		{},                                             // 0xDD
		{"SBC A,d8", 2, 8, 0, c.aluD8(c.sbc8)},         // 0xDE
		{"RST 18H", 1, 16, 0, c.rst(0x18)},             // 0xDF
		{"LDH (a8),A", 2, 12, 0, c.ldhA8A},             // 0xE0
		{"POP HL", 1, 12, 0, c.popPair(pairHL)},        // 0xE1
		{"LD (C),A", 1, 8, 0, c.ldCA},                  // 0xE2
		{},                                             // 0xE3
		{},                                             // 0xE4
		{"PUSH HL", 1, 16, 0, c.pushPair(pairHL)},      // 0xE5
		{"AND d8", 2, 8, 0, c.aluD8(c.and8)},           // 0xE6
		{"RST 20H", 1, 16, 0, c.rst(0x20)},             // 0xE7
		{"ADD SP,r8", 2, 16, 0, c.addSP},               // 0xE8
		{"JP (HL)", 1, 4, 0, c.jpHL},                   // 0xE9
		{"LD (a16),A", 3, 16, 0, c.ldA16A},             // 0xEA
		{},                                             // 0xEB
		{},                                             // 0xEC
		{},                                             // 0xED
		{"XOR d8", 2, 8, 0, c.aluD8(c.xor8)},           // 0xEE
		{"RST 28H", 1, 16, 0, c.rst(0x28)},             // 0xEF
		{"LDH A,(a8)", 2, 12, 0, c.ldhAA8},             // 0xF0
		{"POP AF", 1, 12, 0, c.popPair(pairAF)},        // 0xF1
		{"LD A,(C)", 1, 8, 0, c.ldAC},                  // 0xF2
		{"DI", 1, 4, 0, c.di},                          // 0xF3
		{},                                             // 0xF4
		{"PUSH AF", 1, 16, 0, c.pushPair(pairAF)},      // 0xF5
		{"OR d8", 2, 8, 0, c.aluD8(c.or8)},             // 0xF6
		{"RST 30H", 1, 16, 0, c.rst(0x30)},             // 0xF7
		{"LD HL,SP+r8", 2, 12, 0, c.ldHLSP},            // 0xF8
		{"LD SP,HL", 1, 8, 0, c.ldSPHL},                // 0xF9
		{"LD A,(a16)", 3, 16, 0, c.ldAA16},             // 0xFA
		{"EI", 1, 4, 0, c.ei},                          // 0xFB
		{},                                             // 0xFC
		{},                                             // 0xFD
		{"CP d8", 2, 8, 0, c.aluD8(c.cp8)},             // 0xFE
		{"RST 38H", 1, 16, 0, c.rst(0x38)},             // 0xFF
	}
}

func (c *CPU) reg8(i int) byte {
	switch i {
	case regB:
		return c.r.b
	case regC:
		return c.r.c
	case regD:
		return c.r.d
	case regE:
		return c.r.e
	case regH:
		return c.r.h
	case regL:
		return c.r.l
	case regHLI:
		return c.read(c.r.hl())
	}
	return c.r.a
}

func (c *CPU) setReg8(i int, x byte) {
	switch i {
	case regB:
		c.r.b = x
	case regC:
		c.r.c = x
	case regD:
		c.r.d = x
	case regE:
		c.r.e = x
	case regH:
		c.r.h = x
	case regL:
		c.r.l = x
	case regHLI:
		c.write(c.r.hl(), x)
	default:
		c.r.a = x
	}
}

func (c *CPU) pair(i int) uint16 {
	switch i {
	case pairBC:
		return c.r.bc()
	case pairDE:
		return c.r.de()
	case pairHL:
		return c.r.hl()
	case pairSP:
		return c.r.sp
	}
	return c.r.af()
}

func (c *CPU) setPair(i int, x uint16) {
	switch i {
	case pairBC:
		c.r.setBC(x)
	case pairDE:
		c.r.setDE(x)
	case pairHL:
		c.r.setHL(x)
	case pairSP:
		c.r.sp = x
	default:
		c.r.setAF(x)
	}
}

func (c *CPU) check(cond condition) bool {
	switch cond {
	case condNZ:
		return !c.flag(flagZ)
	case condZ:
		return c.flag(flagZ)
	case condNC:
		return !c.flag(flagC)
	case condC:
		return c.flag(flagC)
	}
	return true
}

// NOP - No Operation.
func (c *CPU) nop(operand uint16) {}

// STOP - Stop the clock until a button is pressed, there is no separate low
// power state here so it behaves like a 2 byte NOP.
func (c *CPU) stop(operand uint16) {}

// HALT - Wait for an interrupt.
func (c *CPU) halt(operand uint16) {
	c.halted = true
}

// DI - Disable Interrupts.
func (c *CPU) di(operand uint16) {
	c.r.ime = false
}

// EI - Enable Interrupts, takes effect immediately.
func (c *CPU) ei(operand uint16) {
	c.r.ime = true
}

// LD r,r' - Load register from register.
func (c *CPU) ldRR(dst, src int) func(uint16) {
	return func(uint16) {
		c.setReg8(dst, c.reg8(src))
	}
}

// LD r,d8 - Load register from immediate.
func (c *CPU) ldD8(dst int) func(uint16) {
	return func(operand uint16) {
		c.setReg8(dst, byte(operand))
	}
}

// LD rr,d16 - Load register pair from immediate.
func (c *CPU) ld16(dst int) func(uint16) {
	return func(operand uint16) {
		c.setPair(dst, operand)
	}
}

// LD (rr),A
func (c *CPU) ldIndirectA(dst int) func(uint16) {
	return func(uint16) {
		c.write(c.pair(dst), c.r.a)
	}
}

// LD A,(rr)
func (c *CPU) ldAIndirect(src int) func(uint16) {
	return func(uint16) {
		c.r.a = c.read(c.pair(src))
	}
}

// LD (HL+),A
func (c *CPU) ldHLIncA(operand uint16) {
	hl := c.r.hl()
	c.write(hl, c.r.a)
	c.r.setHL(hl + 1)
}

// LD (HL-),A
func (c *CPU) ldHLDecA(operand uint16) {
	hl := c.r.hl()
	c.write(hl, c.r.a)
	c.r.setHL(hl - 1)
}

// LD A,(HL+)
func (c *CPU) ldAHLInc(operand uint16) {
	hl := c.r.hl()
	c.r.a = c.read(hl)
	c.r.setHL(hl + 1)
}

// LD A,(HL-)
func (c *CPU) ldAHLDec(operand uint16) {
	hl := c.r.hl()
	c.r.a = c.read(hl)
	c.r.setHL(hl - 1)
}

// LD (a16),SP
func (c *CPU) ldA16SP(operand uint16) {
	c.bus.Write16(operand, c.r.sp, Program)
}

// LD (a16),A
func (c *CPU) ldA16A(operand uint16) {
	c.write(operand, c.r.a)
}

// LD A,(a16)
func (c *CPU) ldAA16(operand uint16) {
	c.r.a = c.read(operand)
}

// LDH (a8),A - Store A into the high page.
func (c *CPU) ldhA8A(operand uint16) {
	c.write(0xFF00|operand&0xFF, c.r.a)
}

// LDH A,(a8) - Load A from the high page.
func (c *CPU) ldhAA8(operand uint16) {
	c.r.a = c.read(0xFF00 | operand&0xFF)
}

// LD (C),A
func (c *CPU) ldCA(operand uint16) {
	c.write(0xFF00|uint16(c.r.c), c.r.a)
}

// LD A,(C)
func (c *CPU) ldAC(operand uint16) {
	c.r.a = c.read(0xFF00 | uint16(c.r.c))
}

// LD SP,HL
func (c *CPU) ldSPHL(operand uint16) {
	c.r.sp = c.r.hl()
}

// spOffset adds a signed immediate to SP. H and C come from the unsigned
// addition of the low byte.
func (c *CPU) spOffset(operand uint16) uint16 {
	sp := c.r.sp
	e := uint16(int8(byte(operand)))
	c.setZNHC(false, false, (sp&0x0F)+(e&0x0F) > 0x0F, (sp&0xFF)+(e&0xFF) > 0xFF)
	return sp + e
}

// ADD SP,r8
func (c *CPU) addSP(operand uint16) {
	c.r.sp = c.spOffset(operand)
}

// LD HL,SP+r8
func (c *CPU) ldHLSP(operand uint16) {
	c.r.setHL(c.spOffset(operand))
}

// POP rr
func (c *CPU) popPair(dst int) func(uint16) {
	return func(uint16) {
		c.setPair(dst, c.pop16())
	}
}

// PUSH rr
func (c *CPU) pushPair(src int) func(uint16) {
	return func(uint16) {
		c.push16(c.pair(src))
	}
}

// INC r - Z, H affected, C unaffected.
func (c *CPU) inc8(i int) func(uint16) {
	return func(uint16) {
		x := c.reg8(i) + 1
		c.setReg8(i, x)
		c.setFlag(flagZ, x == 0)
		c.setFlag(flagN, false)
		c.setFlag(flagH, x&0x0F == 0)
	}
}

// DEC r - Z, H affected, C unaffected.
func (c *CPU) dec8(i int) func(uint16) {
	return func(uint16) {
		x := c.reg8(i) - 1
		c.setReg8(i, x)
		c.setFlag(flagZ, x == 0)
		c.setFlag(flagN, true)
		c.setFlag(flagH, x&0x0F == 0x0F)
	}
}

// INC rr - No flags.
func (c *CPU) inc16(i int) func(uint16) {
	return func(uint16) {
		c.setPair(i, c.pair(i)+1)
	}
}

// DEC rr - No flags.
func (c *CPU) dec16(i int) func(uint16) {
	return func(uint16) {
		c.setPair(i, c.pair(i)-1)
	}
}

// ADD HL,rr - Z unaffected, H from bit 11, C from bit 15.
func (c *CPU) addHL(i int) func(uint16) {
	return func(uint16) {
		hl := c.r.hl()
		x := c.pair(i)
		res := uint32(hl) + uint32(x)
		c.setFlag(flagN, false)
		c.setFlag(flagH, (hl&0x0FFF)+(x&0x0FFF) > 0x0FFF)
		c.setFlag(flagC, res > 0xFFFF)
		c.r.setHL(uint16(res))
	}
}

// alu applies an accumulator operation to a register.
func (c *CPU) alu(op func(byte), src int) func(uint16) {
	return func(uint16) {
		op(c.reg8(src))
	}
}

// aluD8 applies an accumulator operation to an immediate.
func (c *CPU) aluD8(op func(byte)) func(uint16) {
	return func(operand uint16) {
		op(byte(operand))
	}
}

func (c *CPU) carry() byte {
	if c.flag(flagC) {
		return 1
	}
	return 0
}

// ADD A,x
func (c *CPU) add8(x byte) {
	a := c.r.a
	res := uint16(a) + uint16(x)
	c.setZNHC(byte(res) == 0, false, (a&0x0F)+(x&0x0F) > 0x0F, res > 0xFF)
	c.r.a = byte(res)
}

// ADC A,x
func (c *CPU) adc8(x byte) {
	a := c.r.a
	cy := c.carry()
	res := uint16(a) + uint16(x) + uint16(cy)
	c.setZNHC(byte(res) == 0, false, (a&0x0F)+(x&0x0F)+cy > 0x0F, res > 0xFF)
	c.r.a = byte(res)
}

// SUB x
func (c *CPU) sub8(x byte) {
	a := c.r.a
	res := a - x
	c.setZNHC(res == 0, true, a&0x0F < x&0x0F, a < x)
	c.r.a = res
}

// SBC A,x
func (c *CPU) sbc8(x byte) {
	a := c.r.a
	cy := int(c.carry())
	res := int(a) - int(x) - cy
	c.setZNHC(byte(res) == 0, true, int(a&0x0F)-int(x&0x0F)-cy < 0, res < 0)
	c.r.a = byte(res)
}

// AND x
func (c *CPU) and8(x byte) {
	c.r.a &= x
	c.setZNHC(c.r.a == 0, false, true, false)
}

// XOR x
func (c *CPU) xor8(x byte) {
	c.r.a ^= x
	c.setZNHC(c.r.a == 0, false, false, false)
}

// OR x
func (c *CPU) or8(x byte) {
	c.r.a |= x
	c.setZNHC(c.r.a == 0, false, false, false)
}

// CP x - Compare, a SUB that throws the result away.
func (c *CPU) cp8(x byte) {
	a := c.r.a
	c.setZNHC(a == x, true, a&0x0F < x&0x0F, a < x)
}

// RLCA - Rotate A left, Z is always cleared.
func (c *CPU) rlca(operand uint16) {
	cy := c.r.a >> 7
	c.r.a = c.r.a<<1 | cy
	c.setZNHC(false, false, false, cy == 1)
}

// RRCA - Rotate A right, Z is always cleared.
func (c *CPU) rrca(operand uint16) {
	cy := c.r.a & 1
	c.r.a = c.r.a>>1 | cy<<7
	c.setZNHC(false, false, false, cy == 1)
}

// RLA - Rotate A left through carry.
func (c *CPU) rla(operand uint16) {
	cy := c.r.a >> 7
	c.r.a = c.r.a<<1 | c.carry()
	c.setZNHC(false, false, false, cy == 1)
}

// RRA - Rotate A right through carry.
func (c *CPU) rra(operand uint16) {
	cy := c.r.a & 1
	c.r.a = c.r.a>>1 | c.carry()<<7
	c.setZNHC(false, false, false, cy == 1)
}

// DAA - Decimal Adjust A after a BCD addition or subtraction, depends on N,
// H and C left by the previous instruction.
func (c *CPU) daa(operand uint16) {
	a := c.r.a
	var adjust byte
	cy := c.flag(flagC)
	sub := c.flag(flagN)
	if c.flag(flagH) || (!sub && a&0x0F > 0x09) {
		adjust |= 0x06
	}
	if cy || (!sub && a > 0x99) {
		adjust |= 0x60
		cy = true
	}
	if sub {
		a -= adjust
	} else {
		a += adjust
	}
	c.r.a = a
	c.setFlag(flagZ, a == 0)
	c.setFlag(flagH, false)
	c.setFlag(flagC, cy)
}

// CPL - Complement A.
func (c *CPU) cpl(operand uint16) {
	c.r.a = ^c.r.a
	c.setFlag(flagN, true)
	c.setFlag(flagH, true)
}

// SCF - Set Carry Flag.
func (c *CPU) scf(operand uint16) {
	c.setFlag(flagN, false)
	c.setFlag(flagH, false)
	c.setFlag(flagC, true)
}

// CCF - Complement Carry Flag.
func (c *CPU) ccf(operand uint16) {
	c.setFlag(flagN, false)
	c.setFlag(flagH, false)
	c.setFlag(flagC, !c.flag(flagC))
}

// JR - Relative jump from the address following the instruction.
func (c *CPU) jr(cond condition) func(uint16) {
	return func(operand uint16) {
		if c.check(cond) {
			c.r.pc += uint16(int8(byte(operand)))
			c.branched = true
		}
	}
}

// JP a16
func (c *CPU) jp(cond condition) func(uint16) {
	return func(operand uint16) {
		if c.check(cond) {
			c.r.pc = operand
			c.branched = true
		}
	}
}

// JP (HL)
func (c *CPU) jpHL(operand uint16) {
	c.r.pc = c.r.hl()
}

// CALL a16 - The return address is the one after the instruction.
func (c *CPU) call(cond condition) func(uint16) {
	return func(operand uint16) {
		if c.check(cond) {
			c.push16(c.r.pc)
			c.r.pc = operand
			c.branched = true
		}
	}
}

// RET
func (c *CPU) ret(cond condition) func(uint16) {
	return func(uint16) {
		if c.check(cond) {
			c.r.pc = c.pop16()
			c.branched = true
		}
	}
}

// RETI - Return from an interrupt handler and enable interrupts again.
func (c *CPU) reti(operand uint16) {
	c.r.pc = c.pop16()
	c.r.ime = true
	c.servicing = false
}

// RST - Call one of the fixed restart vectors.
func (c *CPU) rst(vector uint16) func(uint16) {
	return func(uint16) {
		c.push16(c.r.pc)
		c.r.pc = vector
	}
}

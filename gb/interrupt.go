package gb

import "fmt"

// Interrupt sources, lower number means higher priority. The number is also
// the bit in IE and IF.
// Reference: https://gbdev.io/pandocs/Interrupts.html
const (
	InterruptVBlank = iota
	InterruptLCDStat
	InterruptTimer
	InterruptSerial
	InterruptJoypad
	interruptCount
)

// interruptVectors are the fixed addresses of the interrupt handlers.
var interruptVectors = [interruptCount]uint16{0x0040, 0x0048, 0x0050, 0x0058, 0x0060}

// RequestInterrupt raises an interrupt source by setting both its enable and
// request bits.
func (b *Bus) RequestInterrupt(source int) {
	if source < 0 || source >= interruptCount {
		panic(fmt.Sprintf("unknown interrupt source: %d", source))
	}
	b.WriteBit(IE, uint8(source), true)
	b.WriteBit(IF, uint8(source), true)
}

// CheckInterrupt services the highest priority pending interrupt. It does
// nothing while a handler runs, until RETI.
// A pending interrupt wakes a halted CPU even when IME is cleared, in that case
// execution just continues after HALT.
func (c *CPU) CheckInterrupt() {
	if c.servicing {
		return
	}
	enabled := c.bus.Read(IE, Internal)
	requested := c.bus.Read(IF, Internal)
	for i := 0; i < interruptCount; i++ {
		if (enabled>>i)&1 == 1 && (requested>>i)&1 == 1 {
			if c.r.ime {
				c.serviceInterrupt(i)
			}
			c.halted = false
		}
	}
}

// serviceInterrupt pushes PC and jumps to the handler of source.
func (c *CPU) serviceInterrupt(source int) {
	if source < 0 || source >= interruptCount {
		panic(fmt.Sprintf("unknown interrupt source: %d", source))
	}
	c.push16(c.r.pc)
	c.bus.WriteBit(IE, uint8(source), false)
	c.bus.WriteBit(IF, uint8(source), false)
	c.r.ime = false
	c.r.pc = interruptVectors[source]
	c.servicing = true
}

package gb

import (
	"io"

	"github.com/golang/glog"
)

// Options configures a Console.
type Options struct {
	// Serial receives the bytes the program sends over the link port.
	Serial io.Writer
}

// Console is the whole machine. It owns every component and steps them in a
// fixed order: interrupts, one instruction, timer, peripherals.
type Console struct {
	Bus    *Bus
	CPU    *CPU
	Timer  *Timer
	LCD    *LCD
	Joypad *Joypad
	Serial *Serial

	peripherals []Peripheral
	boot        bool
	cycles      uint64
}

// NewConsole creates a console for the cartridge. Without a boot program the
// console starts in the state the boot program would leave it in.
func NewConsole(cartridge *Cartridge, boot []byte, options Options) (*Console, error) {
	joypad := NewJoypad()
	bus, err := NewBus(cartridge, boot, joypad)
	if err != nil {
		return nil, err
	}
	c := &Console{
		Bus:    bus,
		CPU:    NewCPU(bus),
		Timer:  NewTimer(bus),
		LCD:    NewLCD(bus),
		Joypad: joypad,
		Serial: NewSerial(bus, options.Serial),
		boot:   len(boot) > 0,
	}
	c.peripherals = []Peripheral{c.LCD, c.Serial}
	if !c.boot {
		c.skipBoot()
	}
	glog.Infof("Console created: title=%q, type=0x%02x, rom banks=%d, ram=%d bytes, boot=%t",
		cartridge.Title, cartridge.Type, cartridge.ROMBanks(), cartridge.RAMSize(), c.boot)
	return c, nil
}

// skipBoot sets registers and I/O the way the DMG boot program leaves them.
// Reference: https://gbdev.io/pandocs/Power_Up_Sequence.html
func (c *Console) skipBoot() {
	c.CPU.skipBoot()
	for _, r := range []struct {
		address uint16
		data    byte
	}{
		{JOYP, 0xCF},
		{DIV, 0xAB},
		{TAC, 0xF8},
		{IF, 0xE1},
		{LCDC, 0x91},
		{STAT, 0x85},
		{BGP, 0xFC},
		{OBP0, 0xFF},
		{OBP1, 0xFF},
		{BOOT, 0x01},
	} {
		c.Bus.Write(r.address, r.data, Internal)
	}
}

// AddPeripheral connects another clocked device.
func (c *Console) AddPeripheral(p Peripheral) {
	c.peripherals = append(c.peripherals, p)
}

// Reset power cycles the console, external RAM keeps its contents.
func (c *Console) Reset() error {
	if err := c.Bus.reset(); err != nil {
		return err
	}
	c.CPU.Reset()
	c.Timer.Reset()
	c.LCD.Reset()
	c.cycles = 0
	if !c.boot {
		c.skipBoot()
	}
	glog.Infoln("Console reset")
	return nil
}

// Step runs one instruction, or one halted period, and returns the cycles it took.
func (c *Console) Step() (int, error) {
	c.CPU.CheckInterrupt()
	cycles, err := c.CPU.Step()
	if err != nil {
		return 0, err
	}
	c.Timer.Tick(cycles)
	for _, p := range c.peripherals {
		p.Advance(cycles)
	}
	c.cycles += uint64(cycles)
	return cycles, nil
}

// Run steps until at least cycles clock cycles have passed and returns the
// cycles actually run.
func (c *Console) Run(cycles int) (int, error) {
	done := 0
	for done < cycles {
		n, err := c.Step()
		if err != nil {
			return done, err
		}
		done += n
	}
	return done, nil
}

// StepFrame runs until the LCD completes a frame, or one frame worth of cycles
// when the display is off.
func (c *Console) StepFrame() error {
	done := 0
	for done < CyclesPerFrame {
		n, err := c.Step()
		if err != nil {
			return err
		}
		done += n
		if c.LCD.Frame() {
			return nil
		}
	}
	return nil
}

// SetButtons passes the host button state to the joypad, a newly pressed
// button raises the joypad interrupt.
func (c *Console) SetButtons(buttons [8]bool) {
	if c.Joypad.Set(buttons) {
		c.Bus.RequestInterrupt(InterruptJoypad)
	}
}

// Cycles returns the cycles run since power on.
func (c *Console) Cycles() uint64 {
	return c.cycles
}

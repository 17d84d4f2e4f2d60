package gb

import (
	"fmt"
	"strings"
)

// Cartridge header locations.
// Reference: https://gbdev.io/pandocs/The_Cartridge_Header.html
const (
	headerTitle    = 0x134
	headerTitleEnd = 0x143
	headerType     = 0x147
	headerROMSize  = 0x148
	headerRAMSize  = 0x149
	headerEnd      = 0x150
)

// ramSizes maps the RAM size code of the header to bytes.
var ramSizes = [...]int{0, 0x800, 0x2000, 0x8000, 0x20000, 0x10000}

// Cartridge holds the ROM image and the few header fields the core is
// parameterized by. Checksums and logos are not looked at.
type Cartridge struct {
	Title   string
	Type    byte
	rom     []byte
	romCode byte
	ramCode byte
}

// NewCartridge creates a cartridge from a ROM image.
func NewCartridge(data []byte) (*Cartridge, error) {
	if len(data) < headerEnd {
		return nil, fmt.Errorf("the buffer is too small to hold a cartridge header: %d bytes", len(data))
	}
	c := &Cartridge{
		Title:   strings.TrimRight(string(data[headerTitle:headerTitleEnd]), "\x00 "),
		Type:    data[headerType],
		romCode: data[headerROMSize],
		ramCode: data[headerRAMSize],
	}
	// Pad to at least two banks so the fixed and switchable regions always exist.
	size := len(data)
	if size < 2*romBankSize {
		size = 2 * romBankSize
	}
	c.rom = make([]byte, size)
	copy(c.rom, data)
	return c, nil
}

// ROMBanks returns the number of 16 KiB ROM banks in the image.
func (c *Cartridge) ROMBanks() int {
	return len(c.rom) / romBankSize
}

// RAMSize returns the size of the external RAM declared by the header in bytes.
func (c *Cartridge) RAMSize() int {
	if int(c.ramCode) >= len(ramSizes) {
		return 0
	}
	return ramSizes[c.ramCode]
}

// RAMBanks returns the number of 8 KiB external RAM banks, a 2 KiB RAM counts as one.
func (c *Cartridge) RAMBanks() int {
	size := c.RAMSize()
	if size == 0 {
		return 0
	}
	if size < extramBankSize {
		return 1
	}
	return size / extramBankSize
}

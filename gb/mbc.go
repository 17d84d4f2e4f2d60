package gb

import "fmt"

// Mapper is the bank controller inside the cartridge. The bus offers it every
// write before anything else; the bus reads its bank state on every access to
// a switchable region.
// Reference: https://gbdev.io/pandocs/MBCs.html
type Mapper interface {
	// OnWrite handles a write into one of the controller's windows and reports
	// whether the write was consumed.
	OnWrite(address uint16, data byte) bool
	// ROMBank is the bank visible at 0x4000-0x7FFF.
	ROMBank() int
	// RAMBank is the bank visible at 0xA000-0xBFFF.
	RAMBank() int
	// RAMEnabled reports whether external RAM currently answers.
	RAMEnabled() bool
}

// NewMapper creates the bank controller for the cartridge type byte found at
// 0x147 of the header.
func NewMapper(cartridgeType byte, romBanks, ramBanks int) (Mapper, error) {
	if romBanks < 2 {
		romBanks = 2
	}
	switch cartridgeType {
	case 0x00, 0x08, 0x09:
		return &mbc0{}, nil
	case 0x01, 0x02, 0x03:
		return newMBC1(romBanks, ramBanks), nil
	case 0x0F, 0x10, 0x11, 0x12, 0x13:
		return newMBC3(romBanks, ramBanks), nil
	case 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E:
		return newMBC5(romBanks, ramBanks), nil
	}
	return nil, fmt.Errorf("unsupported cartridge type: 0x%02x", cartridgeType)
}

// ramEnableValue is the low nibble that enables external RAM on every MBC.
const ramEnableValue = 0x0A

// bankMask wraps a requested bank number onto the banks that exist.
func bankMask(bank, banks int) int {
	if banks <= 0 {
		return 0
	}
	return bank % banks
}

package gb

// mbc0 is a cartridge without a bank controller: 32 KiB of ROM and at most one
// bank of RAM, always enabled.
type mbc0 struct{}

func (m *mbc0) OnWrite(address uint16, data byte) bool {
	return false
}

func (m *mbc0) ROMBank() int {
	return 1
}

func (m *mbc0) RAMBank() int {
	return 0
}

func (m *mbc0) RAMEnabled() bool {
	return true
}

package gb

import "github.com/golang/glog"

// MBC5: https://gbdev.io/pandocs/MBC5.html
type mbc5 struct {
	romBanks   int
	ramBanks   int
	ramEnabled bool
	romBank    int // 9 bit, bank 0 is selectable
	ramBank    int
}

func newMBC5(romBanks, ramBanks int) *mbc5 {
	return &mbc5{romBanks: romBanks, ramBanks: ramBanks, romBank: 1}
}

func (m *mbc5) OnWrite(address uint16, data byte) bool {
	switch {
	case address < 0x2000:
		m.ramEnabled = data&0x0F == ramEnableValue
	case address < 0x3000:
		m.romBank = m.romBank&0x100 | int(data)
		glog.V(2).Infof("MBC5 ROM bank switched: bank=%d", m.ROMBank())
	case address < 0x4000:
		m.romBank = int(data&1)<<8 | m.romBank&0xFF
	case address < 0x6000:
		m.ramBank = int(data & 0x0F)
	case address < 0x8000:
		// No register here, but the write still never reaches ROM.
	default:
		return false
	}
	return true
}

func (m *mbc5) ROMBank() int {
	return bankMask(m.romBank, m.romBanks)
}

func (m *mbc5) RAMBank() int {
	return bankMask(m.ramBank, m.ramBanks)
}

func (m *mbc5) RAMEnabled() bool {
	return m.ramEnabled
}

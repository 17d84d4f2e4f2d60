package gb

import "github.com/golang/glog"

// MBC3: https://gbdev.io/pandocs/MBC3.html
// The real time clock is not emulated, selecting one of its registers maps
// nothing into 0xA000-0xBFFF.
type mbc3 struct {
	romBanks   int
	ramBanks   int
	ramEnabled bool
	romBank    int
	ramSelect  int // 0x00-0x03 RAM bank, 0x08-0x0C RTC register
}

func newMBC3(romBanks, ramBanks int) *mbc3 {
	return &mbc3{romBanks: romBanks, ramBanks: ramBanks, romBank: 1}
}

func (m *mbc3) OnWrite(address uint16, data byte) bool {
	switch {
	case address < 0x2000:
		m.ramEnabled = data&0x0F == ramEnableValue
	case address < 0x4000:
		m.romBank = int(data & 0x7F)
		if m.romBank == 0 {
			m.romBank = 1
		}
		glog.V(2).Infof("MBC3 ROM bank switched: bank=%d", m.ROMBank())
	case address < 0x6000:
		m.ramSelect = int(data & 0x0F)
	case address < 0x8000:
		// RTC latch, nothing to latch.
	default:
		return false
	}
	return true
}

func (m *mbc3) ROMBank() int {
	return bankMask(m.romBank, m.romBanks)
}

func (m *mbc3) RAMBank() int {
	return bankMask(m.ramSelect&0x03, m.ramBanks)
}

func (m *mbc3) RAMEnabled() bool {
	return m.ramEnabled && m.ramSelect < 0x04
}

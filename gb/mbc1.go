package gb

import "github.com/golang/glog"

// MBC1: https://gbdev.io/pandocs/MBC1.html
type mbc1 struct {
	romBanks   int
	ramBanks   int
	ramEnabled bool
	low        int  // 5 bit ROM bank number
	high       int  // 2 bit RAM bank number or upper ROM bank bits
	mode       bool // false: ROM banking mode, true: RAM banking mode
}

func newMBC1(romBanks, ramBanks int) *mbc1 {
	return &mbc1{romBanks: romBanks, ramBanks: ramBanks, low: 1}
}

func (m *mbc1) OnWrite(address uint16, data byte) bool {
	switch {
	case address < 0x2000:
		m.ramEnabled = data&0x0F == ramEnableValue
	case address < 0x4000:
		// Bank 0 can't be selected here, the hardware turns it into 1.
		m.low = int(data & 0x1F)
		if m.low == 0 {
			m.low = 1
		}
		glog.V(2).Infof("MBC1 ROM bank switched: bank=%d", m.ROMBank())
	case address < 0x6000:
		m.high = int(data & 0x03)
	case address < 0x8000:
		m.mode = data&1 == 1
	default:
		return false
	}
	return true
}

func (m *mbc1) ROMBank() int {
	return bankMask(m.high<<5|m.low, m.romBanks)
}

func (m *mbc1) RAMBank() int {
	if !m.mode {
		return 0
	}
	return bankMask(m.high, m.ramBanks)
}

func (m *mbc1) RAMEnabled() bool {
	return m.ramEnabled
}

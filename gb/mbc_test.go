package gb

import "testing"

func TestNewMapper(t *testing.T) {
	for _, test := range []struct {
		cartridgeType byte
		wantErr       bool
	}{
		{0x00, false},
		{0x01, false},
		{0x03, false},
		{0x05, true}, // MBC2
		{0x13, false},
		{0x1B, false},
		{0xFC, true},
	} {
		_, err := NewMapper(test.cartridgeType, 4, 1)
		if (err != nil) != test.wantErr {
			t.Errorf("type 0x%02x: got err=%v, want err=%t", test.cartridgeType, err, test.wantErr)
		}
	}
}

func TestMBC1(t *testing.T) {
	m := newMBC1(128, 4)
	if m.RAMEnabled() {
		t.Errorf("RAM enabled at power on")
	}
	for _, test := range []struct {
		address     uint16
		data        byte
		wantROM     int
		wantRAM     int
		wantEnabled bool
	}{
		{0x0000, 0x0A, 1, 0, true},
		{0x2000, 0x1F, 31, 0, true},
		{0x4000, 0x02, 0x5F, 0, true},
		{0x6000, 0x01, 0x5F, 2, true},
		{0x2000, 0x00, 0x41, 2, true},
		{0x6000, 0x00, 0x41, 0, true},
		{0x1FFF, 0x00, 0x41, 0, false},
	} {
		if !m.OnWrite(test.address, test.data) {
			t.Fatalf("write to 0x%04x not consumed", test.address)
		}
		if m.ROMBank() != test.wantROM || m.RAMBank() != test.wantRAM || m.RAMEnabled() != test.wantEnabled {
			t.Errorf("after 0x%02x to 0x%04x: got=(%d, %d, %t), want=(%d, %d, %t)", test.data, test.address,
				m.ROMBank(), m.RAMBank(), m.RAMEnabled(), test.wantROM, test.wantRAM, test.wantEnabled)
		}
	}
	if m.OnWrite(0xA000, 0x00) || m.OnWrite(0xC000, 0x00) {
		t.Errorf("MBC1 consumed a write outside ROM")
	}
}

func TestMBC3(t *testing.T) {
	m := newMBC3(128, 4)
	m.OnWrite(0x0000, 0x0A)
	m.OnWrite(0x2000, 0x45)
	if got := m.ROMBank(); got != 0x45 {
		t.Errorf("ROM bank: got=%d, want=%d", got, 0x45)
	}
	m.OnWrite(0x2000, 0x00)
	if got := m.ROMBank(); got != 1 {
		t.Errorf("ROM bank 0: got=%d, want=1", got)
	}
	m.OnWrite(0x4000, 0x03)
	if got := m.RAMBank(); got != 3 || !m.RAMEnabled() {
		t.Errorf("RAM bank: got=(%d, %t), want=(3, true)", got, m.RAMEnabled())
	}
	m.OnWrite(0x4000, 0x08) // RTC seconds
	if m.RAMEnabled() {
		t.Errorf("RAM answers with an RTC register selected")
	}
}

func TestMBC5(t *testing.T) {
	m := newMBC5(512, 16)
	m.OnWrite(0x2000, 0x00)
	if got := m.ROMBank(); got != 0 {
		t.Errorf("ROM bank 0: got=%d, want=0", got)
	}
	m.OnWrite(0x2000, 0x23)
	m.OnWrite(0x3000, 0x01)
	if got := m.ROMBank(); got != 0x123 {
		t.Errorf("9 bit ROM bank: got=0x%x, want=0x123", got)
	}
	m.OnWrite(0x4000, 0x0F)
	if got := m.RAMBank(); got != 15 {
		t.Errorf("RAM bank: got=%d, want=15", got)
	}
	if !m.OnWrite(0x7000, 0x12) {
		t.Errorf("write to 0x7000 reached ROM")
	}
}

func TestMBC0(t *testing.T) {
	m := &mbc0{}
	if m.OnWrite(0x2000, 0x02) || m.ROMBank() != 1 || !m.RAMEnabled() {
		t.Errorf("mbc0 should not switch banks")
	}
}

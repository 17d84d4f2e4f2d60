package gb

import (
	"fmt"

	"github.com/golang/glog"
)

// Access tells the bus who is asking. Program accesses come from the CPU and
// are subject to register semantics, internal ones come from the hardware
// itself (timer, DMA, boot skip, tests) and store what they are given.
type Access bool

const (
	Internal Access = false
	Program  Access = true
)

// Input is the live joypad state, bit per button, 1 means pressed.
type Input interface {
	Poll() byte
}

type region int

const (
	regionBoot region = iota
	regionROM0
	regionROMX
	regionVRAM
	regionExtRAM
	regionWRAM0
	regionWRAMX
	regionOAM
	regionUnusable
	regionIO
	regionHRAM
	regionIE
)

var regionNames = [...]string{
	"BOOT", "ROM0", "ROMX", "VRAM", "EXTRAM", "WRAM0", "WRAMX", "OAM", "UNUSABLE", "IO", "HRAM", "IE",
}

func (r region) String() string {
	return regionNames[r]
}

// Bus resolves the 16 bit address space onto its backing storage.
type Bus struct {
	cartridge *Cartridge
	mapper    Mapper
	input     Input

	boot   *RAM // nil without a boot program
	rom    *RAM
	vram   *RAM
	extram *RAM // nil when the cartridge carries no RAM
	wram   [wramBankCount]*RAM
	oam    *RAM
	io     *RAM
	hram   *RAM
	ie     *RAM
}

// NewBus creates the bus for a cartridge. boot may be nil.
func NewBus(cartridge *Cartridge, boot []byte, input Input) (*Bus, error) {
	mapper, err := NewMapper(cartridge.Type, cartridge.ROMBanks(), cartridge.RAMBanks())
	if err != nil {
		return nil, err
	}
	b := &Bus{
		cartridge: cartridge,
		mapper:    mapper,
		input:     input,
		rom:       NewRAM(len(cartridge.rom)),
		vram:      NewRAM(vramSize),
		oam:       NewRAM(oamSize),
		io:        NewRAM(ioSize),
		hram:      NewRAM(hramSize),
		ie:        NewRAM(1),
	}
	copy(b.rom.data, cartridge.rom)
	if len(boot) > 0 {
		if len(boot) > int(bootEnd) {
			boot = boot[:bootEnd]
		}
		b.boot = NewRAM(len(boot))
		copy(b.boot.data, boot)
	}
	if size := cartridge.RAMSize(); size > 0 {
		b.extram = NewRAM(size)
	}
	for i := range b.wram {
		b.wram[i] = NewRAM(wramBankSize)
	}
	return b, nil
}

// reset clears the volatile storage and the bank controller and reloads the
// ROM image, external RAM is battery backed and survives.
func (b *Bus) reset() error {
	mapper, err := NewMapper(b.cartridge.Type, b.cartridge.ROMBanks(), b.cartridge.RAMBanks())
	if err != nil {
		return err
	}
	b.mapper = mapper
	copy(b.rom.data, b.cartridge.rom)
	for _, r := range []*RAM{b.vram, b.oam, b.io, b.hram, b.ie} {
		r.clear()
	}
	for _, r := range b.wram {
		r.clear()
	}
	return nil
}

// ExternalRAM returns the cartridge RAM, nil when there is none. Its layout is
// exactly the contents of the external RAM region, bank after bank.
func (b *Bus) ExternalRAM() []byte {
	if b.extram == nil {
		return nil
	}
	return b.extram.data
}

func (b *Bus) booting() bool {
	return b.boot != nil && b.io.read(int(BOOT-ioStart)) == 0
}

// wramBank returns the work RAM bank visible at 0xD000, bank 0 can't be selected there.
func (b *Bus) wramBank() int {
	bank := int(b.io.read(int(SVBK-ioStart)) & 0x07)
	if bank == 0 {
		bank = 1
	}
	return bank
}

// resolve returns the region an address belongs to and the offset inside it.
func (b *Bus) resolve(address uint16) (region, uint16) {
	switch {
	case address < bootEnd && b.booting() && int(address) < b.boot.size():
		return regionBoot, address
	case address <= rom0End:
		return regionROM0, address - rom0Start
	case address <= romxEnd:
		return regionROMX, address - romxStart
	case address <= vramEnd:
		return regionVRAM, address - vramStart
	case address <= extramEnd:
		return regionExtRAM, address - extramStart
	case address <= wram0End:
		return regionWRAM0, address - wram0Start
	case address <= wramxEnd:
		return regionWRAMX, address - wramxStart
	case address <= wram0MirrorEnd:
		return regionWRAM0, address - wram0MirrorFrom
	case address <= wramxMirrorEnd:
		return regionWRAMX, address - wramxMirrorFrom
	case address <= oamEnd:
		return regionOAM, address - oamStart
	case address <= unusableEnd:
		return regionUnusable, address - unusableStart
	case address <= ioEnd:
		return regionIO, address - ioStart
	case address <= hramEnd:
		return regionHRAM, address - hramStart
	default:
		return regionIE, 0
	}
}

// backing returns the storage behind a region and the index of offset inside
// it. Switchable regions ask the bank controller every time.
func (b *Bus) backing(r region, offset uint16) (*RAM, int) {
	switch r {
	case regionBoot:
		return b.boot, int(offset)
	case regionROM0:
		return b.rom, int(offset)
	case regionROMX:
		return b.rom, (b.mapper.ROMBank()*romBankSize + int(offset)) % b.rom.size()
	case regionVRAM:
		return b.vram, int(offset)
	case regionExtRAM:
		return b.extram, (b.mapper.RAMBank()*extramBankSize + int(offset)) % b.extram.size()
	case regionWRAM0:
		return b.wram[0], int(offset)
	case regionWRAMX:
		return b.wram[b.wramBank()], int(offset)
	case regionOAM:
		return b.oam, int(offset)
	case regionIO:
		return b.io, int(offset)
	case regionHRAM:
		return b.hram, int(offset)
	case regionIE:
		return b.ie, 0
	}
	panic(fmt.Sprintf("no backing storage for region %v", r))
}

// valid reports whether an address can be read or written at all.
func (b *Bus) valid(address uint16) bool {
	if unusableStart <= address && address <= unusableEnd {
		return false
	}
	if extramStart <= address && address <= extramEnd {
		return b.extram != nil && b.mapper.RAMEnabled()
	}
	return true
}

// joypad composes JOYP from the selection bits written by the program and
// the live input. Bits read 0 when the button is pressed.
// Reference: https://gbdev.io/pandocs/Joypad_Input.html
func (b *Bus) joypad() byte {
	selection := b.io.read(int(JOYP-ioStart)) & 0x30
	var state byte
	if b.input != nil {
		state = b.input.Poll()
	}
	x := 0xC0 | selection | 0x0F
	if selection&0x10 == 0 {
		x &^= state >> 4
	}
	if selection&0x20 == 0 {
		x &^= state & 0x0F
	}
	return x
}

// Read reads a byte.
func (b *Bus) Read(address uint16, access Access) byte {
	if access == Program && address == JOYP {
		return b.joypad()
	}
	if !b.valid(address) {
		return sentinel
	}
	ram, i := b.backing(b.resolve(address))
	return ram.read(i)
}

// Read16 reads 2 bytes, low byte first.
func (b *Bus) Read16(address uint16, access Access) uint16 {
	l := b.Read(address, access)
	h := b.Read(address+1, access)
	return uint16(h)<<8 | uint16(l)
}

// Write writes a byte.
func (b *Bus) Write(address uint16, data byte, access Access) {
	if b.mapper.OnWrite(address, data) {
		return
	}
	// Without a controller the switchable bank never takes program writes.
	if access == Program && romxStart <= address && address <= romxEnd {
		glog.V(2).Infof("Dropped ROM write: address=0x%04x, data=0x%02x", address, data)
		return
	}
	if !b.valid(address) {
		glog.V(2).Infof("Dropped bus write: address=0x%04x, data=0x%02x", address, data)
		return
	}
	switch address {
	case DMA:
		b.transferDMA(data)
	case DIV, LY:
		// Writing any value from the program resets them.
		if access == Program {
			data = 0
		}
	case BOOT:
		// One way latch, once the boot program is gone it stays gone.
		if b.io.read(int(BOOT-ioStart)) != 0 {
			return
		}
	}
	ram, i := b.backing(b.resolve(address))
	ram.write(i, data)
}

// Write16 writes 2 bytes, low byte first.
func (b *Bus) Write16(address uint16, data uint16, access Access) {
	b.Write(address, byte(data), access)
	b.Write(address+1, byte(data>>8), access)
}

// ReadBit reads bit n of the byte at address.
func (b *Bus) ReadBit(address uint16, n uint8) bool {
	return (b.Read(address, Internal)>>n)&1 == 1
}

// WriteBit sets or clears bit n of the byte at address, the other bits are kept.
func (b *Bus) WriteBit(address uint16, n uint8, value bool) {
	x := b.Read(address, Internal)
	if value {
		x |= 1 << n
	} else {
		x &^= 1 << n
	}
	b.Write(address, x, Internal)
}

// transferDMA copies 160 bytes from data*0x100 to the sprite attribute table.
// The transfer completes immediately.
func (b *Bus) transferDMA(data byte) {
	source := uint16(data) << 8
	for i := uint16(0); i < oamSize; i++ {
		b.Write(oamStart+i, b.Read(source+i, Internal), Internal)
	}
}

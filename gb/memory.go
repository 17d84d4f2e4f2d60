package gb

// Memory map
// 0x0000 - 0x3FFF	ROM bank 00 (boot program below 0x0100 until BOOT is written)
// 0x4000 - 0x7FFF	ROM bank NN, switched by the bank controller
// 0x8000 - 0x9FFF	Video RAM
// 0xA000 - 0xBFFF	External RAM, switched by the bank controller
// 0xC000 - 0xCFFF	Work RAM bank 0
// 0xD000 - 0xDFFF	Work RAM bank 1-7, switched by SVBK
// 0xE000 - 0xFDFF	Mirror of 0xC000 - 0xDDFF
// 0xFE00 - 0xFE9F	Sprite attribute table (OAM)
// 0xFEA0 - 0xFEFF	Unusable
// 0xFF00 - 0xFF7F	I/O registers
// 0xFF80 - 0xFFFE	High RAM
// 0xFFFF			Interrupt enable register
// Reference: https://gbdev.io/pandocs/Memory_Map.html
const (
	rom0Start       uint16 = 0x0000
	rom0End         uint16 = 0x3FFF
	romxStart       uint16 = 0x4000
	romxEnd         uint16 = 0x7FFF
	vramStart       uint16 = 0x8000
	vramEnd         uint16 = 0x9FFF
	extramStart     uint16 = 0xA000
	extramEnd       uint16 = 0xBFFF
	wram0Start      uint16 = 0xC000
	wram0End        uint16 = 0xCFFF
	wramxStart      uint16 = 0xD000
	wramxEnd        uint16 = 0xDFFF
	wram0MirrorFrom uint16 = 0xE000
	wram0MirrorEnd  uint16 = 0xEFFF
	wramxMirrorFrom uint16 = 0xF000
	wramxMirrorEnd  uint16 = 0xFDFF
	oamStart        uint16 = 0xFE00
	oamEnd          uint16 = 0xFE9F
	unusableStart   uint16 = 0xFEA0
	unusableEnd     uint16 = 0xFEFF
	ioStart         uint16 = 0xFF00
	ioEnd           uint16 = 0xFF7F
	hramStart       uint16 = 0xFF80
	hramEnd         uint16 = 0xFFFE

	// bootEnd is the first address that is never covered by the boot program.
	bootEnd uint16 = 0x0100
)

const (
	romBankSize    = 0x4000
	vramSize       = 0x2000
	extramBankSize = 0x2000
	wramBankSize   = 0x1000
	wramBankCount  = 8
	oamSize        = 0xA0
	ioSize         = 0x80
	hramSize       = 0x7F
)

// I/O registers.
const (
	JOYP uint16 = 0xFF00 // Joypad
	SB   uint16 = 0xFF01 // Serial transfer data
	SC   uint16 = 0xFF02 // Serial transfer control
	DIV  uint16 = 0xFF04 // Divider
	TIMA uint16 = 0xFF05 // Timer counter
	TMA  uint16 = 0xFF06 // Timer modulo
	TAC  uint16 = 0xFF07 // Timer control
	IF   uint16 = 0xFF0F // Interrupt flag
	LCDC uint16 = 0xFF40 // LCD control
	STAT uint16 = 0xFF41 // LCD status
	SCY  uint16 = 0xFF42
	SCX  uint16 = 0xFF43
	LY   uint16 = 0xFF44 // LCD Y coordinate
	LYC  uint16 = 0xFF45 // LY compare
	DMA  uint16 = 0xFF46 // OAM DMA source and start
	BGP  uint16 = 0xFF47 // Background palette
	OBP0 uint16 = 0xFF48
	OBP1 uint16 = 0xFF49
	WY   uint16 = 0xFF4A
	WX   uint16 = 0xFF4B
	BOOT uint16 = 0xFF50 // Boot program disable latch
	SVBK uint16 = 0xFF70 // Work RAM bank select
	IE   uint16 = 0xFFFF // Interrupt enable
)

// sentinel is what the bus returns for addresses nothing answers.
const sentinel byte = 0x00

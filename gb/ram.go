package gb

// RAM is a block of backing storage owned by the bus.
type RAM struct {
	data []byte
}

// NewRAM creates a zeroed RAM of size bytes.
func NewRAM(size int) *RAM {
	return &RAM{data: make([]byte, size)}
}

// read reads data
func (r *RAM) read(i int) byte {
	return r.data[i]
}

// write writes data
func (r *RAM) write(i int, x byte) {
	r.data[i] = x
}

// size returns the number of bytes in the block.
func (r *RAM) size() int {
	return len(r.data)
}

// clear zeroes the whole block, used on power cycle.
func (r *RAM) clear() {
	for i := range r.data {
		r.data[i] = 0
	}
}

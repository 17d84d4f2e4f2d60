package gb

// Peripheral is a device clocked by the core. Advance is called once per
// console step with the cycles that step consumed, after the timer has seen
// them. Peripherals talk to the rest of the machine through the bus only.
type Peripheral interface {
	Advance(cycles int)
}

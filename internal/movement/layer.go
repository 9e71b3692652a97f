package movement

// LayerMask selects collision layers by bit. Layer n is included when bit n is set.
type LayerMask uint32

// Layer returns a mask holding only the given layer.
func Layer(n int) LayerMask {
	if n < 0 || n > 31 {
		return 0
	}
	return 1 << uint(n)
}

// Includes reports whether bit layer is set.
func (m LayerMask) Includes(layer int) bool {
	return m&Layer(layer) != 0
}

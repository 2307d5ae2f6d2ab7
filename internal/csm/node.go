package csm

type csmNode interface {
	// Value returns the value held by the node.
	Value() int

	// Reset sets the node to its smallest valid value.
	Reset()

	// Next changes the node value to the next valid value.
	// It returns true if the value overflowed and false otherwise.
	Next() bool

	// isValid reports whether the current value satisfies the node.
	isValid() bool
}

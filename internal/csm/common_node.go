package csm

var _ csmNode = (*CommonNode)(nil)

// CommonNode is a node with a fixed radix, used for every field except
// the day of month.
type CommonNode struct {
	value int
	min   int
	max   int
	// values is sorted; an empty slice allows every value in [min, max].
	values []int
}

// NewCommonNode returns a new CommonNode holding value.
func NewCommonNode(value, min, max int, values []int) *CommonNode {
	return &CommonNode{value, min, max, values}
}

func (n *CommonNode) Value() int {
	return n.value
}

func (n *CommonNode) Reset() {
	if n.hasRange() {
		n.value = n.values[0]
		return
	}
	n.value = n.min
}

func (n *CommonNode) Next() (overflowed bool) {
	if n.hasRange() {
		return n.nextInRange()
	}
	return n.next()
}

func (n *CommonNode) hasRange() bool {
	return len(n.values) != 0
}

func (n *CommonNode) next() bool {
	n.value++
	if n.value < n.min {
		n.value = n.min
	}
	if n.value > n.max {
		n.value = n.min
		return true
	}
	return false
}

func (n *CommonNode) nextInRange() bool {
	// find the next value in the range (assuming n.values is sorted)
	for _, value := range n.values {
		if value > n.value {
			n.value = value
			return false
		}
	}

	// the end of the values array is reached, wrap to the first value
	n.value = n.values[0]
	return true
}

func (n *CommonNode) isValid() bool {
	withinLimits := n.value >= n.min && n.value <= n.max
	if n.hasRange() {
		withinLimits = withinLimits && contains(n.values, n.value)
	}
	return withinLimits
}

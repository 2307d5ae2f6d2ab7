package csm

var _ csmNode = (*DayNode)(nil)

// DayNode is the day-of-month node. Its radix depends on the month and the
// year held by the more significant nodes.
type DayNode struct {
	value   int
	matcher DayMatcher
	month   csmNode
	year    csmNode
}

// NewDayNode returns a new DayNode holding value, which accepts the days
// selected by matcher.
func NewDayNode(value int, matcher DayMatcher, month, year csmNode) *DayNode {
	return &DayNode{
		value:   value,
		matcher: matcher,
		month:   month,
		year:    year,
	}
}

func (n *DayNode) Value() int {
	return n.value
}

// Reset moves to the first matching day of the current month. When the
// month has no matching day the node is left invalid.
func (n *DayNode) Reset() {
	n.value = 0
	n.Next()
}

// Next moves to the next matching day of the current month. On overflow
// the node holds day 1, which the caller resets once the month advanced.
func (n *DayNode) Next() (overflowed bool) {
	year, month := n.year.Value(), n.month.Value()
	last := lastDayOfMonth(year, month)
	for day := n.value + 1; day <= last; day++ {
		if n.matcher(year, month, day) {
			n.value = day
			return false
		}
	}
	n.value = 1
	return true
}

func (n *DayNode) isValid() bool {
	year, month := n.year.Value(), n.month.Value()
	return n.value >= 1 && n.value <= lastDayOfMonth(year, month) &&
		n.matcher(year, month, n.value)
}

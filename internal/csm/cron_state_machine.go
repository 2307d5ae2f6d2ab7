package csm

import "time"

type NodeID int

const (
	seconds NodeID = iota
	minutes
	hours
	days
	months
	years
)

// CronStateMachine walks the instants of a schedule in increasing order.
// It is not safe for concurrent use.
type CronStateMachine struct {
	second csmNode
	minute csmNode
	hour   csmNode
	day    *DayNode
	month  csmNode
	year   csmNode
}

// NewCronStateMachine returns a new CronStateMachine positioned at the
// instant held by the nodes.
func NewCronStateMachine(second, minute, hour csmNode, day *DayNode, month, year csmNode) *CronStateMachine {
	return &CronStateMachine{second, minute, hour, day, month, year}
}

// Value returns the instant held by the state machine in UTC.
func (csm *CronStateMachine) Value() time.Time {
	return csm.ValueWithLocation(time.UTC)
}

// ValueWithLocation returns the instant held by the state machine as a wall
// clock time in loc.
func (csm *CronStateMachine) ValueWithLocation(loc *time.Location) time.Time {
	return time.Date(
		csm.year.Value(),
		time.Month(csm.month.Value()),
		csm.day.Value(),
		csm.hour.Value(),
		csm.minute.Value(),
		csm.second.Value(),
		0, loc,
	)
}

// NextTriggerTime advances the state machine to the first valid instant
// strictly after the one it holds. It returns false when the schedule is
// exhausted, in which case the state machine must not be used again.
func (csm *CronStateMachine) NextTriggerTime(loc *time.Location) (time.Time, bool) {
	if !csm.overflowFrom(seconds) || !csm.findForward() {
		return time.Time{}, false
	}
	return csm.ValueWithLocation(loc), true
}

// findForward moves the most significant invalid node forward until every
// node is valid.
func (csm *CronStateMachine) findForward() bool {
	for {
		nodeID, ok := csm.firstInvalid()
		if !ok {
			return true
		}
		if !csm.overflowFrom(nodeID) {
			return false
		}
	}
}

func (csm *CronStateMachine) firstInvalid() (NodeID, bool) {
	for nodeID := years; nodeID >= seconds; nodeID-- {
		if !csm.selectNode(nodeID).isValid() {
			return nodeID, true
		}
	}
	return 0, false
}

// Reset all nodes below and including this one
func (csm *CronStateMachine) resetFrom(node NodeID) {
	chosenNode := csm.selectNode(node)
	if chosenNode == nil {
		return
	}

	chosenNode.Reset()
	csm.resetFrom(node - 1)
}

// Advance this node, carrying into the nodes above it on overflow and
// resetting the nodes below the last advanced one. Returns false when the
// year node overflows.
func (csm *CronStateMachine) overflowFrom(node NodeID) bool {
	chosenNode := csm.selectNode(node)
	if chosenNode == nil {
		return false
	}

	if chosenNode.Next() { // if overflows, keep recursing
		return csm.overflowFrom(node + 1) // Overflow above
	}
	csm.resetFrom(node - 1) // Reset below
	return true
}

// Select node from enum
func (csm *CronStateMachine) selectNode(node NodeID) csmNode {
	switch node {
	case years:
		return csm.year
	case months:
		return csm.month
	case days:
		return csm.day
	case hours:
		return csm.hour
	case minutes:
		return csm.minute
	case seconds:
		return csm.second
	}
	return nil
}

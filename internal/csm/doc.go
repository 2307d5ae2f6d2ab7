// Package csm computes fire times of a cron schedule.
//
// Given an arbitrary instant and the per-field constraints of a schedule,
// what is the first following instant that satisfies all of them?
//
// A date can be thought of as a mixed-radix number
// (https://en.wikipedia.org/wiki/Mixed_radix), with one node per field.
// CronStateMachine.NextTriggerTime first performs the smallest possible step
// forward: the second node moves to its next valid value, carrying into the
// more significant nodes when it overflows. Then, from most significant
// (year) to least significant (second), any node holding a value that the
// schedule rejects is moved forward to its next valid value. Moving a node
// resets every less significant node and can overflow, advancing the more
// significant ones. This repeats until every node is valid or the year node
// runs out of values.
//
// The day node does not have a constant radix. Its valid values depend on
// the month and the year, so it is driven by a DayMatcher rather than a
// fixed set of values.
package csm

package valueobjects

import "fmt"

// TicketStatus is a ticket's position on the board. Transitions are
// deliberately unconstrained: the board exposes a free-choice status
// selector, so any status may be set to any other directly, including
// moving done back to backlog.
type TicketStatus string

const (
	StatusBacklog    TicketStatus = "backlog"
	StatusTodo       TicketStatus = "todo"
	StatusInProgress TicketStatus = "in-progress"
	StatusDone       TicketStatus = "done"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusBacklog:    true,
	StatusTodo:       true,
	StatusInProgress: true,
	StatusDone:       true,
}

// AllTicketStatuses returns the board columns in display order.
func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{StatusBacklog, StatusTodo, StatusInProgress, StatusDone}
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) IsBacklog() bool {
	return ts == StatusBacklog
}

func (ts TicketStatus) IsTodo() bool {
	return ts == StatusTodo
}

func (ts TicketStatus) IsInProgress() bool {
	return ts == StatusInProgress
}

func (ts TicketStatus) IsDone() bool {
	return ts == StatusDone
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(s)
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}

package valueobjects

import "fmt"

// TicketType tags a ticket's generation source: derived from a milestone
// config, from a milestone-linked custom task, or from an unlinked custom
// task.
type TicketType string

const (
	TypeMilestone TicketType = "milestone"
	TypeLinked    TicketType = "linked"
	TypeUnlinked  TicketType = "unlinked"
)

var validTicketTypes = map[TicketType]bool{
	TypeMilestone: true,
	TypeLinked:    true,
	TypeUnlinked:  true,
}

func (tt TicketType) String() string {
	return string(tt)
}

func (tt TicketType) IsValid() bool {
	return validTicketTypes[tt]
}

func (tt TicketType) IsMilestone() bool {
	return tt == TypeMilestone
}

func NewTicketType(s string) (TicketType, error) {
	tt := TicketType(s)
	if !tt.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return tt, nil
}

package project

import (
	"fmt"
	"time"

	vo "loomflow/internal/domain/project/valueobjects"
)

// Field is a custom data field attached to a ticket. Value is nil until the
// assignee fills it in.
type Field struct {
	Name     string         `json:"name"`
	Label    string         `json:"label"`
	Type     vo.FieldType   `json:"type"`
	Required bool           `json:"required"`
	Value    *vo.FieldValue `json:"value,omitempty"`
}

// Ticket is a unit of work derived from a milestone config or a custom task.
// Tickets are generated as a batch and owned by a Project afterwards; all
// post-commit edits go through Project.UpdateTicket.
type Ticket struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Type         vo.TicketType   `json:"type"`
	Status       vo.TicketStatus `json:"status"`
	Assignee     string          `json:"assignee,omitempty"`
	Deadline     *time.Time      `json:"deadline,omitempty"`
	MilestoneID  string          `json:"milestone_id,omitempty"`
	OrderItemID  string          `json:"order_item_id,omitempty"`
	Dependencies []string        `json:"dependencies"`
	Fields       []Field         `json:"fields"`
}

// TicketPatch is a partial update applied to a single ticket. Nil pointer
// fields are left untouched. FieldValues is keyed by field name and replaces
// the value of each named custom field.
type TicketPatch struct {
	Title       *string
	Description *string
	Status      *vo.TicketStatus
	Assignee    *string
	Deadline    *time.Time
	FieldValues map[string]*vo.FieldValue
}

// apply merges the patch into the ticket. Status changes are unconstrained
// beyond validity of the status value itself. On failure the receiver may be
// partially written, so Project.UpdateTicket applies the patch to a copy.
func (t *Ticket) apply(patch TicketPatch) error {
	if patch.Title != nil {
		if *patch.Title == "" {
			return fmt.Errorf("ticket title cannot be empty")
		}
		t.Title = *patch.Title
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.Status != nil {
		if !patch.Status.IsValid() {
			return fmt.Errorf("invalid ticket status: %s", *patch.Status)
		}
		t.Status = *patch.Status
	}
	if patch.Assignee != nil {
		t.Assignee = *patch.Assignee
	}
	if patch.Deadline != nil {
		deadline := *patch.Deadline
		t.Deadline = &deadline
	}
	for name, value := range patch.FieldValues {
		idx := -1
		for i := range t.Fields {
			if t.Fields[i].Name == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return fmt.Errorf("unknown ticket field: %s", name)
		}
		if value != nil && !value.Matches(t.Fields[idx].Type) {
			return fmt.Errorf("field %s expects a %s value, got %s", name, t.Fields[idx].Type, value.Type)
		}
		t.Fields[idx].Value = value
	}
	return nil
}

// clone returns a deep copy so aggregate internals never leak by reference.
func (t Ticket) clone() Ticket {
	copied := t
	if t.Deadline != nil {
		deadline := *t.Deadline
		copied.Deadline = &deadline
	}
	copied.Dependencies = make([]string, len(t.Dependencies))
	copy(copied.Dependencies, t.Dependencies)
	copied.Fields = make([]Field, len(t.Fields))
	copy(copied.Fields, t.Fields)
	for i := range copied.Fields {
		if copied.Fields[i].Value != nil {
			value := *copied.Fields[i].Value
			copied.Fields[i].Value = &value
		}
	}
	return copied
}

func cloneTickets(tickets []Ticket) []Ticket {
	copied := make([]Ticket, len(tickets))
	for i, t := range tickets {
		copied[i] = t.clone()
	}
	return copied
}

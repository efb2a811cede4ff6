// Package project holds the Project aggregate: a committed, named
// instantiation of generated tickets tied to one order. Tickets are
// snapshotted at creation and mutated only through the aggregate.
package project

import (
	"fmt"
	"time"

	vo "loomflow/internal/domain/project/valueobjects"
)

type Project struct {
	id         string
	name       string
	orderID    string
	templateID string
	status     vo.ProjectStatus
	createdAt  time.Time
	tickets    []Ticket
}

// NewProject creates an active project owning a copy of the generated
// tickets. The generation engine never revisits a created project.
func NewProject(id, name, orderID, templateID string, tickets []Ticket, now time.Time) (*Project, error) {
	if id == "" {
		return nil, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if orderID == "" {
		return nil, fmt.Errorf("order ID is required")
	}

	return &Project{
		id:         id,
		name:       name,
		orderID:    orderID,
		templateID: templateID,
		status:     vo.ProjectActive,
		createdAt:  now,
		tickets:    cloneTickets(tickets),
	}, nil
}

// ReconstructProject rebuilds a project from stored state.
func ReconstructProject(
	id, name, orderID, templateID string,
	status vo.ProjectStatus,
	createdAt time.Time,
	tickets []Ticket,
) (*Project, error) {
	if id == "" {
		return nil, fmt.Errorf("project ID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("project name is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid project status: %s", status)
	}

	return &Project{
		id:         id,
		name:       name,
		orderID:    orderID,
		templateID: templateID,
		status:     status,
		createdAt:  createdAt,
		tickets:    cloneTickets(tickets),
	}, nil
}

func (p *Project) ID() string {
	return p.id
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) OrderID() string {
	return p.orderID
}

func (p *Project) TemplateID() string {
	return p.templateID
}

func (p *Project) Status() vo.ProjectStatus {
	return p.status
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

// Tickets returns a copy of the owned ticket collection in generation order.
func (p *Project) Tickets() []Ticket {
	return cloneTickets(p.tickets)
}

// TicketCount returns the number of owned tickets.
func (p *Project) TicketCount() int {
	return len(p.tickets)
}

// Ticket returns a copy of the ticket with the given ID.
func (p *Project) Ticket(ticketID string) (Ticket, bool) {
	for i := range p.tickets {
		if p.tickets[i].ID == ticketID {
			return p.tickets[i].clone(), true
		}
	}
	return Ticket{}, false
}

// TicketsByStatus returns copies of tickets in the given board column,
// preserving generation order.
func (p *Project) TicketsByStatus(status vo.TicketStatus) []Ticket {
	var result []Ticket
	for i := range p.tickets {
		if p.tickets[i].Status == status {
			result = append(result, p.tickets[i].clone())
		}
	}
	return result
}

// TicketsByAssignee returns copies of tickets assigned to the given user.
func (p *Project) TicketsByAssignee(assignee string) []Ticket {
	var result []Ticket
	for i := range p.tickets {
		if p.tickets[i].Assignee == assignee {
			result = append(result, p.tickets[i].clone())
		}
	}
	return result
}

// UpdateTicket applies a partial update to the matching ticket. The patch is
// applied to a copy and swapped in only when every edit in it succeeds, so a
// failed patch leaves the stored ticket exactly as it was. Returns false if
// no ticket matches.
func (p *Project) UpdateTicket(ticketID string, patch TicketPatch) (bool, error) {
	for i := range p.tickets {
		if p.tickets[i].ID == ticketID {
			updated := p.tickets[i].clone()
			if err := updated.apply(patch); err != nil {
				return true, err
			}
			p.tickets[i] = updated
			return true, nil
		}
	}
	return false, nil
}

// ChangeStatus moves the project to a new lifecycle state.
func (p *Project) ChangeStatus(status vo.ProjectStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid project status: %s", status)
	}
	p.status = status
	return nil
}

// Progress returns the completion percentage: done tickets over total,
// rounded down, 0 for an empty project.
func (p *Project) Progress() int {
	if len(p.tickets) == 0 {
		return 0
	}
	done := 0
	for i := range p.tickets {
		if p.tickets[i].Status.IsDone() {
			done++
		}
	}
	return done * 100 / len(p.tickets)
}

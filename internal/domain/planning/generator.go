package planning

import (
	"fmt"
	"time"

	"loomflow/internal/domain/catalog"
	"loomflow/internal/domain/project"
	vo "loomflow/internal/domain/project/valueobjects"
)

// Generate derives the full ticket batch for one order: milestone tickets in
// config order first, then one ticket per custom task in registry order.
// Ticket IDs are derived from the generation source, so they are pairwise
// unique within a batch. The result is deterministic for identical inputs.
//
// A nil order or template yields nil: generating against an incomplete
// selection is an inert no-op, not an error.
//
// Linked custom tasks carry a day offset against their milestone's deadline
// that is intentionally not resolved here; the ticket keeps whatever literal
// deadline the task carries (none, for linked tasks authored through the
// planning flow). Matches the observed behavior of the board this engine
// replaces.
func Generate(
	order *catalog.Order,
	template *catalog.WorkflowTemplate,
	configs []MilestoneConfig,
	tasks []CustomTask,
	now time.Time,
) []project.Ticket {
	if order == nil || template == nil {
		return nil
	}

	var tickets []project.Ticket

	for _, config := range configs {
		deadline := now.Add(time.Duration(config.DeadlineDays) * 24 * time.Hour)

		if config.IsOrderLevel {
			tickets = append(tickets, project.Ticket{
				ID:           fmt.Sprintf("ticket-%s-order", config.MilestoneID),
				Title:        fmt.Sprintf("%s - Order Level", config.MilestoneName),
				Description:  fmt.Sprintf("Complete %s for entire order", config.MilestoneName),
				Type:         vo.TypeMilestone,
				Status:       vo.StatusBacklog,
				Deadline:     &deadline,
				MilestoneID:  config.MilestoneID,
				Dependencies: []string{},
				Fields:       []project.Field{},
			})
			continue
		}

		field := config.GroupingField
		if field == "" {
			field = DefaultGroupingField
		}

		for _, group := range GroupItems(order.Items, field) {
			groupDeadline := deadline
			tickets = append(tickets, project.Ticket{
				ID:           fmt.Sprintf("ticket-%s-%s", config.MilestoneID, group.Key),
				Title:        fmt.Sprintf("%s - %s", config.MilestoneName, group.Key),
				Description:  fmt.Sprintf("Complete %s for %s (%d items)", config.MilestoneName, group.Key, len(group.Items)),
				Type:         vo.TypeMilestone,
				Status:       vo.StatusBacklog,
				Deadline:     &groupDeadline,
				MilestoneID:  config.MilestoneID,
				Dependencies: []string{},
				Fields:       []project.Field{},
			})
		}
	}

	for _, task := range tasks {
		ticket := project.Ticket{
			ID:           fmt.Sprintf("ticket-custom-%s", task.ID),
			Title:        task.Name,
			Description:  task.Description,
			Type:         vo.TicketType(task.Kind),
			Status:       vo.StatusBacklog,
			Assignee:     task.Assignee,
			Dependencies: []string{},
			Fields:       []project.Field{},
		}
		if task.Deadline != nil {
			deadline := *task.Deadline
			ticket.Deadline = &deadline
		}
		tickets = append(tickets, ticket)
	}

	return tickets
}

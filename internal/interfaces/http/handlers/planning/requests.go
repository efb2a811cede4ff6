package planning

import (
	"time"

	"loomflow/internal/application/planning/usecases"
	"loomflow/internal/domain/planning"
)

type SelectOrderRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

func (r *SelectOrderRequest) ToCommand() usecases.SelectOrderCommand {
	return usecases.SelectOrderCommand{OrderID: r.OrderID}
}

type UpdateMilestoneConfigRequest struct {
	IsOrderLevel  *bool   `json:"is_order_level"`
	GroupingField *string `json:"grouping_field"`
	DeadlineDays  *int    `json:"deadline_days"`
}

func (r *UpdateMilestoneConfigRequest) ToCommand(milestoneID string) usecases.UpdateMilestoneConfigCommand {
	return usecases.UpdateMilestoneConfigCommand{
		MilestoneID:   milestoneID,
		IsOrderLevel:  r.IsOrderLevel,
		GroupingField: r.GroupingField,
		DeadlineDays:  r.DeadlineDays,
	}
}

type AddCustomTaskRequest struct {
	Name              string     `json:"name" binding:"required"`
	Description       string     `json:"description"`
	Kind              string     `json:"kind" binding:"required,oneof=linked unlinked"`
	Assignee          string     `json:"assignee"`
	Deadline          *time.Time `json:"deadline"`
	LinkedMilestoneID string     `json:"linked_milestone_id"`
	OffsetDays        int        `json:"offset_days"`
	OffsetDirection   string     `json:"offset_direction" binding:"omitempty,oneof=before after"`
}

func (r *AddCustomTaskRequest) ToCommand() usecases.AddCustomTaskCommand {
	return usecases.AddCustomTaskCommand{
		Name:              r.Name,
		Description:       r.Description,
		Kind:              planning.TaskKind(r.Kind),
		Assignee:          r.Assignee,
		Deadline:          r.Deadline,
		LinkedMilestoneID: r.LinkedMilestoneID,
		OffsetDays:        r.OffsetDays,
		OffsetDirection:   planning.OffsetDirection(r.OffsetDirection),
	}
}

type CommitProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

func (r *CommitProjectRequest) ToCommand() usecases.CommitProjectCommand {
	return usecases.CommitProjectCommand{Name: r.Name}
}

package project

import (
	"time"

	"loomflow/internal/application/project/usecases"
	vo "loomflow/internal/domain/project/valueobjects"
)

type FieldValueRequest struct {
	Type     string  `json:"type" binding:"required,oneof=text textarea number select file"`
	Text     string  `json:"text"`
	Number   float64 `json:"number"`
	Option   string  `json:"option"`
	Filename string  `json:"filename"`
}

func (r *FieldValueRequest) toValue() *vo.FieldValue {
	return &vo.FieldValue{
		Type:     vo.FieldType(r.Type),
		Text:     r.Text,
		Number:   r.Number,
		Option:   r.Option,
		Filename: r.Filename,
	}
}

type UpdateTicketRequest struct {
	Title       *string                       `json:"title"`
	Description *string                       `json:"description"`
	Status      *string                       `json:"status" binding:"omitempty,oneof=backlog todo in-progress done"`
	Assignee    *string                       `json:"assignee"`
	Deadline    *time.Time                    `json:"deadline"`
	FieldValues map[string]*FieldValueRequest `json:"field_values"`
}

func (r *UpdateTicketRequest) ToCommand(projectID, ticketID string) usecases.UpdateTicketCommand {
	cmd := usecases.UpdateTicketCommand{
		ProjectID:   projectID,
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Assignee:    r.Assignee,
		Deadline:    r.Deadline,
	}
	if len(r.FieldValues) > 0 {
		cmd.FieldValues = make(map[string]*vo.FieldValue, len(r.FieldValues))
		for name, value := range r.FieldValues {
			if value != nil {
				cmd.FieldValues[name] = value.toValue()
			} else {
				cmd.FieldValues[name] = nil
			}
		}
	}
	return cmd
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomflow/internal/domain/project"
	vo "loomflow/internal/domain/project/valueobjects"
)

func fixtureProject(t *testing.T, id, name string) *project.Project {
	t.Helper()
	deadline := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	p, err := project.NewProject(id, name, "order-001", "textile-order-1", []project.Ticket{
		{
			ID:           "ticket-design-concept-order",
			Title:        "Design Concept Approved - Order Level",
			Description:  "Complete **Design Concept Approved** for entire order",
			Type:         vo.TypeMilestone,
			Status:       vo.StatusBacklog,
			Deadline:     &deadline,
			MilestoneID:  "design-concept",
			Dependencies: []string{},
		},
		{
			ID:           "ticket-custom-task_1",
			Title:        "Packaging Design",
			Type:         vo.TypeUnlinked,
			Status:       vo.StatusDone,
			Assignee:     "design.team@company.com",
			Dependencies: []string{},
		},
	}, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return p
}

func TestListProjectsUseCase_Execute(t *testing.T) {
	projectRepo := &mockProjectRepository{
		ListFunc: func(ctx context.Context) ([]*project.Project, error) {
			return []*project.Project{
				fixtureProject(t, "proj_1", "Summer Collection 2024"),
				fixtureProject(t, "proj_2", "Winter Collection 2024"),
			}, nil
		},
	}

	useCase := NewListProjectsUseCase(projectRepo, &mockLogger{})
	result, err := useCase.Execute(context.Background(), ListProjectsQuery{})

	require.NoError(t, err)
	require.Len(t, result.Projects, 2)
	assert.Equal(t, "proj_1", result.Projects[0].ID)
	assert.Equal(t, "Summer Collection 2024", result.Projects[0].Name)
	assert.Equal(t, "active", result.Projects[0].Status)
	assert.Equal(t, 2, result.Projects[0].TicketCount)
	assert.Equal(t, 50, result.Projects[0].Progress)
}

func TestListProjectsUseCase_Execute_Empty(t *testing.T) {
	useCase := NewListProjectsUseCase(&mockProjectRepository{}, &mockLogger{})

	result, err := useCase.Execute(context.Background(), ListProjectsQuery{})

	require.NoError(t, err)
	assert.Empty(t, result.Projects)
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomflow/internal/domain/planning"
	"loomflow/internal/shared/errors"
	"loomflow/internal/shared/id"
)

func TestAddCustomTaskUseCase_Execute_Unlinked(t *testing.T) {
	session := seededSession(t)
	deadline := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)

	useCase := NewAddCustomTaskUseCase(sessionRepoFor(session), &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCustomTaskCommand{
		Name:        "Packaging Design",
		Description: "Design packaging and labeling",
		Kind:        planning.TaskUnlinked,
		Assignee:    "design.team@company.com",
		Deadline:    &deadline,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, id.HasPrefix(result.Task.ID, id.PrefixTask))
	assert.Equal(t, "Packaging Design", result.Task.Name)
	require.NotNil(t, result.Task.Deadline)
	assert.True(t, result.Task.Deadline.Equal(deadline))

	tasks := session.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, result.Task.ID, tasks[0].ID)
}

func TestAddCustomTaskUseCase_Execute_Linked(t *testing.T) {
	session := seededSession(t)

	useCase := NewAddCustomTaskUseCase(sessionRepoFor(session), &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCustomTaskCommand{
		Name:              "Order Fabric Swatches",
		Kind:              planning.TaskLinked,
		LinkedMilestoneID: "design-concept",
		OffsetDays:        3,
		OffsetDirection:   planning.OffsetBefore,
	})

	require.NoError(t, err)
	assert.Equal(t, planning.TaskLinked, result.Task.Kind)
	assert.Equal(t, "design-concept", result.Task.LinkedMilestoneID)
	assert.Equal(t, 3, result.Task.OffsetDays)
}

func TestAddCustomTaskUseCase_Execute_AppendOnly(t *testing.T) {
	session := seededSession(t)
	useCase := NewAddCustomTaskUseCase(sessionRepoFor(session), &mockLogger{})

	first, err := useCase.Execute(context.Background(), AddCustomTaskCommand{
		Name: "First", Kind: planning.TaskUnlinked,
	})
	require.NoError(t, err)
	second, err := useCase.Execute(context.Background(), AddCustomTaskCommand{
		Name: "Second", Kind: planning.TaskUnlinked,
	})
	require.NoError(t, err)

	tasks := session.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, first.Task.ID, tasks[0].ID)
	assert.Equal(t, second.Task.ID, tasks[1].ID)
	assert.NotEqual(t, first.Task.ID, second.Task.ID)
}

func TestAddCustomTaskUseCase_Execute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name          string
		command       AddCustomTaskCommand
		expectedError string
	}{
		{
			name:          "missing name",
			command:       AddCustomTaskCommand{Kind: planning.TaskUnlinked},
			expectedError: "task name is required",
		},
		{
			name:          "invalid kind",
			command:       AddCustomTaskCommand{Name: "X", Kind: planning.TaskKind("epic")},
			expectedError: "invalid task kind",
		},
		{
			name:          "linked without milestone",
			command:       AddCustomTaskCommand{Name: "X", Kind: planning.TaskLinked},
			expectedError: "linked task requires a milestone",
		},
		{
			name: "linked to unknown milestone",
			command: AddCustomTaskCommand{
				Name: "X", Kind: planning.TaskLinked, LinkedMilestoneID: "shipping-dispatch",
			},
			expectedError: "unknown milestone",
		},
		{
			name: "negative offset",
			command: AddCustomTaskCommand{
				Name: "X", Kind: planning.TaskLinked, LinkedMilestoneID: "design-concept", OffsetDays: -2,
			},
			expectedError: "offset days cannot be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := seededSession(t)

			useCase := NewAddCustomTaskUseCase(sessionRepoFor(session), &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
			assert.Empty(t, session.Tasks())
		})
	}
}

func TestAddCustomTaskUseCase_Execute_NoOrderSelected(t *testing.T) {
	session := planning.NewSession()

	useCase := NewAddCustomTaskUseCase(sessionRepoFor(session), &mockLogger{})
	result, err := useCase.Execute(context.Background(), AddCustomTaskCommand{
		Name: "Packaging Design", Kind: planning.TaskUnlinked,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no order selected")
}

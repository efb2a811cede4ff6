package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loomflow/internal/domain/planning"
	"loomflow/internal/shared/errors"
)

func sessionRepoFor(session *planning.Session) *mockSessionRepository {
	return &mockSessionRepository{
		CurrentFunc: func(ctx context.Context) (*planning.Session, error) {
			return session, nil
		},
	}
}

func TestUpdateMilestoneConfigUseCase_Execute_Success(t *testing.T) {
	session := seededSession(t)
	orderLevel := false
	field := "color"
	days := 10

	useCase := NewUpdateMilestoneConfigUseCase(sessionRepoFor(session), &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateMilestoneConfigCommand{
		MilestoneID:   "design-concept",
		IsOrderLevel:  &orderLevel,
		GroupingField: &field,
		DeadlineDays:  &days,
	})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "design-concept", result.Config.MilestoneID)
	assert.False(t, result.Config.IsOrderLevel)
	assert.Equal(t, "color", result.Config.GroupingField)
	assert.Equal(t, 10, result.Config.DeadlineDays)

	// Other configs untouched.
	configs := session.Configs()
	assert.True(t, configs[1].IsOrderLevel)
	assert.Equal(t, 14, configs[1].DeadlineDays)
}

func TestUpdateMilestoneConfigUseCase_Execute_PartialPatch(t *testing.T) {
	session := seededSession(t)
	days := 3

	useCase := NewUpdateMilestoneConfigUseCase(sessionRepoFor(session), &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateMilestoneConfigCommand{
		MilestoneID:  "design-concept",
		DeadlineDays: &days,
	})

	require.NoError(t, err)
	assert.Equal(t, 3, result.Config.DeadlineDays)
	assert.True(t, result.Config.IsOrderLevel)
}

func TestUpdateMilestoneConfigUseCase_Execute_ValidationErrors(t *testing.T) {
	negative := -1
	undeclared := "quantity"

	tests := []struct {
		name          string
		command       UpdateMilestoneConfigCommand
		expectedError string
	}{
		{
			name:          "missing milestone ID",
			command:       UpdateMilestoneConfigCommand{},
			expectedError: "milestone ID is required",
		},
		{
			name: "negative deadline days",
			command: UpdateMilestoneConfigCommand{
				MilestoneID:  "design-concept",
				DeadlineDays: &negative,
			},
			expectedError: "deadline days cannot be negative",
		},
		{
			name: "undeclared grouping field",
			command: UpdateMilestoneConfigCommand{
				MilestoneID:   "design-concept",
				GroupingField: &undeclared,
			},
			expectedError: "not declared on order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := seededSession(t)

			useCase := NewUpdateMilestoneConfigUseCase(sessionRepoFor(session), &mockLogger{})
			result, err := useCase.Execute(context.Background(), tt.command)

			require.Error(t, err)
			assert.Nil(t, result)
			assert.True(t, errors.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestUpdateMilestoneConfigUseCase_Execute_NoOrderSelected(t *testing.T) {
	session := planning.NewSession()
	days := 5

	useCase := NewUpdateMilestoneConfigUseCase(sessionRepoFor(session), &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateMilestoneConfigCommand{
		MilestoneID:  "design-concept",
		DeadlineDays: &days,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "no order selected")
}

func TestUpdateMilestoneConfigUseCase_Execute_UnknownMilestone(t *testing.T) {
	session := seededSession(t)
	days := 5

	useCase := NewUpdateMilestoneConfigUseCase(sessionRepoFor(session), &mockLogger{})
	result, err := useCase.Execute(context.Background(), UpdateMilestoneConfigCommand{
		MilestoneID:  "shipping-dispatch",
		DeadlineDays: &days,
	})

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsNotFoundError(err))
}

package planning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SelectOrder(t *testing.T) {
	s := NewSession()

	err := s.SelectOrder(testOrder(), testTemplate())

	require.NoError(t, err)
	assert.Equal(t, "order-001", s.Order().ID)
	assert.Len(t, s.Configs(), 4)
	assert.Empty(t, s.Tasks())
	assert.Nil(t, s.Preview())
}

func TestSession_SelectOrder_Validation(t *testing.T) {
	s := NewSession()

	assert.Error(t, s.SelectOrder(nil, testTemplate()))
	assert.Error(t, s.SelectOrder(testOrder(), nil))

	other := testTemplate()
	other.ID = "another-template"
	assert.Error(t, s.SelectOrder(testOrder(), other))
}

func TestSession_SelectOrder_ReplacesDraft(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectOrder(testOrder(), testTemplate()))

	days := 60
	require.True(t, s.UpdateConfig("design-concept", ConfigPatch{DeadlineDays: &days}))
	require.NoError(t, s.AddTask(CustomTask{ID: "task-1", Name: "Extra", Kind: TaskUnlinked}))
	s.Generate(time.Now())

	require.NoError(t, s.SelectOrder(testOrder(), testTemplate()))

	assert.Equal(t, 7, s.Configs()[0].DeadlineDays)
	assert.Empty(t, s.Tasks())
	assert.Nil(t, s.Preview())
}

func TestSession_AddTask(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectOrder(testOrder(), testTemplate()))

	tests := []struct {
		name    string
		task    CustomTask
		wantErr string
	}{
		{
			name: "unlinked task",
			task: CustomTask{ID: "task-1", Name: "Packaging", Kind: TaskUnlinked},
		},
		{
			name: "linked task with known milestone",
			task: CustomTask{ID: "task-2", Name: "Fit Review", Kind: TaskLinked, LinkedMilestoneID: "design-concept", OffsetDays: 2, OffsetDirection: OffsetBefore},
		},
		{
			name:    "missing name",
			task:    CustomTask{ID: "task-3", Kind: TaskUnlinked},
			wantErr: "task name is required",
		},
		{
			name:    "missing ID",
			task:    CustomTask{Name: "No ID", Kind: TaskUnlinked},
			wantErr: "task ID is required",
		},
		{
			name:    "linked task without milestone",
			task:    CustomTask{ID: "task-4", Name: "Dangling", Kind: TaskLinked},
			wantErr: "linked task requires a milestone",
		},
		{
			name:    "linked task with unknown milestone",
			task:    CustomTask{ID: "task-5", Name: "Lost", Kind: TaskLinked, LinkedMilestoneID: "no-such"},
			wantErr: "unknown milestone",
		},
		{
			name:    "invalid kind",
			task:    CustomTask{ID: "task-6", Name: "Weird", Kind: TaskKind("other")},
			wantErr: "invalid task kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddTask(tt.task)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSession_AddTask_AppendOnly(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectOrder(testOrder(), testTemplate()))

	require.NoError(t, s.AddTask(CustomTask{ID: "task-1", Name: "First", Kind: TaskUnlinked}))
	require.NoError(t, s.AddTask(CustomTask{ID: "task-2", Name: "Second", Kind: TaskUnlinked}))

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "First", tasks[0].Name)
	assert.Equal(t, "Second", tasks[1].Name)
}

func TestSession_GenerateReplacesPreview(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectOrder(testOrder(), testTemplate()))

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	first := s.Generate(now)
	require.Len(t, first, 4)

	require.NoError(t, s.AddTask(CustomTask{ID: "task-1", Name: "Extra", Kind: TaskUnlinked}))
	second := s.Generate(now)

	require.Len(t, second, 5)
	assert.Len(t, s.Preview(), 5)
}

func TestSession_GenerateWithoutOrder(t *testing.T) {
	s := NewSession()

	assert.Nil(t, s.Generate(time.Now()))
	assert.Nil(t, s.Preview())
}

func TestSession_Reset(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.SelectOrder(testOrder(), testTemplate()))
	require.NoError(t, s.AddTask(CustomTask{ID: "task-1", Name: "Extra", Kind: TaskUnlinked}))
	s.Generate(time.Now())

	s.Reset()

	assert.Nil(t, s.Order())
	assert.Nil(t, s.Template())
	assert.Empty(t, s.Configs())
	assert.Empty(t, s.Tasks())
	assert.Nil(t, s.Preview())
}

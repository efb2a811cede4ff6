package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    TicketStatus
		wantErr bool
	}{
		{"backlog", StatusBacklog, false},
		{"todo", StatusTodo, false},
		{"in-progress", StatusInProgress, false},
		{"done", StatusDone, false},
		{"archived", "", true},
		{"", "", true},
		{"Done", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := NewTicketStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAllTicketStatuses_BoardOrder(t *testing.T) {
	assert.Equal(t, []TicketStatus{StatusBacklog, StatusTodo, StatusInProgress, StatusDone}, AllTicketStatuses())
}

func TestTicketStatus_Checkers(t *testing.T) {
	assert.True(t, StatusDone.IsDone())
	assert.False(t, StatusInProgress.IsDone())
	assert.True(t, StatusBacklog.IsBacklog())
	assert.True(t, StatusInProgress.IsInProgress())
}

func TestNewProjectStatus(t *testing.T) {
	for _, s := range []string{"active", "completed", "paused"} {
		got, err := NewProjectStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	_, err := NewProjectStatus("cancelled")
	assert.Error(t, err)
}

func TestNewTicketType(t *testing.T) {
	for _, s := range []string{"milestone", "linked", "unlinked"} {
		got, err := NewTicketType(s)
		require.NoError(t, err)
		assert.Equal(t, s, got.String())
	}

	_, err := NewTicketType("epic")
	assert.Error(t, err)
}

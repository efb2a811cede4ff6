package planning

import (
	"fmt"
	"time"
)

// TaskKind discriminates custom tasks: linked tasks reference a milestone
// with a day offset, unlinked tasks may carry an absolute deadline.
type TaskKind string

const (
	TaskLinked   TaskKind = "linked"
	TaskUnlinked TaskKind = "unlinked"
)

func (k TaskKind) IsValid() bool {
	return k == TaskLinked || k == TaskUnlinked
}

func (k TaskKind) String() string {
	return string(k)
}

// OffsetDirection places a linked task's offset relative to its milestone's
// deadline.
type OffsetDirection string

const (
	OffsetBefore OffsetDirection = "before"
	OffsetAfter  OffsetDirection = "after"
)

func (d OffsetDirection) IsValid() bool {
	return d == OffsetBefore || d == OffsetAfter
}

// CustomTask is a user-authored task added during planning. The registry is
// append-only and insertion-ordered; generation walks it after all milestone
// configs.
//
// The milestone offset on linked tasks is captured but not resolved into a
// deadline by the generation engine; see Generate.
type CustomTask struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Description       string          `json:"description"`
	Kind              TaskKind        `json:"kind"`
	Assignee          string          `json:"assignee,omitempty"`
	Deadline          *time.Time      `json:"deadline,omitempty"`
	LinkedMilestoneID string          `json:"linked_milestone_id,omitempty"`
	OffsetDays        int             `json:"offset_days,omitempty"`
	OffsetDirection   OffsetDirection `json:"offset_direction,omitempty"`
}

// Validate checks the task's own invariants. Milestone existence for linked
// tasks is checked by the caller against the active config set.
func (t CustomTask) Validate() error {
	if t.Name == "" {
		return fmt.Errorf("task name is required")
	}
	if !t.Kind.IsValid() {
		return fmt.Errorf("invalid task kind: %s", t.Kind)
	}
	if t.Kind == TaskLinked {
		if t.LinkedMilestoneID == "" {
			return fmt.Errorf("linked task requires a milestone")
		}
		if t.OffsetDirection != "" && !t.OffsetDirection.IsValid() {
			return fmt.Errorf("invalid offset direction: %s", t.OffsetDirection)
		}
		if t.OffsetDays < 0 {
			return fmt.Errorf("offset days cannot be negative")
		}
	}
	return nil
}

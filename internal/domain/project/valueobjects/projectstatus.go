package valueobjects

import "fmt"

// ProjectStatus is a project's lifecycle state.
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
	ProjectPaused    ProjectStatus = "paused"
)

var validProjectStatuses = map[ProjectStatus]bool{
	ProjectActive:    true,
	ProjectCompleted: true,
	ProjectPaused:    true,
}

func (ps ProjectStatus) String() string {
	return string(ps)
}

func (ps ProjectStatus) IsValid() bool {
	return validProjectStatuses[ps]
}

func (ps ProjectStatus) IsActive() bool {
	return ps == ProjectActive
}

func NewProjectStatus(s string) (ProjectStatus, error) {
	ps := ProjectStatus(s)
	if !ps.IsValid() {
		return "", fmt.Errorf("invalid project status: %s", s)
	}
	return ps, nil
}

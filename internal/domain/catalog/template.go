// Package catalog holds the immutable reference data the planning flow reads:
// workflow templates, customer orders, and the system user directory.
package catalog

// Action names the data fields a stage expects to be filled in. The fields
// are informational for the board UI; generation does not enforce them.
type Action struct {
	ID     string   `json:"id" yaml:"id"`
	Name   string   `json:"name" yaml:"name"`
	Fields []string `json:"fields" yaml:"fields"`
}

// Stage is a step within a phase. Completing a stage is marked by its
// milestone, which is what ticket generation keys on.
type Stage struct {
	ID                  string   `json:"id" yaml:"id"`
	Name                string   `json:"name" yaml:"name"`
	Milestone           string   `json:"milestone" yaml:"milestone"`
	DefaultDeadlineDays int      `json:"default_deadline_days" yaml:"default_deadline_days"`
	Actions             []Action `json:"actions" yaml:"actions"`
}

// Phase is an ordered group of stages.
type Phase struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Stages []Stage `json:"stages" yaml:"stages"`
}

// WorkflowTemplate is a reusable workflow definition of phases, stages and
// milestones. Templates are read-only reference data.
type WorkflowTemplate struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	Phases      []Phase `json:"phases" yaml:"phases"`
}

// MilestoneCount returns the number of milestones (stages) across all phases.
func (t *WorkflowTemplate) MilestoneCount() int {
	n := 0
	for _, phase := range t.Phases {
		n += len(phase.Stages)
	}
	return n
}

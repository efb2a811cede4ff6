package planning

import (
	"fmt"
	"time"

	"loomflow/internal/domain/catalog"
	"loomflow/internal/domain/project"
)

// Session is the draft state of one project configuration flow: the selected
// order and template, the milestone config set, the custom task registry and
// the last generated preview. One session backs one planning flow from order
// selection to commit; committing resets it.
type Session struct {
	order    *catalog.Order
	template *catalog.WorkflowTemplate
	configs  []MilestoneConfig
	tasks    []CustomTask
	preview  []project.Ticket
}

func NewSession() *Session {
	return &Session{}
}

// SelectOrder seeds the session from an order and its template. Any prior
// configuration, custom tasks and preview are discarded: selecting an order
// fully replaces the draft.
func (s *Session) SelectOrder(order *catalog.Order, template *catalog.WorkflowTemplate) error {
	if order == nil {
		return fmt.Errorf("order is required")
	}
	if template == nil {
		return fmt.Errorf("template is required")
	}
	if order.TemplateID != template.ID {
		return fmt.Errorf("order %s references template %s, not %s", order.ID, order.TemplateID, template.ID)
	}

	s.order = order
	s.template = template
	s.configs = InitConfigs(template)
	s.tasks = nil
	s.preview = nil
	return nil
}

func (s *Session) Order() *catalog.Order {
	return s.order
}

func (s *Session) Template() *catalog.WorkflowTemplate {
	return s.template
}

// Configs returns a copy of the milestone config set in template order.
func (s *Session) Configs() []MilestoneConfig {
	configs := make([]MilestoneConfig, len(s.configs))
	copy(configs, s.configs)
	return configs
}

// UpdateConfig patches the config matching milestoneID. Unknown IDs are a
// no-op; the config order never changes.
func (s *Session) UpdateConfig(milestoneID string, patch ConfigPatch) bool {
	return ApplyPatch(s.configs, milestoneID, patch)
}

// AddTask appends a validated task to the registry. Existing entries are
// never mutated or removed.
func (s *Session) AddTask(task CustomTask) error {
	if task.ID == "" {
		return fmt.Errorf("task ID is required")
	}
	if err := task.Validate(); err != nil {
		return err
	}
	if task.Kind == TaskLinked {
		if _, ok := FindConfig(s.configs, task.LinkedMilestoneID); !ok {
			return fmt.Errorf("unknown milestone: %s", task.LinkedMilestoneID)
		}
	}
	s.tasks = append(s.tasks, task)
	return nil
}

// Tasks returns the custom task registry in insertion order.
func (s *Session) Tasks() []CustomTask {
	tasks := make([]CustomTask, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// Generate runs the engine over the current draft and atomically replaces
// the stored preview. With no order selected it clears the preview and
// returns nil.
func (s *Session) Generate(now time.Time) []project.Ticket {
	s.preview = Generate(s.order, s.template, s.configs, s.tasks, now)
	return s.Preview()
}

// Preview returns a copy of the last generated ticket batch.
func (s *Session) Preview() []project.Ticket {
	if s.preview == nil {
		return nil
	}
	preview := make([]project.Ticket, len(s.preview))
	copy(preview, s.preview)
	return preview
}

// Clone returns an independent copy of the draft. Catalog entities are
// immutable reference data, so the order and template pointers are shared.
func (s *Session) Clone() *Session {
	copied := &Session{
		order:    s.order,
		template: s.template,
	}
	if s.configs != nil {
		copied.configs = make([]MilestoneConfig, len(s.configs))
		copy(copied.configs, s.configs)
	}
	if s.tasks != nil {
		copied.tasks = make([]CustomTask, len(s.tasks))
		copy(copied.tasks, s.tasks)
	}
	if s.preview != nil {
		copied.preview = make([]project.Ticket, len(s.preview))
		copy(copied.preview, s.preview)
	}
	return copied
}

// Reset clears the whole draft. Called after a successful commit:
// configuration is single-use per project.
func (s *Session) Reset() {
	s.order = nil
	s.template = nil
	s.configs = nil
	s.tasks = nil
	s.preview = nil
}

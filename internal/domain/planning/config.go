package planning

import (
	"fmt"

	"loomflow/internal/domain/catalog"
)

// DefaultGroupingField is used by the generation engine when an item-level
// config has no grouping field set.
const DefaultGroupingField = "sku"

// MilestoneConfig controls how tickets are generated for one milestone.
// IsOrderLevel=true emits a single ticket for the whole order; false emits
// one ticket per group of order items partitioned by GroupingField.
type MilestoneConfig struct {
	MilestoneID   string `json:"milestone_id"`
	MilestoneName string `json:"milestone_name"`
	PhaseID       string `json:"phase_id"`
	StageID       string `json:"stage_id"`
	IsOrderLevel  bool   `json:"is_order_level"`
	GroupingField string `json:"grouping_field,omitempty"`
	DeadlineDays  int    `json:"deadline_days"`
}

// MilestoneID derives the config key for a phase/stage pair.
func MilestoneID(phaseID, stageID string) string {
	return fmt.Sprintf("%s-%s", phaseID, stageID)
}

// InitConfigs flattens the template's phases and stages into one config per
// stage, in template traversal order. Every config starts order-level with
// the stage's default deadline. This is the only way configs are created;
// selecting a new order replaces the whole set.
func InitConfigs(template *catalog.WorkflowTemplate) []MilestoneConfig {
	if template == nil {
		return nil
	}

	var configs []MilestoneConfig
	for _, phase := range template.Phases {
		for _, stage := range phase.Stages {
			configs = append(configs, MilestoneConfig{
				MilestoneID:   MilestoneID(phase.ID, stage.ID),
				MilestoneName: stage.Milestone,
				PhaseID:       phase.ID,
				StageID:       stage.ID,
				IsOrderLevel:  true,
				DeadlineDays:  stage.DefaultDeadlineDays,
			})
		}
	}
	return configs
}

// ConfigPatch is a partial update to one milestone config. Nil fields are
// left untouched, so re-applying the same patch is a no-op beyond the edited
// fields.
type ConfigPatch struct {
	IsOrderLevel  *bool
	GroupingField *string
	DeadlineDays  *int
}

// ApplyPatch merges the patch into the config matching milestoneID. The
// sequence is never reordered; an unknown milestone ID is a no-op, reported
// by the returned bool.
func ApplyPatch(configs []MilestoneConfig, milestoneID string, patch ConfigPatch) bool {
	for i := range configs {
		if configs[i].MilestoneID != milestoneID {
			continue
		}
		if patch.IsOrderLevel != nil {
			configs[i].IsOrderLevel = *patch.IsOrderLevel
		}
		if patch.GroupingField != nil {
			configs[i].GroupingField = *patch.GroupingField
		}
		if patch.DeadlineDays != nil {
			configs[i].DeadlineDays = *patch.DeadlineDays
		}
		return true
	}
	return false
}

// FindConfig returns the config with the given milestone ID.
func FindConfig(configs []MilestoneConfig, milestoneID string) (MilestoneConfig, bool) {
	for _, c := range configs {
		if c.MilestoneID == milestoneID {
			return c, true
		}
	}
	return MilestoneConfig{}, false
}

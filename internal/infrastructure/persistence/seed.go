package persistence

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"loomflow/internal/domain/project"
	vo "loomflow/internal/domain/project/valueobjects"
	"loomflow/internal/shared/id"
)

// SeedDemoProjects populates the store with sample projects so a fresh
// instance has a board to look at. Statuses and assignees are randomized the
// same way the demo fixtures always were; enabled via catalog.seed_demo_projects.
func SeedDemoProjects(ctx context.Context, repo *ProjectRepository) error {
	seeds := []struct {
		name    string
		orderID string
	}{
		{"Summer Collection 2024", "order-001"},
		{"Winter Collection 2024", "order-002"},
		{"Spring Accessories Line", "order-003"},
		{"Corporate Uniforms Project", "order-004"},
	}

	for _, seed := range seeds {
		p, err := demoProject(seed.name, seed.orderID)
		if err != nil {
			return err
		}
		if err := repo.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func demoProject(name, orderID string) (*project.Project, error) {
	status := vo.ProjectActive
	switch r := rand.Float64(); {
	case r > 0.7:
		status = vo.ProjectCompleted
	case r < 0.3:
		status = vo.ProjectPaused
	}
	createdAt := time.Now().Add(-time.Duration(rand.Intn(30*24)) * time.Hour)

	return project.ReconstructProject(
		id.MustGenerateWithPrefix(id.PrefixProject, id.DefaultLength),
		name,
		orderID,
		"textile-order-1",
		status,
		createdAt,
		demoTickets(name),
	)
}

func demoTickets(projectName string) []project.Ticket {
	now := time.Now()
	deadline := func(days int) *time.Time {
		d := now.Add(time.Duration(days) * 24 * time.Hour)
		return &d
	}
	text := func(ft vo.FieldType, s string) *vo.FieldValue {
		v, _ := vo.NewTextValue(ft, s)
		return v
	}

	tickets := []project.Ticket{
		{
			ID:           fmt.Sprintf("ticket-demo-%s-1", id.MustGenerate(6)),
			Title:        "Design Concept Approval",
			Description:  fmt.Sprintf("Create and approve initial design concepts for %s", projectName),
			Type:         vo.TypeMilestone,
			Status:       vo.StatusDone,
			Assignee:     "sarah.designer@company.com",
			Deadline:     deadline(5),
			Dependencies: []string{},
			Fields: []project.Field{
				{Name: "concept_sketches", Label: "Concept Sketches", Type: vo.FieldFile, Required: true, Value: vo.NewFileValue("sketches_v1.pdf")},
				{Name: "color_palette", Label: "Color Palette", Type: vo.FieldText, Required: true, Value: text(vo.FieldText, "Navy, White, Gray")},
			},
		},
		{
			ID:           fmt.Sprintf("ticket-demo-%s-2", id.MustGenerate(6)),
			Title:        "Technical Specifications",
			Description:  "Develop detailed technical specifications and measurements",
			Type:         vo.TypeMilestone,
			Status:       vo.StatusInProgress,
			Assignee:     "mike.technical@company.com",
			Deadline:     deadline(10),
			Dependencies: []string{},
			Fields: []project.Field{
				{Name: "measurements", Label: "Measurements", Type: vo.FieldTextarea, Required: true, Value: text(vo.FieldTextarea, "Chest: 42in, Length: 28in")},
				{Name: "materials", Label: "Materials List", Type: vo.FieldTextarea, Required: true},
			},
		},
		{
			ID:           fmt.Sprintf("ticket-demo-%s-3", id.MustGenerate(6)),
			Title:        "Sample Production - Cotton T-Shirt",
			Description:  "Produce initial samples for Cotton T-Shirt variants",
			Type:         vo.TypeMilestone,
			Status:       vo.StatusTodo,
			Assignee:     "production.team@company.com",
			Deadline:     deadline(21),
			Dependencies: []string{},
			Fields: []project.Field{
				{Name: "sample_qty", Label: "Sample Quantity", Type: vo.FieldNumber, Required: true},
				{Name: "fabric_source", Label: "Fabric Source", Type: vo.FieldSelect, Required: true},
			},
		},
		{
			ID:           fmt.Sprintf("ticket-demo-%s-4", id.MustGenerate(6)),
			Title:        "Quality Control Review",
			Description:  "Conduct quality control review of produced samples",
			Type:         vo.TypeMilestone,
			Status:       vo.StatusBacklog,
			Assignee:     "qc.team@company.com",
			Deadline:     deadline(28),
			Dependencies: []string{},
			Fields: []project.Field{
				{Name: "qc_checklist", Label: "QC Checklist", Type: vo.FieldFile, Required: true},
				{Name: "defect_report", Label: "Defect Report", Type: vo.FieldTextarea, Required: false},
			},
		},
		{
			ID:           fmt.Sprintf("ticket-demo-%s-5", id.MustGenerate(6)),
			Title:        "Packaging Design",
			Description:  "Design packaging and labeling for the product line",
			Type:         vo.TypeLinked,
			Status:       vo.StatusTodo,
			Assignee:     "design.team@company.com",
			Deadline:     deadline(35),
			Dependencies: []string{},
			Fields: []project.Field{
				{Name: "package_design", Label: "Package Design", Type: vo.FieldFile, Required: true},
				{Name: "label_copy", Label: "Label Copy", Type: vo.FieldTextarea, Required: true},
			},
		},
		{
			ID:           fmt.Sprintf("ticket-demo-%s-6", id.MustGenerate(6)),
			Title:        "Bulk Production Planning",
			Description:  "Plan and schedule bulk production runs",
			Type:         vo.TypeMilestone,
			Status:       vo.StatusBacklog,
			Assignee:     "production.manager@company.com",
			Deadline:     deadline(45),
			Dependencies: []string{},
			Fields: []project.Field{
				{Name: "production_schedule", Label: "Production Schedule", Type: vo.FieldFile, Required: true},
				{Name: "resource_allocation", Label: "Resource Allocation", Type: vo.FieldTextarea, Required: true},
			},
		},
	}

	statuses := vo.AllTicketStatuses()
	for i := range tickets {
		tickets[i].Status = statuses[rand.Intn(len(statuses))]
		if rand.Float64() > 0.7 {
			tickets[i].Assignee = "john.doe@company.com"
		}
	}
	return tickets
}

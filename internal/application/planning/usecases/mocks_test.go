package usecases

import (
	"context"

	"loomflow/internal/domain/catalog"
	"loomflow/internal/domain/planning"
	"loomflow/internal/domain/project"
	"loomflow/internal/shared/logger"
)

type mockCatalogRepository struct {
	GetTemplateFunc func(ctx context.Context, templateID string) (*catalog.WorkflowTemplate, error)
	ListOrdersFunc  func(ctx context.Context) ([]*catalog.Order, error)
	GetOrderFunc    func(ctx context.Context, orderID string) (*catalog.Order, error)
	ListUsersFunc   func(ctx context.Context) ([]*catalog.User, error)
}

func (m *mockCatalogRepository) GetTemplate(ctx context.Context, templateID string) (*catalog.WorkflowTemplate, error) {
	if m.GetTemplateFunc != nil {
		return m.GetTemplateFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockCatalogRepository) ListOrders(ctx context.Context) ([]*catalog.Order, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *mockCatalogRepository) GetOrder(ctx context.Context, orderID string) (*catalog.Order, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, orderID)
	}
	return nil, nil
}

func (m *mockCatalogRepository) ListUsers(ctx context.Context) ([]*catalog.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

type mockSessionRepository struct {
	CurrentFunc func(ctx context.Context) (*planning.Session, error)
	SaveFunc    func(ctx context.Context, s *planning.Session) error
}

func (m *mockSessionRepository) Current(ctx context.Context) (*planning.Session, error) {
	if m.CurrentFunc != nil {
		return m.CurrentFunc(ctx)
	}
	return planning.NewSession(), nil
}

func (m *mockSessionRepository) Save(ctx context.Context, s *planning.Session) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

type mockProjectRepository struct {
	SaveFunc    func(ctx context.Context, p *project.Project) error
	UpdateFunc  func(ctx context.Context, p *project.Project) error
	GetByIDFunc func(ctx context.Context, projectID string) (*project.Project, error)
	ListFunc    func(ctx context.Context) ([]*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, projectID string) (*project.Project, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, projectID)
	}
	return nil, nil
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*project.Project, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct {
	InfowFunc  func(msg string, keysAndValues ...interface{})
	ErrorwFunc func(msg string, keysAndValues ...interface{})
}

func (m *mockLogger) Debug(msg string, args ...any) {}
func (m *mockLogger) Info(msg string, args ...any)  {}
func (m *mockLogger) Warn(msg string, args ...any)  {}
func (m *mockLogger) Error(msg string, args ...any) {}

func (m *mockLogger) With(args ...any) logger.Interface {
	return m
}

func (m *mockLogger) Named(name string) logger.Interface {
	return m
}

func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Infow(msg string, keysAndValues ...interface{}) {
	if m.InfowFunc != nil {
		m.InfowFunc(msg, keysAndValues...)
	}
}

func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{}) {}

func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {
	if m.ErrorwFunc != nil {
		m.ErrorwFunc(msg, keysAndValues...)
	}
}

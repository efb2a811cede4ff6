package usecases

import (
	"context"

	"loomflow/internal/domain/project"
	"loomflow/internal/shared/logger"
)

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

type mockMarkdownService struct {
	ToHTMLFunc          func(markdown string) (string, error)
	SanitizeFunc        func(htmlContent string) string
	ToHTMLSanitizedFunc func(markdown string) (string, error)
}

func (m *mockMarkdownService) ToHTML(markdown string) (string, error) {
	if m.ToHTMLFunc != nil {
		return m.ToHTMLFunc(markdown)
	}
	return markdown, nil
}

func (m *mockMarkdownService) Sanitize(htmlContent string) string {
	if m.SanitizeFunc != nil {
		return m.SanitizeFunc(htmlContent)
	}
	return htmlContent
}

func (m *mockMarkdownService) ToHTMLSanitized(markdown string) (string, error) {
	if m.ToHTMLSanitizedFunc != nil {
		return m.ToHTMLSanitizedFunc(markdown)
	}
	return markdown, nil
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

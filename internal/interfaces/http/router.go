// Package http wires the gin engine: middleware, use case construction and
// route registration.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	planningUC "loomflow/internal/application/planning/usecases"
	projectUC "loomflow/internal/application/project/usecases"
	"loomflow/internal/domain/catalog"
	"loomflow/internal/domain/planning"
	"loomflow/internal/domain/project"
	"loomflow/internal/infrastructure/config"
	cataloghandlers "loomflow/internal/interfaces/http/handlers/catalog"
	planninghandlers "loomflow/internal/interfaces/http/handlers/planning"
	projecthandlers "loomflow/internal/interfaces/http/handlers/project"
	"loomflow/internal/interfaces/http/middleware"
	"loomflow/internal/interfaces/http/routes"
	"loomflow/internal/shared/logger"
	"loomflow/internal/shared/services/markdown"
)

type Router struct {
	engine      *gin.Engine
	cfg         *config.Config
	catalogRepo catalog.Repository
	sessionRepo planning.SessionRepository
	projectRepo project.Repository
	markdownSvc markdown.Service
	logger      logger.Interface
}

func NewRouter(
	cfg *config.Config,
	catalogRepo catalog.Repository,
	sessionRepo planning.SessionRepository,
	projectRepo project.Repository,
	markdownSvc markdown.Service,
	log logger.Interface,
) *Router {
	return &Router{
		engine:      gin.New(),
		cfg:         cfg,
		catalogRepo: catalogRepo,
		sessionRepo: sessionRepo,
		projectRepo: projectRepo,
		markdownSvc: markdownSvc,
		logger:      log,
	}
}

func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	if len(r.cfg.Server.AllowedOrigins) > 0 {
		r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	}

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	catalogHandler := cataloghandlers.NewCatalogHandler(r.catalogRepo)

	planningHandler := planninghandlers.NewPlanningHandler(
		planningUC.NewSelectOrderUseCase(r.catalogRepo, r.sessionRepo, r.logger),
		planningUC.NewUpdateMilestoneConfigUseCase(r.sessionRepo, r.logger),
		planningUC.NewAddCustomTaskUseCase(r.sessionRepo, r.logger),
		planningUC.NewGeneratePreviewUseCase(r.sessionRepo, r.logger),
		planningUC.NewCommitProjectUseCase(r.sessionRepo, r.projectRepo, r.logger),
		planningUC.NewGetSessionUseCase(r.sessionRepo, r.logger),
	)

	projectHandler := projecthandlers.NewProjectHandler(
		projectUC.NewListProjectsUseCase(r.projectRepo, r.logger),
		projectUC.NewGetProjectUseCase(r.projectRepo, r.logger),
		projectUC.NewTicketsByStatusUseCase(r.projectRepo, r.logger),
		projectUC.NewTicketsByAssigneeUseCase(r.projectRepo, r.logger),
		projectUC.NewUpdateTicketUseCase(r.projectRepo, r.logger),
		projectUC.NewRenderTicketDescriptionUseCase(r.projectRepo, r.markdownSvc, r.logger),
	)

	routes.SetupCatalogRoutes(r.engine, &routes.CatalogRouteConfig{CatalogHandler: catalogHandler})
	routes.SetupPlanningRoutes(r.engine, &routes.PlanningRouteConfig{PlanningHandler: planningHandler})
	routes.SetupProjectRoutes(r.engine, &routes.ProjectRouteConfig{ProjectHandler: projectHandler})
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

package routes

import (
	"github.com/gin-gonic/gin"

	planninghandlers "loomflow/internal/interfaces/http/handlers/planning"
)

type PlanningRouteConfig struct {
	PlanningHandler *planninghandlers.PlanningHandler
}

func SetupPlanningRoutes(engine *gin.Engine, config *PlanningRouteConfig) {
	planning := engine.Group("/planning")
	{
		planning.POST("/order", config.PlanningHandler.SelectOrder)
		planning.GET("/session", config.PlanningHandler.GetSession)
		planning.PATCH("/milestones/:id", config.PlanningHandler.UpdateMilestoneConfig)
		planning.POST("/tasks", config.PlanningHandler.AddCustomTask)
		planning.POST("/preview", config.PlanningHandler.GeneratePreview)
	}

	// Committing the draft creates the project resource.
	engine.POST("/projects", config.PlanningHandler.CommitProject)
}

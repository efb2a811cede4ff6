package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "loomflow/internal/interfaces/http/handlers/project"
)

type ProjectRouteConfig struct {
	ProjectHandler *projecthandlers.ProjectHandler
}

func SetupProjectRoutes(engine *gin.Engine, config *ProjectRouteConfig) {
	projects := engine.Group("/projects")
	{
		projects.GET("", config.ProjectHandler.ListProjects)
		projects.GET("/:id", config.ProjectHandler.GetProject)
		projects.GET("/:id/tickets", config.ProjectHandler.ListTickets)
		projects.PATCH("/:id/tickets/:ticketId", config.ProjectHandler.UpdateTicket)
		projects.GET("/:id/tickets/:ticketId/description", config.ProjectHandler.RenderTicketDescription)
	}

	engine.GET("/tickets/assigned", config.ProjectHandler.AssignedTickets)
}

// Package project serves committed projects and their ticket boards.
package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loomflow/internal/application/project/usecases"
	"loomflow/internal/shared/logger"
	"loomflow/internal/shared/utils"
)

type ProjectHandler struct {
	listProjectsUC      usecases.ListProjectsExecutor
	getProjectUC        usecases.GetProjectExecutor
	ticketsByStatusUC   usecases.TicketsByStatusExecutor
	ticketsByAssigneeUC usecases.TicketsByAssigneeExecutor
	updateTicketUC      usecases.UpdateTicketExecutor
	renderDescriptionUC usecases.RenderTicketDescriptionExecutor
	logger              logger.Interface
}

func NewProjectHandler(
	listProjectsUC usecases.ListProjectsExecutor,
	getProjectUC usecases.GetProjectExecutor,
	ticketsByStatusUC usecases.TicketsByStatusExecutor,
	ticketsByAssigneeUC usecases.TicketsByAssigneeExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	renderDescriptionUC usecases.RenderTicketDescriptionExecutor,
) *ProjectHandler {
	return &ProjectHandler{
		listProjectsUC:      listProjectsUC,
		getProjectUC:        getProjectUC,
		ticketsByStatusUC:   ticketsByStatusUC,
		ticketsByAssigneeUC: ticketsByAssigneeUC,
		updateTicketUC:      updateTicketUC,
		renderDescriptionUC: renderDescriptionUC,
		logger:              logger.NewLogger(),
	}
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Projects)
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		ProjectID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /projects/:id/tickets. An optional ?status= filter
// narrows the result to one board column.
func (h *ProjectHandler) ListTickets(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
			ProjectID: c.Param("id"),
		})
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
		return
	}

	result, err := h.ticketsByStatusUC.Execute(c.Request.Context(), usecases.TicketsByStatusQuery{
		ProjectID: c.Param("id"),
		Status:    status,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
}

// AssignedTickets handles GET /tickets/assigned?assignee=
func (h *ProjectHandler) AssignedTickets(c *gin.Context) {
	result, err := h.ticketsByAssigneeUC.Execute(c.Request.Context(), usecases.TicketsByAssigneeQuery{
		Assignee: c.Query("assignee"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
}

// UpdateTicket handles PATCH /projects/:id/tickets/:ticketId
func (h *ProjectHandler) UpdateTicket(c *gin.Context) {
	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id"), c.Param("ticketId")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated", result.Ticket)
}

// RenderTicketDescription handles GET /projects/:id/tickets/:ticketId/description
func (h *ProjectHandler) RenderTicketDescription(c *gin.Context) {
	result, err := h.renderDescriptionUC.Execute(c.Request.Context(), usecases.RenderTicketDescriptionQuery{
		ProjectID: c.Param("id"),
		TicketID:  c.Param("ticketId"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

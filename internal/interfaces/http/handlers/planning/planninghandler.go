// Package planning exposes the project configuration flow over HTTP: order
// selection, milestone config edits, custom tasks, preview and commit.
package planning

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loomflow/internal/application/planning/usecases"
	"loomflow/internal/shared/logger"
	"loomflow/internal/shared/utils"
)

type PlanningHandler struct {
	selectOrderUC   usecases.SelectOrderExecutor
	updateConfigUC  usecases.UpdateMilestoneConfigExecutor
	addTaskUC       usecases.AddCustomTaskExecutor
	previewUC       usecases.GeneratePreviewExecutor
	commitProjectUC usecases.CommitProjectExecutor
	getSessionUC    usecases.GetSessionExecutor
	logger          logger.Interface
}

func NewPlanningHandler(
	selectOrderUC usecases.SelectOrderExecutor,
	updateConfigUC usecases.UpdateMilestoneConfigExecutor,
	addTaskUC usecases.AddCustomTaskExecutor,
	previewUC usecases.GeneratePreviewExecutor,
	commitProjectUC usecases.CommitProjectExecutor,
	getSessionUC usecases.GetSessionExecutor,
) *PlanningHandler {
	return &PlanningHandler{
		selectOrderUC:   selectOrderUC,
		updateConfigUC:  updateConfigUC,
		addTaskUC:       addTaskUC,
		previewUC:       previewUC,
		commitProjectUC: commitProjectUC,
		getSessionUC:    getSessionUC,
		logger:          logger.NewLogger(),
	}
}

// SelectOrder handles POST /planning/order
func (h *PlanningHandler) SelectOrder(c *gin.Context) {
	var req SelectOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for select order", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.selectOrderUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Order selected", result)
}

// GetSession handles GET /planning/session
func (h *PlanningHandler) GetSession(c *gin.Context) {
	result, err := h.getSessionUC.Execute(c.Request.Context(), usecases.GetSessionQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateMilestoneConfig handles PATCH /planning/milestones/:id
func (h *PlanningHandler) UpdateMilestoneConfig(c *gin.Context) {
	var req UpdateMilestoneConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update milestone config", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.updateConfigUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Milestone config updated", result)
}

// AddCustomTask handles POST /planning/tasks
func (h *PlanningHandler) AddCustomTask(c *gin.Context) {
	var req AddCustomTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add custom task", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.addTaskUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Custom task added")
}

// GeneratePreview handles POST /planning/preview
func (h *PlanningHandler) GeneratePreview(c *gin.Context) {
	result, err := h.previewUC.Execute(c.Request.Context(), usecases.GeneratePreviewCommand{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CommitProject handles POST /projects
func (h *PlanningHandler) CommitProject(c *gin.Context) {
	var req CommitProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for commit project", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	result, err := h.commitProjectUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

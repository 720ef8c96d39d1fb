package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atrium/internal/application/catalog/usecases"
	"atrium/internal/domain/catalog"
	"atrium/internal/shared/constants"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

type PageActionHandler struct {
	createPageAction *usecases.CreatePageActionUseCase
	deletePageAction *usecases.DeletePageActionUseCase
	listPageActions  *usecases.ListPageActionsUseCase
	logger           logger.Interface
}

func NewPageActionHandler(
	createPageAction *usecases.CreatePageActionUseCase,
	deletePageAction *usecases.DeletePageActionUseCase,
	listPageActions *usecases.ListPageActionsUseCase,
	logger logger.Interface,
) *PageActionHandler {
	return &PageActionHandler{
		createPageAction: createPageAction,
		deletePageAction: deletePageAction,
		listPageActions:  listPageActions,
		logger:           logger,
	}
}

type CreatePageActionRequest struct {
	PageID      uint   `json:"page_id" binding:"required"`
	ActionID    uint   `json:"action_id" binding:"required"`
	APIEndpoint string `json:"api_endpoint" binding:"max=255"`
	HTTPMethod  string `json:"http_method" binding:"required"`
	Label       string `json:"label" binding:"max=100"`
}

type PageActionResponse struct {
	ID          uint      `json:"id"`
	PageID      uint      `json:"page_id"`
	ActionID    uint      `json:"action_id"`
	ActionCode  string    `json:"action_code,omitempty"`
	APIEndpoint string    `json:"api_endpoint"`
	HTTPMethod  string    `json:"http_method"`
	Label       string    `json:"label"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func pageActionToResponse(pa *catalog.PageAction) PageActionResponse {
	return PageActionResponse{
		ID:          pa.ID(),
		PageID:      pa.PageID(),
		ActionID:    pa.ActionID(),
		ActionCode:  pa.ActionCode(),
		APIEndpoint: pa.APIEndpoint(),
		HTTPMethod:  pa.HTTPMethod().String(),
		Label:       pa.Label(),
		CreatedAt:   pa.CreatedAt(),
		UpdatedAt:   pa.UpdatedAt(),
	}
}

// CreatePageAction godoc
// @Summary Bind action to page
// @Description Create a page action pair, the unit all permissions reference
// @Tags page-actions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreatePageActionRequest true "Page action binding"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /page-actions [post]
func (h *PageActionHandler) CreatePageAction(c *gin.Context) {
	var req CreatePageActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	pageAction, err := h.createPageAction.Execute(c.Request.Context(), usecases.CreatePageActionCommand{
		PageID:      req.PageID,
		ActionID:    req.ActionID,
		APIEndpoint: req.APIEndpoint,
		HTTPMethod:  req.HTTPMethod,
		Label:       req.Label,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, pageActionToResponse(pageAction), "Page action created successfully")
}

// DeletePageAction godoc
// @Summary Unbind action from page
// @Description Soft-delete a page action pair
// @Tags page-actions
// @Produce json
// @Security Bearer
// @Param id path int true "Page action ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.APIResponse
// @Router /page-actions/{id} [delete]
func (h *PageActionHandler) DeletePageAction(c *gin.Context) {
	pageActionID, err := utils.ParseIDParam(c, "id", "page action")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deletedBy := c.GetUint(constants.ContextKeyUserID)
	if err := h.deletePageAction.Execute(c.Request.Context(), pageActionID, deletedBy); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListPageActions godoc
// @Summary List page actions
// @Description List the action bindings of one page
// @Tags page-actions
// @Produce json
// @Security Bearer
// @Param id path int true "Page ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /pages/{id}/page-actions [get]
func (h *PageActionHandler) ListPageActions(c *gin.Context) {
	pageID, err := utils.ParseIDParam(c, "id", "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pairs, err := h.listPageActions.Execute(c.Request.Context(), pageID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]PageActionResponse, 0, len(pairs))
	for _, pa := range pairs {
		items = append(items, pageActionToResponse(pa))
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

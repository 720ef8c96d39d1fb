package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"atrium/internal/application/catalog/usecases"
	"atrium/internal/domain/catalog"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

type ActionHandler struct {
	createAction *usecases.CreateActionUseCase
	listActions  *usecases.ListActionsUseCase
	logger       logger.Interface
}

func NewActionHandler(
	createAction *usecases.CreateActionUseCase,
	listActions *usecases.ListActionsUseCase,
	logger logger.Interface,
) *ActionHandler {
	return &ActionHandler{
		createAction: createAction,
		listActions:  listActions,
		logger:       logger,
	}
}

type CreateActionRequest struct {
	Code string `json:"code" binding:"required,max=50"`
	Name string `json:"name" binding:"required,max=100"`
	Type string `json:"type" binding:"max=20"`
}

type ActionResponse struct {
	ID        uint      `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func actionToResponse(action *catalog.Action) ActionResponse {
	return ActionResponse{
		ID:        action.ID(),
		Code:      action.Code(),
		Name:      action.Name(),
		Type:      action.Type(),
		CreatedAt: action.CreatedAt(),
		UpdatedAt: action.UpdatedAt(),
	}
}

// CreateAction godoc
// @Summary Create action
// @Description Register a new action verb in the resource catalog
// @Tags actions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreateActionRequest true "Action definition"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /actions [post]
func (h *ActionHandler) CreateAction(c *gin.Context) {
	var req CreateActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	action, err := h.createAction.Execute(c.Request.Context(), usecases.CreateActionCommand{
		Code: req.Code,
		Name: req.Name,
		Type: req.Type,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, actionToResponse(action), "Action created successfully")
}

// ListActions godoc
// @Summary List actions
// @Description List action verbs with optional filters
// @Tags actions
// @Produce json
// @Security Bearer
// @Param code query string false "Filter by action code"
// @Param type query string false "Filter by action type"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /actions [get]
func (h *ActionHandler) ListActions(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	result, err := h.listActions.Execute(c.Request.Context(), usecases.ListActionsQuery{
		Code:     c.Query("code"),
		Type:     c.Query("type"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]ActionResponse, 0, len(result.Actions))
	for _, action := range result.Actions {
		items = append(items, actionToResponse(action))
	}

	utils.ListSuccessResponse(c, items, result.Total, pagination.Page, pagination.PageSize)
}

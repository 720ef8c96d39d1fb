package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"atrium/internal/application/grant/usecases"
	"atrium/internal/domain/grant"
	"atrium/internal/shared/constants"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

type PermissionHandler struct {
	assignPermission *usecases.AssignPermissionUseCase
	revokePermission *usecases.RevokePermissionUseCase
	listPermissions  *usecases.ListPermissionsUseCase
	logger           logger.Interface
}

func NewPermissionHandler(
	assignPermission *usecases.AssignPermissionUseCase,
	revokePermission *usecases.RevokePermissionUseCase,
	listPermissions *usecases.ListPermissionsUseCase,
	logger logger.Interface,
) *PermissionHandler {
	return &PermissionHandler{
		assignPermission: assignPermission,
		revokePermission: revokePermission,
		listPermissions:  listPermissions,
		logger:           logger,
	}
}

type AssignPermissionRequest struct {
	EntityType   string     `json:"entity_type" binding:"required,oneof=USER ROLE"`
	EntityID     uint       `json:"entity_id" binding:"required"`
	PageActionID uint       `json:"page_action_id" binding:"required"`
	Granted      bool       `json:"granted"`
	ExpiresAt    *time.Time `json:"expires_at"`
}

type PermissionResponse struct {
	ID           uint       `json:"id"`
	EntityType   string     `json:"entity_type"`
	EntityID     uint       `json:"entity_id"`
	PageActionID uint       `json:"page_action_id"`
	Granted      bool       `json:"granted"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func permissionToResponse(p *grant.Permission) PermissionResponse {
	return PermissionResponse{
		ID:           p.ID(),
		EntityType:   p.EntityType().String(),
		EntityID:     p.EntityID(),
		PageActionID: p.PageActionID(),
		Granted:      p.Granted(),
		ExpiresAt:    p.ExpiresAt(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

// AssignPermission godoc
// @Summary Assign permission
// @Description Grant or deny one page action to a user or role, optionally until a deadline
// @Tags permissions
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body AssignPermissionRequest true "Permission assignment"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /permissions [post]
func (h *PermissionHandler) AssignPermission(c *gin.Context) {
	var req AssignPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	permission, err := h.assignPermission.Execute(c.Request.Context(), usecases.AssignPermissionCommand{
		EntityType:   req.EntityType,
		EntityID:     req.EntityID,
		PageActionID: req.PageActionID,
		Granted:      req.Granted,
		ExpiresAt:    req.ExpiresAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Permission assigned successfully", permissionToResponse(permission))
}

// RevokePermission godoc
// @Summary Revoke permission
// @Description Soft-delete a permission row; takes effect on the next resolution
// @Tags permissions
// @Produce json
// @Security Bearer
// @Param id path int true "Permission ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.APIResponse
// @Router /permissions/{id} [delete]
func (h *PermissionHandler) RevokePermission(c *gin.Context) {
	permissionID, err := utils.ParseIDParam(c, "id", "permission")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	revokedBy := c.GetUint(constants.ContextKeyUserID)
	if err := h.revokePermission.Execute(c.Request.Context(), permissionID, revokedBy); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListPermissions godoc
// @Summary List permissions
// @Description List permission rows with optional entity and page action filters
// @Tags permissions
// @Produce json
// @Security Bearer
// @Param entity_type query string false "Filter by entity type (USER or ROLE)"
// @Param entity_id query int false "Filter by entity ID"
// @Param page_action_id query int false "Filter by page action ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param only_valid query bool false "Exclude expired permissions"
// @Success 200 {object} utils.APIResponse
// @Router /permissions [get]
func (h *PermissionHandler) ListPermissions(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListPermissionsQuery{
		EntityType: c.Query("entity_type"),
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}
	if raw := c.Query("entity_id"); raw != "" {
		entityID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid entity_id")
			return
		}
		query.EntityID = uint(entityID)
	}
	if raw := c.Query("page_action_id"); raw != "" {
		pageActionID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid page_action_id")
			return
		}
		query.PageActionID = uint(pageActionID)
	}
	if c.Query("only_valid") == "true" {
		query.OnlyValid = true
	}

	permissions, total, err := h.listPermissions.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]PermissionResponse, 0, len(permissions))
	for _, permission := range permissions {
		items = append(items, permissionToResponse(permission))
	}

	utils.ListSuccessResponse(c, items, total, pagination.Page, pagination.PageSize)
}

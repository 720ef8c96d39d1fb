package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"atrium/internal/application/navigation"
	"atrium/internal/shared/constants"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

type NavigationHandler struct {
	builder *navigation.Builder
	logger  logger.Interface
}

func NewNavigationHandler(builder *navigation.Builder, logger logger.Interface) *NavigationHandler {
	return &NavigationHandler{
		builder: builder,
		logger:  logger,
	}
}

// GetNavigation godoc
// @Summary Get navigation tree
// @Description Return the navigation tree visible to the authenticated user
// @Tags navigation
// @Produce json
// @Security Bearer
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /navigation [get]
func (h *NavigationHandler) GetNavigation(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)
	if userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgNotAuthenticated)
		return
	}

	items, err := h.builder.BuildNavigation(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to build navigation", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", items)
}

// GetPageActions godoc
// @Summary Get page actions for navigation
// @Description Return the flat action list of one page for the authenticated user
// @Tags navigation
// @Produce json
// @Security Bearer
// @Param id path int true "Page ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /navigation/pages/{id}/actions [get]
func (h *NavigationHandler) GetPageActions(c *gin.Context) {
	userID := c.GetUint(constants.ContextKeyUserID)
	if userID == 0 {
		utils.ErrorResponse(c, http.StatusUnauthorized, constants.ErrMsgNotAuthenticated)
		return
	}

	pageID, err := utils.ParseIDParam(c, "id", "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actions, err := h.builder.GetPageActions(c.Request.Context(), pageID, userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", actions)
}

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"atrium/internal/application/catalog/usecases"
	"atrium/internal/domain/catalog"
	"atrium/internal/shared/constants"
	"atrium/internal/shared/logger"
	"atrium/internal/shared/utils"
)

type PageHandler struct {
	createPage *usecases.CreatePageUseCase
	updatePage *usecases.UpdatePageUseCase
	deletePage *usecases.DeletePageUseCase
	listPages  *usecases.ListPagesUseCase
	logger     logger.Interface
}

func NewPageHandler(
	createPage *usecases.CreatePageUseCase,
	updatePage *usecases.UpdatePageUseCase,
	deletePage *usecases.DeletePageUseCase,
	listPages *usecases.ListPagesUseCase,
	logger logger.Interface,
) *PageHandler {
	return &PageHandler{
		createPage: createPage,
		updatePage: updatePage,
		deletePage: deletePage,
		listPages:  listPages,
		logger:     logger,
	}
}

type CreatePageRequest struct {
	Code         string `json:"code" binding:"required,max=50"`
	Name         string `json:"name" binding:"required,max=100"`
	URL          string `json:"url" binding:"max=255"`
	Icon         string `json:"icon" binding:"max=100"`
	DisplayOrder int    `json:"display_order"`
	ParentID     *uint  `json:"parent_id"`
}

type UpdatePageRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=100"`
	URL          *string `json:"url" binding:"omitempty,max=255"`
	Icon         *string `json:"icon" binding:"omitempty,max=100"`
	DisplayOrder *int    `json:"display_order"`
	ParentID     *uint   `json:"parent_id"`
	SetRoot      bool    `json:"set_root"`
}

type PageResponse struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	URL          string    `json:"url"`
	Icon         string    `json:"icon"`
	DisplayOrder int       `json:"display_order"`
	ParentID     *uint     `json:"parent_id"`
	Level        int       `json:"level"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func pageToResponse(page *catalog.Page) PageResponse {
	return PageResponse{
		ID:           page.ID(),
		Code:         page.Code(),
		Name:         page.Name(),
		URL:          page.URL(),
		Icon:         page.Icon(),
		DisplayOrder: page.DisplayOrder(),
		ParentID:     page.ParentID(),
		Level:        page.Level(),
		CreatedAt:    page.CreatedAt(),
		UpdatedAt:    page.UpdatedAt(),
	}
}

// CreatePage godoc
// @Summary Create page
// @Description Register a new page in the resource catalog
// @Tags pages
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body CreatePageRequest true "Page definition"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /pages [post]
func (h *PageHandler) CreatePage(c *gin.Context) {
	var req CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	page, err := h.createPage.Execute(c.Request.Context(), usecases.CreatePageCommand{
		Code:         req.Code,
		Name:         req.Name,
		URL:          req.URL,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		ParentID:     req.ParentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, pageToResponse(page), "Page created successfully")
}

// UpdatePage godoc
// @Summary Update page
// @Description Update a page's display attributes or move it in the tree
// @Tags pages
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path int true "Page ID"
// @Param request body UpdatePageRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /pages/{id} [put]
func (h *PageHandler) UpdatePage(c *gin.Context) {
	pageID, err := utils.ParseIDParam(c, "id", "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	page, err := h.updatePage.Execute(c.Request.Context(), usecases.UpdatePageCommand{
		PageID:       pageID,
		Name:         req.Name,
		URL:          req.URL,
		Icon:         req.Icon,
		DisplayOrder: req.DisplayOrder,
		ParentID:     req.ParentID,
		SetRoot:      req.SetRoot,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Page updated successfully", pageToResponse(page))
}

// DeletePage godoc
// @Summary Delete page
// @Description Soft-delete a page from the resource catalog
// @Tags pages
// @Produce json
// @Security Bearer
// @Param id path int true "Page ID"
// @Success 204 "No Content"
// @Failure 404 {object} utils.APIResponse
// @Router /pages/{id} [delete]
func (h *PageHandler) DeletePage(c *gin.Context) {
	pageID, err := utils.ParseIDParam(c, "id", "page")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	deletedBy := c.GetUint(constants.ContextKeyUserID)
	if err := h.deletePage.Execute(c.Request.Context(), pageID, deletedBy); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListPages godoc
// @Summary List pages
// @Description List catalog pages with optional filters
// @Tags pages
// @Produce json
// @Security Bearer
// @Param code query string false "Filter by page code"
// @Param parent_id query int false "Filter by parent page ID"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /pages [get]
func (h *PageHandler) ListPages(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListPagesQuery{
		Code:     c.Query("code"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}
	if raw := c.Query("parent_id"); raw != "" {
		parentID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid parent_id")
			return
		}
		id := uint(parentID)
		query.ParentID = &id
	}

	result, err := h.listPages.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	items := make([]PageResponse, 0, len(result.Pages))
	for _, page := range result.Pages {
		items = append(items, pageToResponse(page))
	}

	utils.ListSuccessResponse(c, items, result.Total, pagination.Page, pagination.PageSize)
}

package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/request"
	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/response"
	"github.com/AkifKA/stock-app-api/internal/domain"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, userID uint, category domain.Category) (domain.Category, error)
	UpdateCategory(ctx context.Context, id uint, category domain.Category) (domain.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

type CategoryViewService interface {
	ListCategoriesWithCounts(ctx context.Context) ([]domain.CategoryWithCount, error)
	GetCategoryWithCount(ctx context.Context, id uint) (domain.CategoryWithCount, error)
	CategoryProducts(ctx context.Context, id uint) (domain.CategoryProducts, error)
}

type CategoryHandler struct {
	svc   CategoryService
	views CategoryViewService
}

func NewCategoryHandler(svc CategoryService, views CategoryViewService) *CategoryHandler {
	return &CategoryHandler{
		svc:   svc,
		views: views,
	}
}

// HandleListCategories godoc
// @Summary      List categories with their product count
// @Tags         categories
// @Produce      json
// @Success      200      {array}    response.Category
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /categories [get]
// @Security     BearerAuth
func (h *CategoryHandler) HandleListCategories(ctx *gin.Context) {
	categories, err := h.views.ListCategoriesWithCounts(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListCategories -> h.views.ListCategoriesWithCounts", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCategories(categories))
}

// HandleGetCategory godoc
// @Summary      Get a category with its product count
// @Tags         categories
// @Produce      json
// @Param        id       path       int  true  "category ID"
// @Success      200      {object}   response.Category
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /categories/{id} [get]
// @Security     BearerAuth
func (h *CategoryHandler) HandleGetCategory(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	category, err := h.views.GetCategoryWithCount(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetCategory -> h.views.GetCategoryWithCount", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCategory(category))
}

// HandleGetCategoryProducts godoc
// @Summary      Get a category with all of its products
// @Tags         categories
// @Produce      json
// @Param        id       path       int  true  "category ID"
// @Success      200      {object}   response.CategoryProducts
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /categories/{id}/products [get]
// @Security     BearerAuth
func (h *CategoryHandler) HandleGetCategoryProducts(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	category, err := h.views.CategoryProducts(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetCategoryProducts -> h.views.CategoryProducts", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCategoryProducts(category))
}

// HandleCreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request  body       request.CategoryRequest true "request body"
// @Success      201      {object}   response.Category
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) HandleCreateCategory(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	category, err := h.svc.CreateCategory(ctx.Request.Context(), userID, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateCategory -> h.svc.CreateCategory", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewCategory(domain.CategoryWithCount{Category: category}))
}

// HandleUpdateCategory godoc
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id       path       int  true  "category ID"
// @Param        request  body       request.CategoryRequest true "request body"
// @Success      200      {object}   response.Category
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /categories/{id} [put]
// @Security     BearerAuth
func (h *CategoryHandler) HandleUpdateCategory(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if _, err := h.svc.UpdateCategory(ctx.Request.Context(), id, req.ToDomain()); err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateCategory -> h.svc.UpdateCategory", err)
		return
	}

	category, err := h.views.GetCategoryWithCount(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateCategory -> h.views.GetCategoryWithCount", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewCategory(category))
}

// HandleDeleteCategory godoc
// @Summary      Delete a category and its products
// @Tags         categories
// @Param        id       path       int  true  "category ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /categories/{id} [delete]
// @Security     BearerAuth
func (h *CategoryHandler) HandleDeleteCategory(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteCategory(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteCategory -> h.svc.DeleteCategory", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

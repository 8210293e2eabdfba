package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/request"
	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/response"
	"github.com/AkifKA/stock-app-api/internal/domain"
)

type BrandService interface {
	CreateBrand(ctx context.Context, userID uint, brand domain.Brand) (domain.Brand, error)
	GetBrand(ctx context.Context, id uint) (domain.Brand, error)
	UpdateBrand(ctx context.Context, id uint, brand domain.Brand) (domain.Brand, error)
	DeleteBrand(ctx context.Context, id uint) error
}

type BrandViewService interface {
	ListBrandsWithCounts(ctx context.Context) ([]domain.BrandWithCount, error)
}

type BrandHandler struct {
	svc   BrandService
	views BrandViewService
}

func NewBrandHandler(svc BrandService, views BrandViewService) *BrandHandler {
	return &BrandHandler{
		svc:   svc,
		views: views,
	}
}

// HandleListBrands godoc
// @Summary      List brands with their product count
// @Tags         brands
// @Produce      json
// @Success      200      {array}    response.Brand
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /brands [get]
// @Security     BearerAuth
func (h *BrandHandler) HandleListBrands(ctx *gin.Context) {
	brands, err := h.views.ListBrandsWithCounts(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListBrands -> h.views.ListBrandsWithCounts", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewBrands(brands))
}

// HandleGetBrand godoc
// @Summary      Get a brand
// @Tags         brands
// @Produce      json
// @Param        id       path       int  true  "brand ID"
// @Success      200      {object}   domain.Brand
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /brands/{id} [get]
// @Security     BearerAuth
func (h *BrandHandler) HandleGetBrand(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	brand, err := h.svc.GetBrand(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetBrand -> h.svc.GetBrand", err)
		return
	}

	ctx.JSON(http.StatusOK, brand)
}

// HandleCreateBrand godoc
// @Summary      Create a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        request  body       request.BrandRequest true "request body"
// @Success      201      {object}   domain.Brand
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /brands [post]
// @Security     BearerAuth
func (h *BrandHandler) HandleCreateBrand(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	brand, err := h.svc.CreateBrand(ctx.Request.Context(), userID, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateBrand -> h.svc.CreateBrand", err)
		return
	}

	ctx.JSON(http.StatusCreated, brand)
}

// HandleUpdateBrand godoc
// @Summary      Update a brand
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        id       path       int  true  "brand ID"
// @Param        request  body       request.BrandRequest true "request body"
// @Success      200      {object}   domain.Brand
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /brands/{id} [put]
// @Security     BearerAuth
func (h *BrandHandler) HandleUpdateBrand(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.BrandRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	brand, err := h.svc.UpdateBrand(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateBrand -> h.svc.UpdateBrand", err)
		return
	}

	ctx.JSON(http.StatusOK, brand)
}

// HandleDeleteBrand godoc
// @Summary      Delete a brand
// @Tags         brands
// @Param        id       path       int  true  "brand ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /brands/{id} [delete]
// @Security     BearerAuth
func (h *BrandHandler) HandleDeleteBrand(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteBrand(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteBrand -> h.svc.DeleteBrand", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

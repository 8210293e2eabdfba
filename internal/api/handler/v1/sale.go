package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/request"
	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/response"
	"github.com/AkifKA/stock-app-api/internal/domain"
)

type SaleService interface {
	CreateSale(ctx context.Context, userID uint, input domain.SaleInput) (domain.Sale, error)
}

type SaleViewService interface {
	GetSaleWithCategory(ctx context.Context, id uint) (domain.SaleWithCategory, error)
	ListSalesWithCategory(ctx context.Context) ([]domain.SaleWithCategory, error)
}

type SaleHandler struct {
	svc   SaleService
	views SaleViewService
}

func NewSaleHandler(svc SaleService, views SaleViewService) *SaleHandler {
	return &SaleHandler{
		svc:   svc,
		views: views,
	}
}

// HandleListSales godoc
// @Summary      List sales with the category of their product
// @Tags         sales
// @Produce      json
// @Success      200      {array}    response.Sale
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sales [get]
// @Security     BearerAuth
func (h *SaleHandler) HandleListSales(ctx *gin.Context) {
	sales, err := h.views.ListSalesWithCategory(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListSales -> h.views.ListSalesWithCategory", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSales(sales))
}

// HandleGetSale godoc
// @Summary      Get a sale with the category of its product
// @Tags         sales
// @Produce      json
// @Param        id       path       int  true  "sale ID"
// @Success      200      {object}   response.Sale
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sales/{id} [get]
// @Security     BearerAuth
func (h *SaleHandler) HandleGetSale(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	sale, err := h.views.GetSaleWithCategory(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetSale -> h.views.GetSaleWithCategory", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewSaleWithCategory(sale))
}

// HandleCreateSale godoc
// @Summary      Post a sale and take its quantity out of the product stock
// @Description  Rejected with 400 "Dont have enough stock. Current stock is N" when the product holds less than the quantity.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request  body       request.SaleRequest true "request body"
// @Success      201      {object}   response.Sale
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /sales [post]
// @Security     BearerAuth
func (h *SaleHandler) HandleCreateSale(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.SaleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	sale, err := h.svc.CreateSale(ctx.Request.Context(), userID, req.ToInput())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateSale -> h.svc.CreateSale", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewSale(sale, nil))
}

package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/request"
	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/response"
	"github.com/AkifKA/stock-app-api/internal/domain"
)

type PurchaseService interface {
	CreatePurchase(ctx context.Context, userID uint, input domain.PurchaseInput) (domain.Purchase, error)
}

type PurchaseViewService interface {
	GetPurchaseWithCategory(ctx context.Context, id uint) (domain.PurchaseWithCategory, error)
	ListPurchasesWithCategory(ctx context.Context) ([]domain.PurchaseWithCategory, error)
}

type PurchaseHandler struct {
	svc   PurchaseService
	views PurchaseViewService
}

func NewPurchaseHandler(svc PurchaseService, views PurchaseViewService) *PurchaseHandler {
	return &PurchaseHandler{
		svc:   svc,
		views: views,
	}
}

// HandleListPurchases godoc
// @Summary      List purchases with the category of their product
// @Tags         purchases
// @Produce      json
// @Success      200      {array}    response.Purchase
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /purchases [get]
// @Security     BearerAuth
func (h *PurchaseHandler) HandleListPurchases(ctx *gin.Context) {
	purchases, err := h.views.ListPurchasesWithCategory(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListPurchases -> h.views.ListPurchasesWithCategory", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewPurchases(purchases))
}

// HandleGetPurchase godoc
// @Summary      Get a purchase with the category of its product
// @Tags         purchases
// @Produce      json
// @Param        id       path       int  true  "purchase ID"
// @Success      200      {object}   response.Purchase
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /purchases/{id} [get]
// @Security     BearerAuth
func (h *PurchaseHandler) HandleGetPurchase(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	purchase, err := h.views.GetPurchaseWithCategory(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetPurchase -> h.views.GetPurchaseWithCategory", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewPurchaseWithCategory(purchase))
}

// HandleCreatePurchase godoc
// @Summary      Post a purchase and add its quantity to the product stock
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        request  body       request.PurchaseRequest true "request body"
// @Success      201      {object}   response.Purchase
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /purchases [post]
// @Security     BearerAuth
func (h *PurchaseHandler) HandleCreatePurchase(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PurchaseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	purchase, err := h.svc.CreatePurchase(ctx.Request.Context(), userID, req.ToInput())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreatePurchase -> h.svc.CreatePurchase", err)
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPurchase(purchase, nil))
}

package v1

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/request"
	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/response"
	"github.com/AkifKA/stock-app-api/internal/domain"
)

var errInvalidCategoryFilter = errors.New("invalid category_id")

type ProductService interface {
	CreateProduct(ctx context.Context, userID uint, product domain.Product) (domain.Product, error)
	GetProduct(ctx context.Context, id uint) (domain.Product, error)
	ListProducts(ctx context.Context, categoryID *uint) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id uint, product domain.Product) (domain.Product, error)
	DeleteProduct(ctx context.Context, id uint) error
}

type ProductLedgerService interface {
	ProductLedger(ctx context.Context, productID uint) (domain.ProductLedger, error)
}

type ProductHandler struct {
	svc    ProductService
	ledger ProductLedgerService
}

func NewProductHandler(svc ProductService, ledger ProductLedgerService) *ProductHandler {
	return &ProductHandler{
		svc:    svc,
		ledger: ledger,
	}
}

// HandleListProducts godoc
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        category_id  query      int  false  "only products of this category"
// @Success      200      {array}    domain.Product
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products [get]
// @Security     BearerAuth
func (h *ProductHandler) HandleListProducts(ctx *gin.Context) {
	var categoryID *uint
	if raw, ok := ctx.GetQuery("category_id"); ok {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(errInvalidCategoryFilter))
			return
		}
		filter := uint(id)
		categoryID = &filter
	}

	products, err := h.svc.ListProducts(ctx.Request.Context(), categoryID)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListProducts -> h.svc.ListProducts", err)
		return
	}
	if products == nil {
		products = []domain.Product{}
	}

	ctx.JSON(http.StatusOK, products)
}

// HandleGetProduct godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id       path       int  true  "product ID"
// @Success      200      {object}   domain.Product
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products/{id} [get]
// @Security     BearerAuth
func (h *ProductHandler) HandleGetProduct(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	product, err := h.svc.GetProduct(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetProduct -> h.svc.GetProduct", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleGetProductLedger godoc
// @Summary      Compare a product's stock with its purchase and sale history
// @Tags         products
// @Produce      json
// @Param        id       path       int  true  "product ID"
// @Success      200      {object}   response.ProductLedger
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products/{id}/ledger [get]
// @Security     BearerAuth
func (h *ProductHandler) HandleGetProductLedger(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ledger, err := h.ledger.ProductLedger(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetProductLedger -> h.ledger.ProductLedger", err)
		return
	}

	ctx.JSON(http.StatusOK, response.NewProductLedger(ledger))
}

// HandleCreateProduct godoc
// @Summary      Create a product with zero stock
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request  body       request.ProductRequest true "request body"
// @Success      201      {object}   domain.Product
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products [post]
// @Security     BearerAuth
func (h *ProductHandler) HandleCreateProduct(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.CreateProduct(ctx.Request.Context(), userID, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateProduct -> h.svc.CreateProduct", err)
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// HandleUpdateProduct godoc
// @Summary      Update a product, stock is left untouched
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id       path       int  true  "product ID"
// @Param        request  body       request.ProductRequest true "request body"
// @Success      200      {object}   domain.Product
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products/{id} [put]
// @Security     BearerAuth
func (h *ProductHandler) HandleUpdateProduct(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.ProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	product, err := h.svc.UpdateProduct(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateProduct -> h.svc.UpdateProduct", err)
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// HandleDeleteProduct godoc
// @Summary      Delete a product and its purchases and sales
// @Tags         products
// @Param        id       path       int  true  "product ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /products/{id} [delete]
// @Security     BearerAuth
func (h *ProductHandler) HandleDeleteProduct(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteProduct(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteProduct -> h.svc.DeleteProduct", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

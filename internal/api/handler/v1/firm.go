package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/request"
	"github.com/AkifKA/stock-app-api/internal/api/handler/v1/response"
	"github.com/AkifKA/stock-app-api/internal/domain"
)

type FirmService interface {
	CreateFirm(ctx context.Context, userID uint, firm domain.Firm) (domain.Firm, error)
	GetFirm(ctx context.Context, id uint) (domain.Firm, error)
	ListFirms(ctx context.Context) ([]domain.Firm, error)
	UpdateFirm(ctx context.Context, id uint, firm domain.Firm) (domain.Firm, error)
	DeleteFirm(ctx context.Context, id uint) error
}

type FirmHandler struct {
	svc FirmService
}

func NewFirmHandler(svc FirmService) *FirmHandler {
	return &FirmHandler{
		svc: svc,
	}
}

// HandleListFirms godoc
// @Summary      List firms
// @Tags         firms
// @Produce      json
// @Success      200      {array}    domain.Firm
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /firms [get]
// @Security     BearerAuth
func (h *FirmHandler) HandleListFirms(ctx *gin.Context) {
	firms, err := h.svc.ListFirms(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleListFirms -> h.svc.ListFirms", err)
		return
	}
	if firms == nil {
		firms = []domain.Firm{}
	}

	ctx.JSON(http.StatusOK, firms)
}

// HandleGetFirm godoc
// @Summary      Get a firm
// @Tags         firms
// @Produce      json
// @Param        id       path       int  true  "firm ID"
// @Success      200      {object}   domain.Firm
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /firms/{id} [get]
// @Security     BearerAuth
func (h *FirmHandler) HandleGetFirm(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	firm, err := h.svc.GetFirm(ctx.Request.Context(), id)
	if err != nil {
		renderServiceErr(ctx, "v1.HandleGetFirm -> h.svc.GetFirm", err)
		return
	}

	ctx.JSON(http.StatusOK, firm)
}

// HandleCreateFirm godoc
// @Summary      Create a firm
// @Tags         firms
// @Accept       json
// @Produce      json
// @Param        request  body       request.FirmRequest true "request body"
// @Success      201      {object}   domain.Firm
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /firms [post]
// @Security     BearerAuth
func (h *FirmHandler) HandleCreateFirm(ctx *gin.Context) {
	userID, respErr := getUserIDFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.FirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	firm, err := h.svc.CreateFirm(ctx.Request.Context(), userID, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreateFirm -> h.svc.CreateFirm", err)
		return
	}

	ctx.JSON(http.StatusCreated, firm)
}

// HandleUpdateFirm godoc
// @Summary      Update a firm
// @Tags         firms
// @Accept       json
// @Produce      json
// @Param        id       path       int  true  "firm ID"
// @Param        request  body       request.FirmRequest true "request body"
// @Success      200      {object}   domain.Firm
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /firms/{id} [put]
// @Security     BearerAuth
func (h *FirmHandler) HandleUpdateFirm(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.FirmRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	firm, err := h.svc.UpdateFirm(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleUpdateFirm -> h.svc.UpdateFirm", err)
		return
	}

	ctx.JSON(http.StatusOK, firm)
}

// HandleDeleteFirm godoc
// @Summary      Delete a firm
// @Tags         firms
// @Param        id       path       int  true  "firm ID"
// @Success      204
// @Failure      400      {object}   response.Err
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /firms/{id} [delete]
// @Security     BearerAuth
func (h *FirmHandler) HandleDeleteFirm(ctx *gin.Context) {
	id, respErr := parseIDParam(ctx, "id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.DeleteFirm(ctx.Request.Context(), id); err != nil {
		renderServiceErr(ctx, "v1.HandleDeleteFirm -> h.svc.DeleteFirm", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportService interface {
	StockWorkbook(ctx context.Context) ([]byte, error)
}

type ReportHandler struct {
	svc ReportService
}

func NewReportHandler(svc ReportService) *ReportHandler {
	return &ReportHandler{
		svc: svc,
	}
}

// HandleStockReport godoc
// @Summary      Download the current stock of every product as xlsx
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200      {file}     file
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /reports/stock [get]
// @Security     BearerAuth
func (h *ReportHandler) HandleStockReport(ctx *gin.Context) {
	workbook, err := h.svc.StockWorkbook(ctx.Request.Context())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleStockReport -> h.svc.StockWorkbook", err)
		return
	}

	filename := fmt.Sprintf("stock-%s.xlsx", time.Now().UTC().Format("20060102"))
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	ctx.Data(http.StatusOK, xlsxContentType, workbook)
}

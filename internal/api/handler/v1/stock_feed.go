package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type StockFeed interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type StockFeedHandler struct {
	feed StockFeed
}

func NewStockFeedHandler(feed StockFeed) *StockFeedHandler {
	return &StockFeedHandler{
		feed: feed,
	}
}

// HandleStockFeed godoc
// @Summary      Stream stock events over a websocket
// @Description  Every committed purchase or sale is pushed as a JSON stock event. Browsers may pass the token as ?token=.
// @Tags         stock
// @Success      101      {string}   string "Switching Protocols"
// @Failure      401      {object}   response.Err
// @Router       /stock/live [get]
// @Security     BearerAuth
func (h *StockFeedHandler) HandleStockFeed(ctx *gin.Context) {
	// the upgrader has already written an error response on failure
	if err := h.feed.ServeWS(ctx.Writer, ctx.Request); err != nil {
		zap.L().Info("stock feed upgrade failed", zap.Error(err))
	}
}

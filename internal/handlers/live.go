package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/logging"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/middleware"
)

type LiveMetricsHandler struct {
	source LiveMetricsSource
	logger logging.Logger
}

func NewLiveMetricsHandler(source LiveMetricsSource, logger logging.Logger) *LiveMetricsHandler {
	return &LiveMetricsHandler{source: source, logger: logger}
}

func (h *LiveMetricsHandler) Handle(c *gin.Context) {
	snap, err := h.source.Current(c.Request.Context())
	if err != nil {
		middleware.GetContextLogger(c, h.logger).WithError(err).Error("Live metrics unavailable")
		internalError(c)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, snap)
}

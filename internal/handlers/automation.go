package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/synth"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/internal/validation"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/logging"
	"github.com/BuresaidaDsk/Web-Navigator-AI-Agent/pkg/middleware"
)

type AutomationHandler struct {
	synthesizer Synthesizer
	logger      logging.Logger
	metrics     *SearchMetrics
}

func NewAutomationHandler(synthesizer Synthesizer, logger logging.Logger, metrics *SearchMetrics) *AutomationHandler {
	return &AutomationHandler{
		synthesizer: synthesizer,
		logger:      logger,
		metrics:     metrics,
	}
}

// Handle runs a natural-language command from the demo console. The console
// only renders data.result when data.success is true.
func (h *AutomationHandler) Handle(c *gin.Context) {
	log := middleware.GetContextLogger(c, h.logger)

	var req validation.AutomationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.IncRequest("automation", "internal_error")
		log.WithError(err).Error("Automation API error: decode request")
		internalError(c)
		return
	}

	if err := validation.ValidateAutomation(&req); err != nil {
		h.metrics.IncRequest("automation", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	result, outcome, err := h.synthesizer.Automate(c.Request.Context(), req.Command, req.Options.Type)
	if err != nil {
		if errors.Is(err, synth.ErrUnsupportedType) {
			h.metrics.IncRequest("automation", "unsupported_type")
			c.JSON(http.StatusBadRequest, gin.H{"error": unsupportedTypeMessage})
			return
		}
		h.metrics.IncRequest("automation", "internal_error")
		log.WithError(err).Error("Automation API error")
		internalError(c)
		return
	}
	h.metrics.ObserveOutcome(outcome, time.Since(start))
	h.metrics.IncRequest("automation", "success")

	log.WithFields(logging.Fields{
		"command":  truncateForLog(req.Command),
		"query":    truncateForLog(result.Query),
		"category": outcome.Category.String(),
		"results":  len(result.Results),
	}).Info("Automation demo completed")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"command": req.Command,
		"result":  result,
	})
}

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

const unsupportedTypeMessage = "Unsupported result type"

type SearchHandler struct {
	synthesizer Synthesizer
	logger      logging.Logger
	metrics     *SearchMetrics
}

func NewSearchHandler(synthesizer Synthesizer, logger logging.Logger, metrics *SearchMetrics) *SearchHandler {
	return &SearchHandler{
		synthesizer: synthesizer,
		logger:      logger,
		metrics:     metrics,
	}
}

func (h *SearchHandler) Handle(c *gin.Context) {
	log := middleware.GetContextLogger(c, h.logger)

	var req validation.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.IncRequest("search", "internal_error")
		log.WithError(err).Error("Search API error: decode request")
		internalError(c)
		return
	}

	if err := validation.ValidateSearch(&req); err != nil {
		h.metrics.IncRequest("search", "bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	outcome, err := h.synthesizer.Search(c.Request.Context(), req.Query, req.Type)
	if err != nil {
		if errors.Is(err, synth.ErrUnsupportedType) {
			h.metrics.IncRequest("search", "unsupported_type")
			c.JSON(http.StatusBadRequest, gin.H{"error": unsupportedTypeMessage})
			return
		}
		h.metrics.IncRequest("search", "internal_error")
		log.WithError(err).Error("Search API error")
		internalError(c)
		return
	}
	h.metrics.ObserveOutcome(outcome, time.Since(start))
	h.metrics.IncRequest("search", "success")

	log.WithFields(logging.Fields{
		"query":    truncateForLog(req.Query),
		"type":     outcome.Envelope.Type,
		"category": outcome.Category.String(),
		"branch":   outcome.Branch,
		"results":  len(outcome.Envelope.Results),
		"paused":   outcome.Paused.String(),
	}).Debug("Synthesized search results")

	c.JSON(http.StatusOK, outcome.Envelope)
}

func internalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   middleware.InternalErrorMessage,
	})
}

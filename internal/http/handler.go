package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"iban-scanner/internal/http/middleware"
	"iban-scanner/internal/service"
)

type Handler struct {
	scanService *service.ScanService
	maxBatch    int
	log         zerolog.Logger
}

func NewHandler(scanService *service.ScanService, maxBatch int, log zerolog.Logger) *Handler {
	return &Handler{
		scanService: scanService,
		maxBatch:    maxBatch,
		log:         log,
	}
}

func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := r.Group("/")
	protected.Use(authMiddleware)

	ibanGroup := protected.Group("/iban")
	{
		ibanGroup.POST("/clean", h.clean)
		ibanGroup.POST("/validate", h.validate)
		ibanGroup.POST("/validate/batch", h.validateBatch)
		ibanGroup.POST("/scan", h.scan)
	}
}

func (h *Handler) clean(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		RawText string `json:"raw_text"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	cleaned, err := h.scanService.Clean(principal, req.RawText)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(gin.H{"cleaned_text": cleaned}))
}

func (h *Handler) validate(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Text *string `json:"text" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	result, err := h.scanService.Validate(c.Request.Context(), principal, *req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) validateBatch(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Candidates []string `json:"candidates" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if err := h.checkBatchSize(len(req.Candidates)); err != nil {
		h.handleError(c, err)
		return
	}

	results, err := h.scanService.ValidateBatch(c.Request.Context(), principal, req.Candidates)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(results))
}

func (h *Handler) scan(c *gin.Context) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, errorResponse("missing principal"))
		return
	}

	var req struct {
		Frames []string `json:"frames" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}
	if err := h.checkBatchSize(len(req.Frames)); err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.scanService.Scan(c.Request.Context(), principal, req.Frames)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse(result))
}

func (h *Handler) checkBatchSize(n int) error {
	if h.maxBatch > 0 && n > h.maxBatch {
		return fmt.Errorf("%w: at most %d items allowed", service.ErrInvalidInput, h.maxBatch)
	}
	return nil
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		h.log.Error().Err(err).Msg("handler error")
		c.JSON(http.StatusInternalServerError, errorResponse("internal error"))
	}
}

func successResponse(data interface{}) gin.H {
	return gin.H{
		"data": data,
	}
}

func errorResponse(message string) gin.H {
	return gin.H{
		"error": message,
	}
}

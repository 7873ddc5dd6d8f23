package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zamzamtour/umrah-voucher/internal/models"
	"github.com/zamzamtour/umrah-voucher/internal/service"
	"github.com/zamzamtour/umrah-voucher/internal/voucher"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	svc      *service.Service
	sessions *service.Sessions
	logger   *zap.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(svc *service.Service, sessions *service.Sessions, logger *zap.Logger) *Handlers {
	return &Handlers{
		svc:      svc,
		sessions: sessions,
		logger:   logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
	Sessions  int    `json:"sessions"`
}

// CollectVoucherRequest identifies one package on one worksheet.
type CollectVoucherRequest struct {
	Sheet        string `json:"sheet" binding:"required"`
	PackageTitle string `json:"package_title" binding:"required"`
	Row          int    `json:"row"`
}

// VoucherResponse wraps a collected voucher with its session id.
type VoucherResponse struct {
	SessionID    string          `json:"session_id"`
	Sheet        string          `json:"sheet"`
	PackageTitle string          `json:"package_title"`
	Voucher      *models.Voucher `json:"voucher"`
}

// ScheduleMapsResponse mirrors the four direction buckets.
type ScheduleMapsResponse struct {
	OutboundJeddah map[string]models.FlightSegment `json:"ala_jed"`
	OutboundMedina map[string]models.FlightSegment `json:"ala_med"`
	ReturnJeddah   map[string]models.FlightSegment `json:"jed_ala"`
	ReturnMedina   map[string]models.FlightSegment `json:"med_ala"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
			Sessions:  h.sessions.Len(),
		},
	})
}

// ListWorksheets handles GET /api/worksheets
func (h *Handlers) ListWorksheets(c *gin.Context) {
	titles, err := h.svc.Worksheets(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list worksheets", zap.Error(err))
		c.JSON(http.StatusBadGateway, Response{
			Success: false,
			Error:   "failed to list worksheets",
		})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: titles})
}

// ListPackages handles GET /api/worksheets/:title/packages
func (h *Handlers) ListPackages(c *gin.Context) {
	title := c.Param("title")

	markers, err := h.svc.Packages(c.Request.Context(), title)
	if err != nil {
		h.logger.Error("Failed to list packages", zap.String("sheet", title), zap.Error(err))
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "worksheet not found",
		})
		return
	}
	c.JSON(http.StatusOK, Response{Success: true, Data: markers})
}

// CollectVoucher handles POST /api/vouchers
func (h *Handlers) CollectVoucher(c *gin.Context) {
	var req CollectVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Invalid voucher request", zap.Error(err))
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "sheet and package_title are required",
		})
		return
	}

	marker := models.PackageMarker{Title: req.PackageTitle, Row: req.Row}
	v, err := h.svc.CollectVoucher(c.Request.Context(), req.Sheet, marker)
	if err != nil {
		h.logger.Error("Voucher collection failed",
			zap.String("sheet", req.Sheet),
			zap.String("package", req.PackageTitle),
			zap.Error(err))
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "worksheet not found",
		})
		return
	}

	sess := h.sessions.Put(req.Sheet, req.PackageTitle, v)
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: VoucherResponse{
			SessionID:    sess.ID,
			Sheet:        sess.Sheet,
			PackageTitle: sess.PackageTitle,
			Voucher:      v,
		},
	})
}

// GetVoucher handles GET /api/vouchers/:id
func (h *Handlers) GetVoucher(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "session not found or expired",
		})
		return
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: VoucherResponse{
			SessionID:    sess.ID,
			Sheet:        sess.Sheet,
			PackageTitle: sess.PackageTitle,
			Voucher:      sess.Voucher,
		},
	})
}

// PreviewVoucher handles GET /api/vouchers/:id/preview
func (h *Handlers) PreviewVoucher(c *gin.Context) {
	sess, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, Response{
			Success: false,
			Error:   "session not found or expired",
		})
		return
	}
	c.String(http.StatusOK, voucher.PreviewText(sess.Voucher, sess.PackageTitle))
}

// ScheduleMaps handles GET /api/schedule/maps
func (h *Handlers) ScheduleMaps(c *gin.Context) {
	maps, _, err := h.svc.ScheduleMaps(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to build schedule maps", zap.Error(err))
		c.JSON(http.StatusBadGateway, Response{
			Success: false,
			Error:   "failed to read flight schedule",
		})
		return
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: ScheduleMapsResponse{
			OutboundJeddah: maps[models.OutboundJeddah],
			OutboundMedina: maps[models.OutboundMedina],
			ReturnJeddah:   maps[models.ReturnJeddah],
			ReturnMedina:   maps[models.ReturnMedina],
		},
	})
}

package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "house-info-api/internal/errors"
	"house-info-api/internal/models"
	"house-info-api/internal/services"
)

const (
	APIVersion    = "1.0.0"
	uploadField   = "file"
	multipartSlop = 1 << 20
)

type HouseHandler struct {
	houseService  *services.HouseService
	healthService *services.HealthService
	maxUpload     int64
}

func NewHouseHandler(houseService *services.HouseService, healthService *services.HealthService, maxUpload int64) *HouseHandler {
	return &HouseHandler{
		houseService:  houseService,
		healthService: healthService,
		maxUpload:     maxUpload,
	}
}

// Root godoc
// @Summary API banner
// @Description Reports that the API is running and its version
// @Tags System
// @Produce json
// @Success 200 {object} models.RootResponse
// @Router / [get]
func (h *HouseHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, models.RootResponse{Message: "House Info API is running!", Version: APIVersion})
}

// Health godoc
// @Summary Health check
// @Description Reports the status of the maps, OCR and cache integrations
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.HealthResponse
// @Router /health [get]
func (h *HouseHandler) Health(c *gin.Context) {
	resp := h.healthService.Check(c.Request.Context())
	status := http.StatusOK
	if resp.Status != services.StatusHealthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// AnalyzeHouse godoc
// @Summary Analyze a house photo
// @Description Finds the address in a house photo, geocodes it and returns demo property details
// @Tags Houses
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "House photo"
// @Success 200 {object} models.HouseInfoResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 413 {object} map[string]interface{}
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /analyze-house [post]
func (h *HouseHandler) AnalyzeHouse(c *gin.Context) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+multipartSlop)
	}

	upload, err := h.readUpload(c)
	if err != nil {
		c.Error(err)
		return
	}

	resp, err := h.houseService.AnalyzeHouse(c.Request.Context(), upload)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *HouseHandler) readUpload(c *gin.Context) (*models.Upload, error) {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrUploadTooLarge, err)
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidUpload, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidUpload, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidUpload, err)
	}

	return &models.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Data:        data,
	}, nil
}

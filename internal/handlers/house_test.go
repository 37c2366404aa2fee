package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"house-info-api/internal/detection"
	"house-info-api/internal/middleware"
	"house-info-api/internal/models"
	"house-info-api/internal/repositories"
	"house-info-api/internal/services"
	"house-info-api/internal/validators"

	"github.com/gin-gonic/gin"
)

type stubGeocoder struct {
	result *models.AddressResult
}

func (s *stubGeocoder) Geocode(ctx context.Context, address string) (*models.AddressResult, error) {
	if s.result == nil {
		return nil, nil
	}
	r := *s.result
	r.Address = address
	return &r, nil
}

func newTestRouter(geocoder services.Geocoder, maxUpload int64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	rng := rand.New(rand.NewPCG(11, 12))
	houseService := services.NewHouseService(
		validators.NewUploadValidator(maxUpload),
		detection.NewMockDetector(rng),
		geocoder,
		services.NewValuationService(rng),
		true,
	)
	healthService := services.NewHealthService(true, "", repositories.NewMemoryGeocodeCache(), "mock")
	handler := NewHouseHandler(houseService, healthService, maxUpload)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/", handler.Root)
	r.GET("/health", handler.Health)
	r.POST("/analyze-house", handler.AnalyzeHouse)
	return r
}

func multipartBody(t *testing.T, field, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	part.Write(data)
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func postUpload(t *testing.T, r http.Handler, field, filename, contentType string, data []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, formType := multipartBody(t, field, filename, contentType, data)
	req := httptest.NewRequest(http.MethodPost, "/analyze-house", body)
	req.Header.Set("Content-Type", formType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRoot(t *testing.T) {
	r := newTestRouter(&stubGeocoder{}, 1<<20)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp models.RootResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Message != "House Info API is running!" || resp.Version != "1.0.0" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubGeocoder{}, 1<<20)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp models.HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Status != "healthy" || resp.APIs["maps"] != "connected" || resp.DetectionMode != "mock" {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAnalyzeHouse(t *testing.T) {
	geocoder := &stubGeocoder{result: &models.AddressResult{
		FormattedAddress: "456 Oak Ave, New York, NY 10001, USA",
		Latitude:         40.75,
		Longitude:        -73.99,
		PlaceID:          "place-456",
	}}
	r := newTestRouter(geocoder, 1<<20)

	w := postUpload(t, r, "file", "house.jpg", "image/jpeg", []byte("fake-jpeg"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp models.HouseInfoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !resp.Success || resp.Message != "House information retrieved successfully (demo mode)" {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.PropertyInfo == nil || resp.PropertyInfo.Address.PlaceID != "place-456" {
		t.Fatalf("unexpected property info %+v", resp.PropertyInfo)
	}
	if v := *resp.PropertyInfo.EstimatedValue; v < 600_000 || v > 1_500_000 {
		t.Errorf("expected a New York value, got %d", v)
	}
}

func TestAnalyzeHouseNotGeocoded(t *testing.T) {
	r := newTestRouter(&stubGeocoder{}, 1<<20)

	w := postUpload(t, r, "file", "house.jpg", "image/jpeg", []byte("fake-jpeg"))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp models.HouseInfoResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if resp.Success || resp.Message != "Could not geocode address" || resp.PropertyInfo != nil {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestAnalyzeHouseRejections(t *testing.T) {
	testCases := []struct {
		name        string
		field       string
		contentType string
		data        []byte
		status      int
		message     string
	}{
		{"not an image", "file", "text/plain", []byte("hello"), http.StatusBadRequest, "File must be an image"},
		{"wrong field", "photo", "image/jpeg", []byte("jpeg"), http.StatusBadRequest, "Please upload a photo using the 'file' form field."},
		{"too large", "file", "image/jpeg", bytes.Repeat([]byte("x"), 2048), http.StatusRequestEntityTooLarge, "The uploaded photo is too large. Please upload a smaller image."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&stubGeocoder{}, 1024)
			w := postUpload(t, r, tc.field, "upload.bin", tc.contentType, tc.data)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Success || body.Message != tc.message {
				t.Errorf("unexpected body %s", w.Body.String())
			}
		})
	}
}

package ocr

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "house-info-api/internal/errors"
	"house-info-api/pkg/logger"
	"house-info-api/pkg/metrics"
)

const defaultVisionBaseURL = "https://vision.googleapis.com"

// VisionClient calls the Google Cloud Vision images:annotate REST endpoint.
type VisionClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

type visionRequest struct {
	Requests []visionImageRequest `json:"requests"`
}

type visionImageRequest struct {
	Image struct {
		Content string `json:"content"`
	} `json:"image"`
	Features []visionFeature `json:"features"`
}

type visionFeature struct {
	Type string `json:"type"`
}

type visionStatus struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

type visionResponse struct {
	Responses []struct {
		TextAnnotations []struct {
			Description string `json:"description"`
		} `json:"textAnnotations"`
		FullTextAnnotation *struct {
			Text string `json:"text"`
		} `json:"fullTextAnnotation"`
		Error *visionStatus `json:"error"`
	} `json:"responses"`
	Error *visionStatus `json:"error"`
}

func NewVisionClient(apiKey, baseURL string, timeout time.Duration) *VisionClient {
	if baseURL == "" {
		baseURL = defaultVisionBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &VisionClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (v *VisionClient) Name() string {
	return "vision"
}

// Recognize runs TEXT_DETECTION on the image and returns the full text.
func (v *VisionClient) Recognize(ctx context.Context, image []byte) (string, error) {
	start := time.Now()
	text, err := v.recognize(ctx, image)
	metrics.ExternalRequestDuration.WithLabelValues("ocr", v.Name()).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ExternalErrorsTotal.WithLabelValues("ocr", v.Name()).Inc()
		return "", err
	}
	return text, nil
}

func (v *VisionClient) recognize(ctx context.Context, image []byte) (string, error) {
	var imageReq visionImageRequest
	imageReq.Image.Content = base64.StdEncoding.EncodeToString(image)
	imageReq.Features = []visionFeature{{Type: "TEXT_DETECTION"}}

	jsonBody, err := json.Marshal(visionRequest{Requests: []visionImageRequest{imageReq}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal vision request: %v", err)
	}

	endpoint := v.baseURL + "/v1/images:annotate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to create vision request: error=%v", err)
		return "", fmt.Errorf("failed to create vision request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", v.apiKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		err = apperrors.RedactSecrets(err)
		logger.GlobalLogger.Errorf("Failed to send vision request: error=%v", err)
		return "", fmt.Errorf("failed to send vision request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to read vision response body: status=%s, error=%v", resp.Status, err)
		return "", fmt.Errorf("failed to read vision response body: %v", err)
	}

	var visionResp visionResponse
	if err := json.Unmarshal(body, &visionResp); err != nil {
		logger.GlobalLogger.Errorf("Failed to decode vision response: status=%s, response=%s, error=%v", resp.Status, string(body), err)
		return "", fmt.Errorf("failed to decode vision response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		logger.GlobalLogger.Errorf("Vision request failed: status=%s, response=%s", resp.Status, string(body))
		if visionResp.Error != nil {
			return "", fmt.Errorf("vision request failed: %s: %s", visionResp.Error.Status, visionResp.Error.Message)
		}
		return "", fmt.Errorf("vision request failed: %s", resp.Status)
	}

	if len(visionResp.Responses) == 0 {
		return "", nil
	}
	first := visionResp.Responses[0]
	if first.Error != nil && first.Error.Message != "" {
		return "", fmt.Errorf("vision annotate failed: %s", first.Error.Message)
	}
	if first.FullTextAnnotation != nil && first.FullTextAnnotation.Text != "" {
		return first.FullTextAnnotation.Text, nil
	}
	if len(first.TextAnnotations) > 0 {
		return first.TextAnnotations[0].Description, nil
	}
	return "", nil
}

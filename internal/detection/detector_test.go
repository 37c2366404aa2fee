package detection

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	apperrors "house-info-api/internal/errors"
	"house-info-api/internal/transformers"
	"house-info-api/pkg/config"
)

type stubRecognizer struct {
	text  string
	err   error
	calls int
}

func (s *stubRecognizer) Name() string { return "stub" }

func (s *stubRecognizer) Recognize(ctx context.Context, image []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

func TestMockDetectorPicksDemoAddress(t *testing.T) {
	detector := NewMockDetector(rand.New(rand.NewPCG(1, 2)))
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		detection, err := detector.Detect(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Contains(DemoAddresses, detection.Address) {
			t.Fatalf("unexpected address %q", detection.Address)
		}
		if detection.Source != "mock" {
			t.Errorf("unexpected source %q", detection.Source)
		}
		seen[detection.Address] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected several distinct addresses over 50 draws, got %d", len(seen))
	}
}

func TestMockDetectorHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockDetector(nil).Detect(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestOCRDetector(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		recErr  error
		address string
		wantErr error
	}{
		{
			name:    "finds address",
			text:    "FOR SALE\n123 Main St\nBeverly Hills CA90210\n",
			address: "123 Main St, Beverly Hills CA 90210",
		},
		{
			name:    "blank text",
			text:    "  \n\t",
			wantErr: apperrors.ErrNoText,
		},
		{
			name:    "no address",
			text:    "Hello\nWorld",
			wantErr: apperrors.ErrNoAddress,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			recognizer := &stubRecognizer{text: tc.text, err: tc.recErr}
			detector := NewOCRDetector(recognizer, transformers.NewAddressExtractor())

			detection, err := detector.Detect(context.Background(), []byte("img"))
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if detection.Address != tc.address {
				t.Errorf("expected %q, got %q", tc.address, detection.Address)
			}
			if detection.Source != "ocr:stub" || detection.RawText != tc.text {
				t.Errorf("unexpected detection %+v", detection)
			}
		})
	}
}

func TestOCRDetectorRecognizerFailure(t *testing.T) {
	recognizer := &stubRecognizer{err: errors.New("quota exceeded")}
	_, err := NewOCRDetector(recognizer, transformers.NewAddressExtractor()).Detect(context.Background(), nil)
	if err == nil || errors.Is(err, apperrors.ErrNoText) {
		t.Fatalf("expected a recognition error, got %v", err)
	}
}

func TestNewDetector(t *testing.T) {
	cfg := &config.Config{}

	cfg.Detection.Mode = config.DetectionModeMock
	d, err := NewDetector(cfg, nil, nil)
	if err != nil || d.Name() != "mock" {
		t.Fatalf("expected mock detector, got %v, %v", d, err)
	}

	cfg.Detection.Mode = config.DetectionModeOCR
	if _, err := NewDetector(cfg, nil, nil); err == nil {
		t.Error("expected error without recognizer")
	}
	d, err = NewDetector(cfg, &stubRecognizer{}, nil)
	if err != nil || d.Name() != "ocr:stub" {
		t.Fatalf("expected ocr detector, got %v, %v", d, err)
	}

	cfg.Detection.Mode = "psychic"
	if _, err := NewDetector(cfg, nil, nil); err == nil {
		t.Error("expected unknown mode error")
	}
}

package detection

import (
	"context"
	"math/rand/v2"
	"sync"

	"house-info-api/internal/models"
)

// DemoAddresses are the addresses the mock detector picks from.
var DemoAddresses = []string{
	"123 Main Street, Beverly Hills, CA 90210",
	"456 Oak Avenue, New York, NY 10001",
	"789 Pine Boulevard, Miami, FL 33101",
}

// MockDetector ignores the image and picks a demo address at random.
type MockDetector struct {
	mu        sync.Mutex
	rng       *rand.Rand
	addresses []string
}

func NewMockDetector(rng *rand.Rand) *MockDetector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &MockDetector{rng: rng, addresses: DemoAddresses}
}

func (d *MockDetector) Name() string {
	return "mock"
}

func (d *MockDetector) Detect(ctx context.Context, image []byte) (*models.Detection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	address := d.addresses[d.rng.IntN(len(d.addresses))]
	d.mu.Unlock()

	return &models.Detection{
		Address:    address,
		Source:     d.Name(),
		Candidates: []string{address},
	}, nil
}

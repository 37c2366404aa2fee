package cache

import (
	"fmt"
)

// cache key for a geocoded address; normalized must already be folded.
func GeocodeKey(normalized string) string {
	return fmt.Sprintf("geocode:%s", normalized)
}

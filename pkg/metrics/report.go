package metrics

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// Report is the --metrics output.
type Report struct {
	Timings []TimingStats `json:"timings"`
	Caches  []CacheStats  `json:"caches,omitempty"`
}

// Snapshot collects every metric that recorded data.
func Snapshot() Report {
	return Report{
		Timings: AllTimingStats(),
		Caches:  AllCacheStats(),
	}
}

// WriteJSON writes r as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding metrics: %w", err)
	}
	return nil
}

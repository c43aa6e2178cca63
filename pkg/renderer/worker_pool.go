package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/shirou/gopsutil/cpu"
)

// RowBand is a half-open range of image rows [Start, End) owned by one worker
type RowBand struct {
	Start int
	End   int
}

// Rows returns the number of rows in the band
func (b RowBand) Rows() int {
	return b.End - b.Start
}

// ClampWorkers bounds a requested worker count to [1, height]
func ClampWorkers(numWorkers, height int) int {
	return max(1, min(numWorkers, height))
}

// PartitionRows splits height rows into numWorkers contiguous bands of
// max(1, height/numWorkers) rows. The last band absorbs the remainder.
// numWorkers must already be clamped to [1, height].
func PartitionRows(height, numWorkers int) []RowBand {
	rowsPerWorker := max(1, height/numWorkers)

	bands := make([]RowBand, numWorkers)
	start := 0
	for i := range bands {
		end := start + rowsPerWorker
		if i == numWorkers-1 {
			end = height
		}
		bands[i] = RowBand{Start: start, End: end}
		start = end
	}
	return bands
}

// DefaultWorkers returns the logical CPU count
func DefaultWorkers() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// runBands runs fn once per band on its own goroutine and waits for all of
// them. Each call owns its band exclusively, so fn may write the band's rows
// of a shared buffer without locking.
func runBands(bands []RowBand, fn func(band RowBand)) []BandStats {
	stats := make([]BandStats, len(bands))

	var wg sync.WaitGroup
	for i, band := range bands {
		wg.Add(1)
		go func(i int, band RowBand) {
			defer wg.Done()
			start := time.Now()
			fn(band)
			// Each goroutine writes only its own slot
			stats[i] = BandStats{Worker: i, Band: band, RenderTime: time.Since(start)}
		}(i, band)
	}
	wg.Wait()

	return stats
}

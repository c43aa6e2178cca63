package renderer

import (
	"sync/atomic"
	"testing"
)

func TestClampWorkers(t *testing.T) {
	tests := []struct {
		requested, height, expected int
	}{
		{0, 10, 1},
		{-4, 10, 1},
		{4, 10, 4},
		{64, 10, 10},
		{1, 1, 1},
	}

	for _, tt := range tests {
		if got := ClampWorkers(tt.requested, tt.height); got != tt.expected {
			t.Errorf("ClampWorkers(%d, %d): expected %d, got %d", tt.requested, tt.height, tt.expected, got)
		}
	}
}

func TestPartitionRows_CoversEveryRowOnce(t *testing.T) {
	for height := 1; height <= 67; height++ {
		for requested := 1; requested <= 20; requested++ {
			workers := ClampWorkers(requested, height)
			bands := PartitionRows(height, workers)

			if len(bands) != workers {
				t.Fatalf("h=%d w=%d: expected %d bands, got %d", height, workers, workers, len(bands))
			}

			next := 0
			for i, band := range bands {
				if band.Start != next {
					t.Fatalf("h=%d w=%d: band %d starts at %d, expected %d", height, workers, i, band.Start, next)
				}
				if band.Rows() < 1 {
					t.Fatalf("h=%d w=%d: band %d is empty", height, workers, i)
				}
				next = band.End
			}
			if next != height {
				t.Fatalf("h=%d w=%d: bands end at %d, expected %d", height, workers, next, height)
			}
		}
	}
}

func TestPartitionRows_LastBandTakesRemainder(t *testing.T) {
	bands := PartitionRows(10, 3)
	expected := []RowBand{{0, 3}, {3, 6}, {6, 10}}
	for i := range expected {
		if bands[i] != expected[i] {
			t.Errorf("Band %d: expected %v, got %v", i, expected[i], bands[i])
		}
	}
}

func TestRunBands_RunsEachBandOnce(t *testing.T) {
	bands := PartitionRows(100, 7)
	var rowsSeen [100]int32

	stats := runBands(bands, func(band RowBand) {
		for y := band.Start; y < band.End; y++ {
			atomic.AddInt32(&rowsSeen[y], 1)
		}
	})

	for y, count := range rowsSeen {
		if count != 1 {
			t.Errorf("Row %d rendered %d times", y, count)
		}
	}
	if len(stats) != len(bands) {
		t.Fatalf("Expected %d band stats, got %d", len(bands), len(stats))
	}
	total := 0.0
	for i, s := range stats {
		if s.Worker != i || s.Band != bands[i] {
			t.Errorf("Stats %d out of order: %+v", i, s)
		}
		total += s.FramePercent(100)
	}
	if total < 99.999 || total > 100.001 {
		t.Errorf("Expected bands to cover 100%% of the frame, got %f", total)
	}
}

func TestDefaultWorkers(t *testing.T) {
	if n := DefaultWorkers(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}

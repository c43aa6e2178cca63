package renderer

import (
	"image/color"
	"testing"
	"time"
)

func TestAverageLuminance(t *testing.T) {
	// Red 0.2126, green 0.7152, blue 0.0722 and black average to 0.25
	pixels := []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{0, 0, 0, 255},
	}

	avgLum := AverageLuminance(pixels)
	expected := 0.25
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminance %f, got %f", expected, avgLum)
	}
}

func TestAverageLuminance_White(t *testing.T) {
	avgLum := AverageLuminance([]color.RGBA{{255, 255, 255, 255}})
	expected := 1.0
	tolerance := 0.0001

	if avgLum < expected-tolerance || avgLum > expected+tolerance {
		t.Errorf("Expected average luminance %f, got %f", expected, avgLum)
	}
}

func TestAverageLuminance_Empty(t *testing.T) {
	if got := AverageLuminance(nil); got != 0 {
		t.Errorf("Expected 0 for no pixels, got %f", got)
	}
}

func TestBandStats_FramePercent(t *testing.T) {
	stats := BandStats{Worker: 1, Band: RowBand{Start: 10, End: 35}, RenderTime: time.Millisecond}

	if got := stats.FramePercent(100); got != 25 {
		t.Errorf("Expected 25%%, got %f", got)
	}
	if got := stats.FramePercent(0); got != 0 {
		t.Errorf("Expected 0 for empty frame, got %f", got)
	}
}

func TestFrameStats_TotalPixels(t *testing.T) {
	if got := (FrameStats{Width: 7, Height: 3}).TotalPixels(); got != 21 {
		t.Errorf("Expected 21 pixels, got %d", got)
	}
}

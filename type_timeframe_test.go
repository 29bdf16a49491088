package demofolio

import (
	"testing"
	"time"
)

func TestTimeframeRoundTrip(t *testing.T) {
	for _, tf := range Timeframes() {
		got, err := ParseTimeframe(tf.String())
		if err != nil {
			t.Fatalf("ParseTimeframe(%q): %v", tf.String(), err)
		}
		if got != tf {
			t.Errorf("round trip %v -> %q -> %v", tf, tf.String(), got)
		}
	}
	if _, err := ParseTimeframe("quarter"); err == nil {
		t.Error("expected error for unknown timeframe")
	}
}

func TestTimeframePoints(t *testing.T) {
	tests := []struct {
		tf    Timeframe
		count int
	}{
		{Day, 24},
		{Week, 7},
		{Month, 30},
		{Year, 52},
		{All, 36},
	}
	for _, tt := range tests {
		if got := tt.tf.Points(); got != tt.count {
			t.Errorf("%v.Points() = %d, want %d", tt.tf, got, tt.count)
		}
	}
}

func TestTimeframeStepBack(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
	tests := []struct {
		tf       Timeframe
		i        int
		expected time.Time
	}{
		{Day, 3, now.Add(-3 * time.Hour)},
		{Week, 2, now.AddDate(0, 0, -2)},
		{Month, 10, now.AddDate(0, 0, -10)},
		{Year, 4, now.AddDate(0, 0, -28)},
		{All, 6, now.AddDate(0, -6, 0)},
	}
	for _, tt := range tests {
		if got := tt.tf.StepBack(now, tt.i); !got.Equal(tt.expected) {
			t.Errorf("%v.StepBack(now, %d) = %v, want %v", tt.tf, tt.i, got, tt.expected)
		}
	}
}

func TestTimeframeBucket(t *testing.T) {
	now := time.Date(2025, time.March, 15, 14, 30, 0, 0, time.UTC)
	tests := []struct {
		tf       Timeframe
		expected int
	}{
		{Day, 14},
		{Week, 15},
		{Month, 15},
		{Year, 3},
		{All, 3},
	}
	for _, tt := range tests {
		if got := tt.tf.Bucket(now); got != tt.expected {
			t.Errorf("%v.Bucket(now) = %d, want %d", tt.tf, got, tt.expected)
		}
	}

	// Within a bucket the index is stable.
	later := now.Add(10 * time.Minute)
	for _, tf := range Timeframes() {
		if tf.Bucket(now) != tf.Bucket(later) {
			t.Errorf("%v bucket changed within its cadence", tf)
		}
	}
}

package services

import "testing"

func TestXPForCompletion(t *testing.T) {
	tests := []struct {
		frequency int
		want      int
	}{
		{frequency: 1, want: 10},
		{frequency: 0, want: 10},
		{frequency: 2, want: 10},
		{frequency: 3, want: 15},
		{frequency: 7, want: 35},
	}

	for _, tt := range tests {
		if got := XPForCompletion(tt.frequency); got != tt.want {
			t.Errorf("XPForCompletion(%d) = %d, want %d", tt.frequency, got, tt.want)
		}
	}
}

func TestLevelForXPBoundaries(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{xp: 0, want: 0},
		{xp: 99, want: 0},
		{xp: 100, want: 1},
		{xp: 399, want: 1},
		{xp: 400, want: 2},
		{xp: 899, want: 2},
		{xp: 900, want: 3},
		{xp: -5, want: 0},
	}

	for _, tt := range tests {
		if got := LevelForXP(tt.xp); got != tt.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestLevelIsPureFunctionOfXP(t *testing.T) {
	// The same total must always yield the same level regardless of how the
	// user got there.
	total := 0
	for i := 0; i < 50; i++ {
		total += XPForCompletion(3)
	}
	first := LevelForXP(total)
	second := LevelForXP(total)
	if first != second {
		t.Fatalf("level not deterministic: %d vs %d", first, second)
	}
}

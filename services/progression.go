// services/progression.go - XP and level formulas
package services

import "math"

// XPForCompletion returns the experience awarded for completing a habit with
// the given frequency in days. Daily habits pay a flat 10; less frequent
// habits pay 5 per day of the interval.
func XPForCompletion(frequency int) int {
	if frequency <= 1 {
		return 10
	}
	return 5 * frequency
}

// LevelForXP derives a level from a total XP amount: floor(sqrt(xp) / 10).
// The level is a pure function of cumulative XP, so large XP jumps can skip
// levels. Negative totals never occur but clamp to 0 anyway.
func LevelForXP(xp int) int {
	if xp <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(xp)) / 10)
}

package grading

import "strings"

// Per-batch sheet limits by subscription plan. Plans without MCQ analysis
// get 0, as do unknown plans.
var planLimits = map[string]int{
	"free":     0,
	"basic":    0,
	"standard": 200,
	"premium":  500,
}

// MaxBatchSize returns how many answer sheets a plan may grade in one batch.
// Lookup is case-insensitive.
func MaxBatchSize(plan string) int {
	return planLimits[strings.ToLower(plan)]
}

package services

import "math"

// CompletionRate returns round(completed / total * 100), or 0 when total is 0.
func CompletionRate(completed, total int64) int64 {
	if total <= 0 {
		return 0
	}
	return int64(math.Round(float64(completed) / float64(total) * 100))
}

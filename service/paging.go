package service

import "math"

// ListQuery carries the shared pagination inputs of the list endpoints.
// Page and Limit have already been validated (>= 1) at the binding layer.
type ListQuery struct {
	Page  int
	Limit int
	Q     string
}

func (q ListQuery) offset() int {
	return (q.Page - 1) * q.Limit
}

// totalPages is ceil(count/limit), with a non-positive limit forced to a
// single page instead of dividing by zero.
func totalPages(count int64, limit int) int {
	if limit <= 0 {
		return 1
	}
	return int(math.Ceil(float64(count) / float64(limit)))
}

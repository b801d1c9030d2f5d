package service

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		limit int
		want  int
	}{
		{"exact division", 20, 10, 2},
		{"partial last page", 12, 5, 3},
		{"single page", 3, 10, 1},
		{"empty", 0, 10, 0},
		{"zero limit forced to one page", 12, 0, 1},
		{"negative limit forced to one page", 12, -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalPages(tt.count, tt.limit); got != tt.want {
				t.Errorf("totalPages(%d, %d) = %d, want %d", tt.count, tt.limit, got, tt.want)
			}
		})
	}
}

func TestListQueryOffset(t *testing.T) {
	q := ListQuery{Page: 3, Limit: 7}
	if got := q.offset(); got != 14 {
		t.Errorf("offset = %d, want 14", got)
	}
	q = ListQuery{Page: 1, Limit: 10}
	if got := q.offset(); got != 0 {
		t.Errorf("offset = %d, want 0", got)
	}
}

package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		page      int
		size      int
		wantFrom  int
		wantLimit int
	}{
		{name: "first page", page: 1, size: 10, wantFrom: 0, wantLimit: 10},
		{name: "second page", page: 2, size: 10, wantFrom: 10, wantLimit: 10},
		{name: "zero page clamps to first", page: 0, size: 5, wantFrom: 0, wantLimit: 5},
		{name: "negative size uses default", page: 1, size: -1, wantFrom: 0, wantLimit: DefaultPageSize},
		{name: "oversized uses default", page: 3, size: 500, wantFrom: 20, wantLimit: DefaultPageSize},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			from, limit := Calculate(tt.page, tt.size)
			assert.Equal(t, tt.wantFrom, from)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

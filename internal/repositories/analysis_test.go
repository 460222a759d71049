package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampHistoryLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "zero uses default", limit: 0, want: DefaultHistoryLimit},
		{name: "negative uses default", limit: -5, want: DefaultHistoryLimit},
		{name: "one", limit: 1, want: 1},
		{name: "at max", limit: MaxHistoryLimit, want: MaxHistoryLimit},
		{name: "above max is capped", limit: MaxHistoryLimit + 1, want: MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampHistoryLimit(tt.limit))
		})
	}
}

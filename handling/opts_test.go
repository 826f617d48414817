package handling

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	r := httptest.NewRequest("GET", "/management/sales-report?start=2026-01-01&end=2026-01-31", nil)

	rng := ParseDateRange(r)
	require.NotNil(t, rng.Start)
	require.NotNil(t, rng.End)

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *rng.Start)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), *rng.End)
}

func TestParseDateRangePartial(t *testing.T) {
	r := httptest.NewRequest("GET", "/management/sales-report?start=2026-03-15", nil)

	rng := ParseDateRange(r)
	require.NotNil(t, rng.Start)
	assert.Nil(t, rng.End)
}

func TestParseDateRangeMalformedIgnored(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"garbage", "/management/sales-report?start=yesterday&end=tomorrow"},
		{"wrong layout", "/management/sales-report?start=01-02-2026"},
		{"empty values", "/management/sales-report?start=&end="},
		{"no params", "/management/sales-report"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := ParseDateRange(httptest.NewRequest("GET", tt.url, nil))
			assert.Nil(t, rng.Start)
			assert.Nil(t, rng.End)
		})
	}
}

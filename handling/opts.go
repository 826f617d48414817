package handling

import (
	"net/http"
	"time"

	"afpromotion_server/structs"
)

const reportDateLayout = "2006-01-02"

// ParseDateRange reads the optional start and end query parameters of the
// report endpoints. Malformed or absent values yield a nil bound, so a bad
// date behaves exactly like no filter at all.
func ParseDateRange(r *http.Request) structs.DateRange {
	query := r.URL.Query()

	var rng structs.DateRange

	if startStr := query.Get("start"); startStr != "" {
		if t, err := time.Parse(reportDateLayout, startStr); err == nil {
			rng.Start = &t
		}
	}

	if endStr := query.Get("end"); endStr != "" {
		if t, err := time.Parse(reportDateLayout, endStr); err == nil {
			rng.End = &t
		}
	}

	return rng
}

package handler

import (
	"net/http"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// monthFilter reads month/year query params, defaulting to the current month.
func monthFilter(r *http.Request) (time.Month, int) {
	now := time.Now()
	month := now.Month()
	year := now.Year()

	if v, err := strconv.Atoi(r.URL.Query().Get("month")); err == nil && v >= 1 && v <= 12 {
		month = time.Month(v)
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("year")); err == nil && v > 2000 {
		year = v
	}
	return month, year
}

// dateFilter reads a date query param, defaulting to today.
func dateFilter(r *http.Request, name string) time.Time {
	if v := r.URL.Query().Get(name); v != "" {
		if t, err := time.Parse(dateLayout, v); err == nil {
			return t
		}
	}
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate parses a request-body date string, defaulting to today when empty.
func parseDate(v string) (time.Time, error) {
	if v == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(dateLayout, v)
}

package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidStart = errors.New("start must be RFC3339 or YYYY-MM-DDTHH:MM")
	ErrInvalidDate  = errors.New("date must be YYYY-MM-DD")
)

// wallClockLayouts are accepted for starts without an offset; they are read in
// the workshop location.
var wallClockLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02 15:04"}

// ScheduleRequest places a work order on a mechanic's calendar.
type ScheduleRequest struct {
	MechanicID    string   `json:"mechanic_id" binding:"required"`
	Start         string   `json:"start" binding:"required"`
	DurationHours *float64 `json:"duration_hours"`
}

func (r ScheduleRequest) ResolveStart(loc *time.Location) (time.Time, error) {
	return ParseStart(r.Start, loc)
}

// ParseStart accepts RFC3339 instants or wall-clock times in loc.
func ParseStart(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, ErrInvalidStart
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.In(loc), nil
	}
	for _, layout := range wallClockLayouts {
		if t, err := time.ParseInLocation(layout, v, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidStart
}

// ParseDate reads a YYYY-MM-DD query value as midnight in loc. Empty means
// "not given" and returns the zero time.
func ParseDate(v string, loc *time.Location) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation("2006-01-02", v, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

package reservation

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("period end must not be before start")

// Period is the half-open rental interval [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.start) && t.Before(p.end)
}

func (p Period) WithEnd(end time.Time) (Period, error) {
	return NewPeriod(p.start, end)
}

func (p Period) String() string {
	return p.start.Format("2006-01-02") + " - " + p.end.Format("2006-01-02")
}

package entities

import (
	"errors"
	"time"
)

type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodThisMonth Period = "this_month"
	PeriodLastMonth Period = "last_month"
	PeriodThisYear  Period = "this_year"
	PeriodLastYear  Period = "last_year"
	PeriodAll       Period = "all"
)

var ErrUnknownPeriod = errors.New("unknown stats period")

// Range returns the half-open interval [from, to) covered by the period in
// now's location. PeriodAll returns zero times.
func (p Period) Range(now time.Time) (from, to time.Time, err error) {
	y, m, d := now.Date()
	loc := now.Location()
	today := time.Date(y, m, d, 0, 0, 0, 0, loc)

	switch p {
	case PeriodToday:
		return today, today.AddDate(0, 0, 1), nil
	case PeriodYesterday:
		return today.AddDate(0, 0, -1), today, nil
	case PeriodThisMonth:
		first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return first, today.AddDate(0, 0, 1), nil
	case PeriodLastMonth:
		first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return first.AddDate(0, -1, 0), first, nil
	case PeriodThisYear:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc), today.AddDate(0, 0, 1), nil
	case PeriodLastYear:
		return time.Date(y-1, time.January, 1, 0, 0, 0, 0, loc), time.Date(y, time.January, 1, 0, 0, 0, 0, loc), nil
	case PeriodAll:
		return time.Time{}, time.Time{}, nil
	default:
		return time.Time{}, time.Time{}, ErrUnknownPeriod
	}
}

type Stats struct {
	Count int64
	Total int64
}

package domain

import "errors"

var (
	ErrInvalidTimeOfDay = errors.New("time of day out of range")
	ErrInvalidWeekday   = errors.New("weekday must be between Sunday and Saturday")
	ErrInvalidWindow    = errors.New("window end must not be before window start")
	ErrMissingLocation  = errors.New("window requires a time zone location")
	ErrInvalidInterval  = errors.New("interval end must not be before interval start")
	ErrOverrideNotFound = errors.New("no override exists for that date")
	ErrScheduleNotFound = errors.New("schedule not found")
)

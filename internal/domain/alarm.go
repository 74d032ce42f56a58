package domain

import "errors"

const (
	// MaxAlarmHour is the largest selectable hour offset.
	MaxAlarmHour = 23

	// MaxAlarmMinute is the largest selectable minute offset.
	MaxAlarmMinute = 59
)

var (
	ErrInvalidHour   = errors.New("alarm hour must be between 0 and 23")
	ErrInvalidMinute = errors.New("alarm minute must be between 0 and 59")
)

// AlarmTarget is the hour/minute offset picked on the alarm screen.
type AlarmTarget struct {
	Hour   int
	Minute int
}

// DefaultAlarmTarget is the selection shown when the alarm screen opens.
func DefaultAlarmTarget() AlarmTarget {
	return AlarmTarget{Hour: 0, Minute: 30}
}

// NewAlarmTarget validates an hour/minute pair.
func NewAlarmTarget(hour, minute int) (AlarmTarget, error) {
	if hour < 0 || hour > MaxAlarmHour {
		return AlarmTarget{}, ErrInvalidHour
	}
	if minute < 0 || minute > MaxAlarmMinute {
		return AlarmTarget{}, ErrInvalidMinute
	}
	return AlarmTarget{Hour: hour, Minute: minute}, nil
}

// Seconds converts the offset into countdown seconds.
func (t AlarmTarget) Seconds() int {
	return t.Hour*3600 + t.Minute*60
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAlarmTarget(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		minute  int
		wantErr error
	}{
		{"zero", 0, 0, nil},
		{"default", 0, 30, nil},
		{"max", 23, 59, nil},
		{"hour too big", 24, 0, ErrInvalidHour},
		{"negative hour", -1, 0, ErrInvalidHour},
		{"minute too big", 0, 60, ErrInvalidMinute},
		{"negative minute", 0, -1, ErrInvalidMinute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := NewAlarmTarget(tt.hour, tt.minute)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, AlarmTarget{Hour: tt.hour, Minute: tt.minute}, target)
		})
	}
}

func TestAlarmTarget_Seconds(t *testing.T) {
	assert.Equal(t, 1800, DefaultAlarmTarget().Seconds())
	assert.Equal(t, 60, AlarmTarget{Minute: 1}.Seconds())
	assert.Equal(t, 23*3600+59*60, AlarmTarget{Hour: 23, Minute: 59}.Seconds())
}

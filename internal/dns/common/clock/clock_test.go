package clock

import (
	"testing"
	"time"
)

func TestRealClock_Now(t *testing.T) {
	clock := RealClock{}

	// Capture time before and after the clock call
	before := time.Now()
	now := clock.Now()
	after := time.Now()

	// The clock's time should be between our before/after measurements
	if now.Before(before) {
		t.Errorf("Clock time %v is before measurement time %v", now, before)
	}
	if now.After(after) {
		t.Errorf("Clock time %v is after measurement time %v", now, after)
	}
}

func TestMockClock_Now(t *testing.T) {
	fixedTime := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := &MockClock{CurrentTime: fixedTime}

	if now := clock.Now(); !now.Equal(fixedTime) {
		t.Errorf("Expected %v, got %v", fixedTime, now)
	}

	// Repeated reads stay stable until advanced.
	if first, second := clock.Now(), clock.Now(); !first.Equal(second) {
		t.Errorf("Mock clock should return consistent time: first=%v, second=%v", first, second)
	}
}

func TestMockClock_Advance(t *testing.T) {
	initialTime := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
	clock := &MockClock{CurrentTime: initialTime}

	testCases := []struct {
		name     string
		duration time.Duration
		expected time.Time
	}{
		{
			name:     "advance by 15 milliseconds",
			duration: 15 * time.Millisecond,
			expected: initialTime.Add(15 * time.Millisecond),
		},
		{
			name:     "advance by 5 seconds more",
			duration: 5 * time.Second,
			expected: initialTime.Add(5*time.Second + 15*time.Millisecond),
		},
		{
			name:     "advance by 1 microsecond",
			duration: 1 * time.Microsecond,
			expected: initialTime.Add(5*time.Second + 15*time.Millisecond + 1*time.Microsecond),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clock.Advance(tc.duration)
			if now := clock.Now(); !now.Equal(tc.expected) {
				t.Errorf("Expected %v, got %v", tc.expected, now)
			}
		})
	}
}

func TestClock_Interface_Compliance(t *testing.T) {
	var _ Clock = RealClock{}
	var _ Clock = &MockClock{}
}

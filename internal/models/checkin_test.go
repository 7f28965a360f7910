package models

import (
	"testing"
)

func TestGateScan(t *testing.T) {
	testCases := []struct {
		status  CheckinStatus
		wantErr error
	}{
		{CheckinActive, nil},
		{CheckinDisabled, ErrCheckinDisabled},
		{CheckinFinished, ErrCheckinFinished},
		{CheckinStatus(9), ErrCheckinDisabled},
	}

	for _, tc := range testCases {
		t.Run(tc.status.String(), func(t *testing.T) {
			if err := tc.status.GateScan(); err != tc.wantErr {
				t.Errorf("GateScan() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestCheckinStatusString(t *testing.T) {
	testCases := []struct {
		status   CheckinStatus
		expected string
	}{
		{CheckinDisabled, "disabled"},
		{CheckinActive, "active"},
		{CheckinFinished, "finished"},
		{CheckinStatus(42), "unknown"},
	}
	for _, tc := range testCases {
		if got := tc.status.String(); got != tc.expected {
			t.Errorf("CheckinStatus(%d).String() = %q, want %q", tc.status, got, tc.expected)
		}
	}
}

func TestScoreRecordTotal(t *testing.T) {
	record := &ScoreRecord{
		Questions: map[string]float64{"1": 5, "2": 7.5, "3": 0},
	}
	if got := record.Total(); got != 12.5 {
		t.Errorf("Total() = %v, want 12.5", got)
	}

	empty := &ScoreRecord{}
	if got := empty.Total(); got != 0 {
		t.Errorf("Total() on empty record = %v, want 0", got)
	}
}

func TestNewCheckinStartsActive(t *testing.T) {
	checkin, err := NewCheckin("ci1", "c1", "2025-09-01", "CODE42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if checkin.Status != CheckinActive {
		t.Errorf("new check-in status = %v, want active", checkin.Status)
	}
}

func TestNewCheckinValidation(t *testing.T) {
	if _, err := NewCheckin("", "c1", "2025-09-01", ""); err == nil {
		t.Error("expected error for missing id")
	}
	if _, err := NewCheckin("ci1", "", "2025-09-01", ""); err == nil {
		t.Error("expected error for missing classroom id")
	}
	if _, err := NewCheckin("ci1", "c1", "", ""); err == nil {
		t.Error("expected error for missing date")
	}
}

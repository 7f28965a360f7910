package qr

import (
	"testing"
)

func TestParseRegister(t *testing.T) {
	testCases := []struct {
		name      string
		payload   string
		expected  string
		expectErr bool
	}{
		{"full url", "https://app.example.com/register-classroom/abc123", "abc123", false},
		{"trailing base path", "https://app.example.com/x/y/register-classroom/abc123", "abc123", false},
		{"bare path", "/register-classroom/abc123", "abc123", false},
		{"wrong marker", "https://app.example.com/join-classroom/abc123", "", true},
		{"missing id", "https://app.example.com/register-classroom/", "", true},
		{"checkin url", "https://app.example.com/student-checkin/abc123/def456", "", true},
		{"garbage", "not a url at all", "", true},
		{"empty", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRegister(tc.payload)
			if tc.expectErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ClassroomID != tc.expected {
				t.Errorf("ClassroomID = %q, want %q", got.ClassroomID, tc.expected)
			}
		})
	}
}

func TestParseCheckin(t *testing.T) {
	testCases := []struct {
		name          string
		payload       string
		wantClassroom string
		wantCheckin   string
		expectErr     bool
	}{
		{"full url", "https://app.example.com/student-checkin/abc123/def456", "abc123", "def456", false},
		{"bare path", "/student-checkin/abc123/def456", "abc123", "def456", false},
		{"missing checkin id", "https://app.example.com/student-checkin/abc123", "", "", true},
		{"register url", "https://app.example.com/register-classroom/abc123", "", "", true},
		{"wrong marker", "https://app.example.com/teacher-checkin/abc123/def456", "", "", true},
		{"empty", "", "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCheckin(tc.payload)
			if tc.expectErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.ClassroomID != tc.wantClassroom || got.CheckinID != tc.wantCheckin {
				t.Errorf("parsed (%q, %q), want (%q, %q)",
					got.ClassroomID, got.CheckinID, tc.wantClassroom, tc.wantCheckin)
			}
		})
	}
}

func TestBuildParseRoundTrip(t *testing.T) {
	base := "https://app.example.com"

	reg := BuildRegisterURL(base, "c-77")
	parsedReg, err := ParseRegister(reg)
	if err != nil {
		t.Fatalf("ParseRegister(%q): %v", reg, err)
	}
	if parsedReg.ClassroomID != "c-77" {
		t.Errorf("round trip classroom id = %q, want c-77", parsedReg.ClassroomID)
	}

	chk := BuildCheckinURL(base+"/", "c-77", "ci-9")
	parsedChk, err := ParseCheckin(chk)
	if err != nil {
		t.Fatalf("ParseCheckin(%q): %v", chk, err)
	}
	if parsedChk.ClassroomID != "c-77" || parsedChk.CheckinID != "ci-9" {
		t.Errorf("round trip ids = (%q, %q), want (c-77, ci-9)", parsedChk.ClassroomID, parsedChk.CheckinID)
	}
}

func TestPNGSizeClamp(t *testing.T) {
	png, err := PNG("https://app.example.com/register-classroom/abc", 0)
	if err != nil {
		t.Fatalf("PNG: %v", err)
	}
	if len(png) == 0 {
		t.Error("expected PNG bytes for default size")
	}

	if _, err := PNG("https://app.example.com/register-classroom/abc", 10_000); err != nil {
		t.Errorf("oversized request should be clamped, got error %v", err)
	}
}

package core

import (
	"regexp"
	"testing"
)

func TestClientVersion(t *testing.T) {
	if !regexp.MustCompile(`^\d+\.\d+\.\d+$`).MatchString(ClientVersion()) {
		t.Errorf("ClientVersion() = %q, want semver", ClientVersion())
	}
}

func TestParseVersionDate(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"2018-07-10", false},
		{"2018-09-20", false},
		{"2018-02-30", true},
		{"20180710", true},
		{"", true},
	}
	for _, tt := range tests {
		d, err := ParseVersionDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseVersionDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && d.String() != tt.in {
			t.Errorf("String() = %q, want %q", d.String(), tt.in)
		}
	}
}

func TestVersionDate_Compare(t *testing.T) {
	older := MustParseVersionDate("2017-05-26")
	newer := MustParseVersionDate("2018-07-10")
	if !older.Before(newer) || newer.Before(older) {
		t.Error("Before() ordering is wrong")
	}
	if older.Compare(newer) != -1 || newer.Compare(older) != 1 || newer.Compare(MustParseVersionDate("2018-07-10")) != 0 {
		t.Error("Compare() ordering is wrong")
	}
	// month 10 must sort after month 9
	if !MustParseVersionDate("2018-09-30").Before(MustParseVersionDate("2018-10-01")) {
		t.Error("Compare() treats months lexically")
	}
}

func TestMustParseVersionDate_Panics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	MustParseVersionDate("not-a-date")
}

package dateutil

import (
	"testing"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		day     string
		wantErr bool
	}{
		{
			name:    "valid date",
			day:     "2024-06-03",
			wantErr: false,
		},
		{
			name:    "leap day",
			day:     "2024-02-29",
			wantErr: false,
		},
		{
			name:    "empty string",
			day:     "",
			wantErr: true,
		},
		{
			name:    "wrong separator",
			day:     "2024/06/03",
			wantErr: true,
		},
		{
			name:    "missing zero padding",
			day:     "2024-6-3",
			wantErr: true,
		},
		{
			name:    "nonexistent day",
			day:     "2023-02-29",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDay(tt.day)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDay(%q) error = %v, wantErr %v", tt.day, err, tt.wantErr)
			}
		})
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name    string
		a       string
		b       string
		want    int
		wantErr bool
	}{
		{
			name: "same day",
			a:    "2024-06-03",
			b:    "2024-06-03",
			want: 0,
		},
		{
			name: "adjacent days",
			a:    "2024-06-03",
			b:    "2024-06-04",
			want: 1,
		},
		{
			name: "order independent",
			a:    "2024-06-04",
			b:    "2024-06-03",
			want: 1,
		},
		{
			name: "across month boundary",
			a:    "2024-05-30",
			b:    "2024-06-02",
			want: 3,
		},
		{
			name: "across leap day",
			a:    "2024-02-28",
			b:    "2024-03-01",
			want: 2,
		},
		{
			name: "across year boundary",
			a:    "2023-12-31",
			b:    "2024-01-01",
			want: 1,
		},
		{
			name:    "malformed first argument",
			a:       "yesterday",
			b:       "2024-06-03",
			wantErr: true,
		},
		{
			name:    "malformed second argument",
			a:       "2024-06-03",
			b:       "soon",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysBetween(tt.a, tt.b)
			if (err != nil) != tt.wantErr {
				t.Errorf("DaysBetween(%q, %q) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
				return
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("DaysBetween(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLastNDays(t *testing.T) {
	got, err := LastNDays(7, "2024-06-03")
	if err != nil {
		t.Fatalf("LastNDays() error = %v", err)
	}
	want := []string{
		"2024-05-28", "2024-05-29", "2024-05-30", "2024-05-31",
		"2024-06-01", "2024-06-02", "2024-06-03",
	}
	if len(got) != len(want) {
		t.Fatalf("LastNDays() returned %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LastNDays()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLastNDaysInvalid(t *testing.T) {
	if _, err := LastNDays(0, "2024-06-03"); err == nil {
		t.Error("LastNDays(0) expected error, got nil")
	}
	if _, err := LastNDays(7, "not-a-date"); err == nil {
		t.Error("LastNDays with malformed today expected error, got nil")
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		day  string
		n    int
		want string
	}{
		{
			name: "forward across month",
			day:  "2024-05-31",
			n:    1,
			want: "2024-06-01",
		},
		{
			name: "backward",
			day:  "2024-06-03",
			n:    -3,
			want: "2024-05-31",
		},
		{
			name: "zero",
			day:  "2024-06-03",
			n:    0,
			want: "2024-06-03",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.day, tt.n)
			if err != nil {
				t.Fatalf("AddDays() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.day, tt.n, got, tt.want)
			}
		})
	}
}

func TestWeekday(t *testing.T) {
	got, err := Weekday("2024-06-03")
	if err != nil {
		t.Fatalf("Weekday() error = %v", err)
	}
	if got != "Mon" {
		t.Errorf("Weekday(2024-06-03) = %q, want Mon", got)
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "valid timezone America/New_York",
			timezone: "America/New_York",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestToday(t *testing.T) {
	if !ValidDay(Today()) {
		t.Errorf("Today() = %q is not a valid YYYY-MM-DD date", Today())
	}
}

package streak

import (
	"testing"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		today string
		want  int
	}{
		{
			name:  "empty history",
			dates: nil,
			today: "2024-06-03",
			want:  0,
		},
		{
			name:  "three consecutive days ending today",
			dates: []string{"2024-06-01", "2024-06-02", "2024-06-03"},
			today: "2024-06-03",
			want:  3,
		},
		{
			name:  "streak survives when last completion was yesterday",
			dates: []string{"2024-06-01", "2024-06-02"},
			today: "2024-06-03",
			want:  2,
		},
		{
			name:  "broken by two day absence",
			dates: []string{"2024-06-01", "2024-06-02"},
			today: "2024-06-04",
			want:  0,
		},
		{
			name:  "gap in history stops the walk",
			dates: []string{"2024-06-01", "2024-06-03", "2024-06-04", "2024-06-05"},
			today: "2024-06-05",
			want:  3,
		},
		{
			name:  "single completion today",
			dates: []string{"2024-06-03"},
			today: "2024-06-03",
			want:  1,
		},
		{
			name:  "unsorted input",
			dates: []string{"2024-06-03", "2024-06-01", "2024-06-02"},
			today: "2024-06-03",
			want:  3,
		},
		{
			name:  "crosses month boundary",
			dates: []string{"2024-05-30", "2024-05-31", "2024-06-01"},
			today: "2024-06-01",
			want:  3,
		},
		{
			name:  "malformed entries are ignored",
			dates: []string{"garbage", "2024-06-02", "2024-06-03"},
			today: "2024-06-03",
			want:  2,
		},
		{
			name:  "only malformed entries",
			dates: []string{"garbage", "also-garbage"},
			today: "2024-06-03",
			want:  0,
		},
		{
			name:  "malformed today",
			dates: []string{"2024-06-03"},
			today: "whenever",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Calculate(tt.dates, tt.today); got != tt.want {
				t.Errorf("Calculate(%v, %q) = %d, want %d", tt.dates, tt.today, got, tt.want)
			}
		})
	}
}

func TestCalculateDoesNotMutateInput(t *testing.T) {
	dates := []string{"2024-06-03", "2024-06-01", "2024-06-02"}
	Calculate(dates, "2024-06-03")
	want := []string{"2024-06-03", "2024-06-01", "2024-06-02"}
	for i := range want {
		if dates[i] != want[i] {
			t.Fatalf("input slice was reordered: %v", dates)
		}
	}
}

func TestLongest(t *testing.T) {
	tests := []struct {
		name  string
		dates []string
		want  int
	}{
		{
			name:  "empty history",
			dates: nil,
			want:  0,
		},
		{
			name:  "single day",
			dates: []string{"2024-06-01"},
			want:  1,
		},
		{
			name:  "run after a gap wins",
			dates: []string{"2024-06-01", "2024-06-03", "2024-06-04", "2024-06-05"},
			want:  3,
		},
		{
			name:  "earlier run wins",
			dates: []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04", "2024-06-01", "2024-06-02"},
			want:  4,
		},
		{
			name:  "no consecutive days",
			dates: []string{"2024-06-01", "2024-06-03", "2024-06-05"},
			want:  1,
		},
		{
			name:  "unsorted input",
			dates: []string{"2024-06-05", "2024-06-03", "2024-06-04"},
			want:  3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Longest(tt.dates); got != tt.want {
				t.Errorf("Longest(%v) = %d, want %d", tt.dates, got, tt.want)
			}
		})
	}
}

// The current streak can never exceed the historical maximum.
func TestLongestBoundsCalculate(t *testing.T) {
	histories := [][]string{
		nil,
		{"2024-06-03"},
		{"2024-06-01", "2024-06-02", "2024-06-03"},
		{"2024-06-01", "2024-06-03", "2024-06-04", "2024-06-05"},
		{"2024-05-01", "2024-05-02", "2024-06-02", "2024-06-03"},
	}
	for _, dates := range histories {
		cur := Calculate(dates, "2024-06-03")
		max := Longest(dates)
		if cur > max {
			t.Errorf("Calculate(%v) = %d exceeds Longest = %d", dates, cur, max)
		}
	}
}

func TestCompletedOn(t *testing.T) {
	dates := []string{"2024-06-01", "2024-06-03"}
	if !CompletedOn(dates, "2024-06-03") {
		t.Error("CompletedOn() = false for a present date")
	}
	if CompletedOn(dates, "2024-06-02") {
		t.Error("CompletedOn() = true for an absent date")
	}
	if CompletedOn(nil, "2024-06-02") {
		t.Error("CompletedOn(nil) = true")
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name      string
		dates     []string
		totalDays int
		want      int
	}{
		{
			name:      "two of ten days",
			dates:     []string{"2024-06-01", "2024-06-02"},
			totalDays: 10,
			want:      20,
		},
		{
			name:      "full coverage",
			dates:     []string{"2024-06-01", "2024-06-02"},
			totalDays: 2,
			want:      100,
		},
		{
			name:      "rounds to nearest",
			dates:     []string{"2024-06-01"},
			totalDays: 3,
			want:      33,
		},
		{
			name:      "rounds up",
			dates:     []string{"2024-06-01", "2024-06-02"},
			totalDays: 3,
			want:      67,
		},
		{
			name:      "zero total days",
			dates:     []string{"2024-06-01"},
			totalDays: 0,
			want:      0,
		},
		{
			name:      "empty dates",
			dates:     nil,
			totalDays: 7,
			want:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompletionRate(tt.dates, tt.totalDays); got != tt.want {
				t.Errorf("CompletionRate(%v, %d) = %d, want %d", tt.dates, tt.totalDays, got, tt.want)
			}
		})
	}
}

func TestWeeklyCompletion(t *testing.T) {
	dates := []string{"2024-06-01", "2024-06-03"}
	got := WeeklyCompletion(dates, "2024-06-03")
	if len(got) != 7 {
		t.Fatalf("WeeklyCompletion() returned %d days, want 7", len(got))
	}
	if got[0].Day != "2024-05-28" || got[6].Day != "2024-06-03" {
		t.Errorf("window = %s..%s, want 2024-05-28..2024-06-03", got[0].Day, got[6].Day)
	}
	if got[6].Weekday != "Mon" {
		t.Errorf("weekday for 2024-06-03 = %q, want Mon", got[6].Weekday)
	}
	completed := 0
	for _, ds := range got {
		if ds.Completed {
			completed++
		}
	}
	if completed != 2 {
		t.Errorf("completed count = %d, want 2", completed)
	}
	if !got[6].Completed {
		t.Error("today should be marked completed")
	}
	if got[5].Completed {
		t.Error("2024-06-02 should not be marked completed")
	}
}

func TestWeeklyCompletionMalformedToday(t *testing.T) {
	if got := WeeklyCompletion([]string{"2024-06-01"}, "nope"); got != nil {
		t.Errorf("WeeklyCompletion with malformed today = %v, want nil", got)
	}
}

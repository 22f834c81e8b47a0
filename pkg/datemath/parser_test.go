package datemath_test

import (
	"testing"
	"time"

	"schedule-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		relative string
		want     time.Time
		wantErr  bool
	}{
		{
			name:     "Today",
			relative: "today",
			want:     startOfBase,
		},
		{
			name:     "Tomorrow",
			relative: "tomorrow",
			want:     startOfBase.AddDate(0, 0, 1),
		},
		{
			name:     "Yesterday",
			relative: "yesterday",
			want:     startOfBase.AddDate(0, 0, -1),
		},
		{
			name:     "In 3 days",
			relative: "in 3 days",
			want:     startOfBase.AddDate(0, 0, 3),
		},
		{
			name:     "In 2 weeks",
			relative: "in 2 weeks",
			want:     startOfBase.AddDate(0, 0, 14),
		},
		{
			name:     "In 1 month",
			relative: "in 1 month",
			want:     startOfBase.AddDate(0, 1, 0),
		},
		{
			name:     "Invalid duration pattern",
			relative: "in a few days",
			want:     baseTime,
			wantErr:  true,
		},
		{
			name:     "Next Monday (from Wed)",
			relative: "next monday",
			want:     startOfBase.AddDate(0, 0, 5), // Wed(3) to Mon(1) is +5 days
		},
		{
			name:     "Next Wednesday (from Wed)",
			relative: "next wednesday",
			want:     startOfBase.AddDate(0, 0, 7), // 1 week later
		},
		{
			name:     "Unknown fallback",
			relative: "some random day",
			want:     startOfBase, // falls back to startOfDay(base)
		},
		{
			name:     "Invalid Next Weekday",
			relative: "next funday",
			want:     baseTime, // Error returns baseTime
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		day     string
		want    time.Time
		wantErr bool
	}{
		{name: "Empty means today", day: "", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{name: "ISO date", day: "2024-06-12", want: time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC)},
		{name: "Relative word", day: "Tomorrow", want: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
		{name: "Bad weekday", day: "next someday", want: baseTime, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.ParseDay(tt.day, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseDay() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayRange(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Ho_Chi_Minh")
	loc := parser.Location()
	// 20:00 UTC on May 1 is already May 2 in Ho Chi Minh City.
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	start, end := parser.DayRange(base)
	if want := time.Date(2024, 5, 2, 0, 0, 0, 0, loc); !start.Equal(want) {
		t.Errorf("DayRange() start = %v, want %v", start, want)
	}
	if want := time.Date(2024, 5, 3, 0, 0, 0, 0, loc); !end.Equal(want) {
		t.Errorf("DayRange() end = %v, want %v", end, want)
	}
}

func TestClocks(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	if got := datemath.FixedClock(fixed).Now(); !got.Equal(fixed) {
		t.Errorf("FixedClock.Now() = %v, want %v", got, fixed)
	}

	loc, err := datemath.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("LoadLocation() error: %v", err)
	}
	if got := (datemath.SystemClock{Location: loc}).Now().Location(); got != loc {
		t.Errorf("SystemClock.Now() location = %v, want %v", got, loc)
	}

	again, _ := datemath.LoadLocation("Asia/Ho_Chi_Minh")
	if again != loc {
		t.Errorf("LoadLocation() should return the cached location")
	}
}

package datemath_test

import (
	"testing"
	"time"

	"butler-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Europe/London")
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
			name:     "Absolute slash date",
			relative: "5/20",
			want:     startOfBase.AddDate(0, 0, 19),
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

func TestEndOfDay(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 5, 1, 23, 59, 59, 0, time.UTC)

	got := parser.EndOfDay(base)
	if !got.Equal(want) {
		t.Errorf("EndOfDay() got = %v, want %v", got, want)
	}
}

func TestResolveDate(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	day := func(m time.Month, d, y int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name   string
		token  string
		want   time.Time
		wantOK bool
	}{
		{name: "today", token: "today", want: day(time.May, 1, 2024), wantOK: true},
		{name: "tomorrow mixed case", token: "  Tomorrow ", want: day(time.May, 2, 2024), wantOK: true},
		{name: "yesterday", token: "yesterday", want: day(time.April, 30, 2024), wantOK: true},
		{name: "bare earlier weekday stays in week", token: "monday", want: day(time.April, 29, 2024), wantOK: true},
		{name: "bare later weekday", token: "friday", want: day(time.May, 3, 2024), wantOK: true},
		{name: "bare sunday is week start", token: "sunday", want: day(time.April, 28, 2024), wantOK: true},
		{name: "this same weekday", token: "this wednesday", want: day(time.May, 1, 2024), wantOK: true},
		{name: "this earlier weekday", token: "this tuesday", want: day(time.April, 30, 2024), wantOK: true},
		{name: "next same weekday", token: "next wednesday", want: day(time.May, 8, 2024), wantOK: true},
		{name: "next later weekday", token: "next friday", want: day(time.May, 3, 2024), wantOK: true},
		{name: "next earlier weekday", token: "next monday", want: day(time.May, 6, 2024), wantOK: true},
		{name: "month day", token: "6/15", want: day(time.June, 15, 2024), wantOK: true},
		{name: "month day full year", token: "1/2/2026", want: day(time.January, 2, 2026), wantOK: true},
		{name: "month day short year", token: "12/25/25", want: day(time.December, 25, 2025), wantOK: true},
		{name: "iso date", token: "2024-07-04", want: day(time.July, 4, 2024), wantOK: true},
		{name: "in days", token: "in 3 days", want: day(time.May, 4, 2024), wantOK: true},
		{name: "impossible date", token: "2/30", wantOK: false},
		{name: "month out of range", token: "13/1", wantOK: false},
		{name: "time is not a date", token: "3pm", wantOK: false},
		{name: "gibberish", token: "someday", wantOK: false},
		{name: "empty", token: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ResolveDate(tt.token, now)
			if ok != tt.wantOK {
				t.Fatalf("ResolveDate(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ResolveDate(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolveDateNextIsStrictlyFuture(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	names := []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

	start := time.Date(2024, 12, 25, 23, 59, 0, 0, time.UTC)
	for i := 0; i < 14; i++ {
		now := start.AddDate(0, 0, i)
		for _, name := range names {
			got, ok := parser.ResolveDate("next "+name, now)
			if !ok {
				t.Fatalf("next %s not resolved", name)
			}
			if !got.After(now) {
				t.Errorf("next %s from %v = %v, want strictly later", name, now, got)
			}
			if got.Sub(parser.StartOfDay(now)) > 7*24*time.Hour {
				t.Errorf("next %s from %v = %v, more than a week away", name, now, got)
			}
		}
	}
}

func TestResolveTime(t *testing.T) {
	tests := []struct {
		token  string
		want   datemath.TimeOfDay
		wantOK bool
	}{
		{token: "2:30pm", want: datemath.TimeOfDay{Hour: 14, Minute: 30}, wantOK: true},
		{token: "12am", want: datemath.TimeOfDay{Hour: 0, Minute: 0}, wantOK: true},
		{token: "12pm", want: datemath.TimeOfDay{Hour: 12, Minute: 0}, wantOK: true},
		{token: "3pm", want: datemath.TimeOfDay{Hour: 15}, wantOK: true},
		{token: "7 a.m.", want: datemath.TimeOfDay{Hour: 7}, wantOK: true},
		{token: "11:05 PM", want: datemath.TimeOfDay{Hour: 23, Minute: 5}, wantOK: true},
		{token: "14:00", want: datemath.TimeOfDay{Hour: 14}, wantOK: true},
		{token: "9", want: datemath.TimeOfDay{Hour: 9}, wantOK: true},
		{token: "noon", want: datemath.TimeOfDay{Hour: 12}, wantOK: true},
		{token: "midnight", want: datemath.TimeOfDay{}, wantOK: true},
		{token: "13pm", wantOK: false},
		{token: "0am", wantOK: false},
		{token: "25", wantOK: false},
		{token: "10:75", wantOK: false},
		{token: "tomorrow", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := datemath.ResolveTime(tt.token)
			if ok != tt.wantOK {
				t.Fatalf("ResolveTime(%q) ok = %v, want %v", tt.token, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ResolveTime(%q) = %+v, want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]datemath.TokenKind{
		"today":         datemath.KindToday,
		"Tomorrow":      datemath.KindTomorrow,
		"yesterday":     datemath.KindYesterday,
		"friday":        datemath.KindWeekday,
		"next  monday":  datemath.KindNextWeekday,
		"this sunday":   datemath.KindThisWeekday,
		"3/4":           datemath.KindAbsoluteDate,
		"2024-01-31":    datemath.KindAbsoluteDate,
		"4:15pm":        datemath.KindAbsoluteTime,
		"noon":          datemath.KindAbsoluteTime,
		"in 2 weeks":    datemath.KindRelativeDuration,
		"next week":     datemath.KindUnknown,
		"the day after": datemath.KindUnknown,
	}

	for token, want := range tests {
		if got := datemath.Classify(token); got != want {
			t.Errorf("Classify(%q) = %v, want %v", token, got, want)
		}
	}
}

func TestTimeOfDay(t *testing.T) {
	start := datemath.TimeOfDay{Hour: 23, Minute: 30}
	if got := start.Add(45 * time.Minute); got != (datemath.TimeOfDay{Hour: 0, Minute: 15}) {
		t.Errorf("Add wrap = %v", got)
	}
	if got := start.String(); got != "23:30" {
		t.Errorf("String() = %q", got)
	}
	if got := start.Minutes(); got != 1410 {
		t.Errorf("Minutes() = %d", got)
	}

	if _, ok := datemath.ParseClock("3pm"); ok {
		t.Errorf("ParseClock accepted a meridiem token")
	}
	if got, ok := datemath.ParseClock("09:05"); !ok || got != (datemath.TimeOfDay{Hour: 9, Minute: 5}) {
		t.Errorf("ParseClock(09:05) = %v, %v", got, ok)
	}
}

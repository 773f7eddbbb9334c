package timestamp

import (
	"errors"
	"math"
	"strconv"
	"testing"
)

// --- Tests pour Parse ------------------------------------------------------

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantSign  Sign
		wantH     int
		wantM     int
		wantS     int
		wantStr   string
		wantTotal int
	}{
		{"sans type", "00:01:30", SignAbsolute, 0, 1, 30, "00:01:30", 90},
		{"positif", "+01:00:05", SignPositive, 1, 0, 5, "+01:00:05", 3605},
		{"négatif", "-00:00:10", SignNegative, 0, 0, 10, "-00:00:10", 10},
		{"type explicite |", "|00:00:10", SignAbsolute, 0, 0, 10, "00:00:10", 10},
		{"chiffres non paddés", "1:2:3", SignAbsolute, 1, 2, 3, "01:02:03", 3723},
		{"minutes hors plage", "00:75:00", SignAbsolute, 0, 75, 0, "00:75:00", 4500},
		{"heures sur 3 chiffres", "100:00:00", SignAbsolute, 100, 0, 0, "100:00:00", 360000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) error: %v", tc.in, err)
			}
			if ts.Sign() != tc.wantSign {
				t.Errorf("Sign = %q; want %q", ts.Sign(), tc.wantSign)
			}
			if ts.Hour() != tc.wantH || ts.Minute() != tc.wantM || ts.Second() != tc.wantS {
				t.Errorf("fields = %d:%d:%d; want %d:%d:%d", ts.Hour(), ts.Minute(), ts.Second(), tc.wantH, tc.wantM, tc.wantS)
			}
			if ts.String() != tc.wantStr {
				t.Errorf("String = %q; want %q", ts.String(), tc.wantStr)
			}
			if ts.TotalSeconds() != tc.wantTotal {
				t.Errorf("TotalSeconds = %d; want %d", ts.TotalSeconds(), tc.wantTotal)
			}
			if ts.Orientation() != Positive {
				t.Errorf("Orientation = %q; want positive", ts.Orientation())
			}
		})
	}
}

func TestParse_InvalidFormat(t *testing.T) {
	for _, in := range []string{
		"",
		"+",
		"00:00",
		"00:00:00:00",
		"aa:bb:cc",
		"00:-1:00",
		"00::00",
		"00:00:1.5",
		" 00:00:10",
		"--00:00:10",
	} {
		t.Run(in, func(t *testing.T) {
			if _, err := Parse(in); !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("Parse(%q) err = %v; want ErrInvalidFormat", in, err)
			}
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, in := range []string{"00:00:00", "+00:10:00", "-12:34:56", "99:59:59"} {
		ts := MustParse(in)
		back, err := Parse(ts.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", ts.String(), err)
		}
		if !back.Equal(ts) || back.String() != ts.String() {
			t.Errorf("round trip %q -> %q", in, back.String())
		}
	}
}

func TestMustParse_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse should panic on invalid input")
		}
	}()
	MustParse("nope")
}

// --- Tests pour New / FromSeconds -----------------------------------------

func TestNew(t *testing.T) {
	ts, err := New(SignNegative, 0, 2, 5)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if ts.String() != "-00:02:05" {
		t.Errorf("String = %q", ts.String())
	}

	if _, err := New(SignAbsolute, 0, -1, 0); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("negative minute: err = %v", err)
	}
	if _, err := New(Sign('x'), 0, 0, 0); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("unknown sign: err = %v", err)
	}
}

func TestFromSeconds(t *testing.T) {
	tests := []struct {
		in          int
		wantStr     string
		orientation Orientation
	}{
		{0, "00:00:00", Positive},
		{59, "00:00:59", Positive},
		{3725, "01:02:05", Positive},
		{-3725, "01:02:05", Negative},
		{-1, "00:00:01", Negative},
	}
	for _, tc := range tests {
		ts := FromSeconds(tc.in)
		if ts.String() != tc.wantStr {
			t.Errorf("FromSeconds(%d) = %q; want %q", tc.in, ts.String(), tc.wantStr)
		}
		if ts.Orientation() != tc.orientation {
			t.Errorf("FromSeconds(%d).Orientation = %q; want %q", tc.in, ts.Orientation(), tc.orientation)
		}
		if ts.Sign() != SignAbsolute {
			t.Errorf("FromSeconds(%d).Sign = %q; want '|'", tc.in, ts.Sign())
		}
		abs := tc.in
		if abs < 0 {
			abs = -abs
		}
		if ts.TotalSeconds() != abs {
			t.Errorf("FromSeconds(%d).TotalSeconds = %d; want %d", tc.in, ts.TotalSeconds(), abs)
		}
	}
}

func TestParse_TotalMustFitInt(t *testing.T) {
	for _, in := range []string{
		"99999999999999999:00:00",
		"00:999999999999999999:00",
		"00:01:" + strconv.Itoa(math.MaxInt),
		strconv.Itoa(math.MaxInt/3600+1) + ":00:00",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) err = %v; want ErrInvalidFormat", in, err)
		}
	}

	ts, err := Parse("00:00:" + strconv.Itoa(math.MaxInt))
	if err != nil {
		t.Fatalf("Parse(MaxInt seconds) error: %v", err)
	}
	if ts.TotalSeconds() != math.MaxInt {
		t.Errorf("TotalSeconds = %d; want MaxInt", ts.TotalSeconds())
	}

	if _, err := New(SignAbsolute, math.MaxInt, 0, 0); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("New(MaxInt hours) err = %v; want ErrInvalidFormat", err)
	}
}

func TestFromSeconds_MinInt(t *testing.T) {
	ts := FromSeconds(math.MinInt)
	if ts.Orientation() != Negative {
		t.Errorf("Orientation = %q; want negative", ts.Orientation())
	}
	if ts.Hour() < 0 || ts.Minute() < 0 || ts.Second() < 0 {
		t.Errorf("negative field in %+v", ts)
	}
	if ts.TotalSeconds() != math.MaxInt {
		t.Errorf("TotalSeconds = %d; want MaxInt", ts.TotalSeconds())
	}
}

func TestZeroValue(t *testing.T) {
	var ts Timestamp
	if ts.String() != "00:00:00" || ts.Sign() != SignAbsolute || ts.Orientation() != Positive {
		t.Fatalf("zero value = %q sign %q orientation %q", ts.String(), ts.Sign(), ts.Orientation())
	}
}

package repositories

import (
	"reflect"
	"testing"
)

func TestClosedDaysRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		days    []int
		encoded string
	}{
		{"none", nil, ""},
		{"single", []int{1}, "1"},
		{"several", []int{0, 2, 6}, "0,2,6"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := encodeClosedDays(tc.days)
			if got != tc.encoded {
				t.Fatalf("encode(%v) = %q, want %q", tc.days, got, tc.encoded)
			}
			back, err := decodeClosedDays(got)
			if err != nil {
				t.Fatalf("decode(%q): %v", got, err)
			}
			if !reflect.DeepEqual(back, tc.days) {
				t.Fatalf("decode(%q) = %v, want %v", got, back, tc.days)
			}
		})
	}
}

func TestDecodeClosedDaysToleratesWhitespace(t *testing.T) {
	got, err := decodeClosedDays(" 0 , 2 ")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, []int{0, 2}) {
		t.Fatalf("decode = %v, want [0 2]", got)
	}
}

func TestDecodeClosedDaysRejectsBadInput(t *testing.T) {
	if _, err := decodeClosedDays("monday"); err == nil {
		t.Fatal("expected error for non-numeric weekday")
	}
	if _, err := decodeClosedDays("7"); err == nil {
		t.Fatal("expected error for weekday out of range")
	}
	if _, err := decodeClosedDays("-1"); err == nil {
		t.Fatal("expected error for negative weekday")
	}
}

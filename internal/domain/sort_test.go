package domain

import (
	"errors"
	"testing"
)

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SortKey
		wantErr bool
	}{
		{"", SortByName, false},
		{"name", SortByName, false},
		{" Size ", SortBySize, false},
		{"DATE", SortByDate, false},
		{"type", SortByType, false},
		{"owner", SortByName, true},
	}
	for _, tt := range tests {
		got, err := ParseSortKey(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSortKey(%q) error = %v", tt.in, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidSortKey) {
			t.Errorf("ParseSortKey(%q) error = %v, want ErrInvalidSortKey", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseSortKey(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSortKeyText(t *testing.T) {
	for _, k := range []SortKey{SortByName, SortBySize, SortByDate, SortByType} {
		text, _ := k.MarshalText()
		var back SortKey
		if err := back.UnmarshalText(text); err != nil || back != k {
			t.Errorf("round trip %v = %v, %v", k, back, err)
		}
	}
	if got := SortKey(42).String(); got != "SortKey(42)" {
		t.Errorf("String() = %q", got)
	}
}

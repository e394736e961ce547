package noise

import (
	"errors"
	"testing"
)

func TestCheckPeriod(t *testing.T) {
	tests := []struct {
		period int
		want   error
	}{
		{period: 1},
		{period: 2},
		{period: 64},
		{period: 256},
		{period: 512},
		{period: 0, want: ErrInvalidPeriod},
		{period: -4, want: ErrInvalidPeriod},
		{period: 3, want: ErrAliasedPeriod},
		{period: 100, want: ErrAliasedPeriod},
		{period: 300, want: ErrAliasedPeriod},
	}

	for _, tt := range tests {
		err := CheckPeriod(tt.period)
		if tt.want == nil {
			if err != nil {
				t.Fatalf("CheckPeriod(%d) = %v, want nil", tt.period, err)
			}
			continue
		}
		if !errors.Is(err, tt.want) {
			t.Fatalf("CheckPeriod(%d) = %v, want %v", tt.period, err, tt.want)
		}
	}
}

func TestCheckOctaves(t *testing.T) {
	if err := CheckOctaves(1); err != nil {
		t.Fatalf("CheckOctaves(1) = %v", err)
	}
	if err := CheckOctaves(0); !errors.Is(err, ErrInvalidOctaves) {
		t.Fatalf("CheckOctaves(0) = %v, want ErrInvalidOctaves", err)
	}
}

package carol

import (
	"errors"
	"testing"
)

func TestPair(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		gifts   []string
		wantLen int
		wantErr bool
	}{
		{name: "matched", labels: []string{"first", "second"}, gifts: []string{"A", "B"}, wantLen: 2},
		{name: "more labels", labels: []string{"first", "second"}, gifts: []string{"A"}, wantErr: true},
		{name: "more gifts", labels: []string{"first"}, gifts: []string{"A", "B"}, wantErr: true},
		{name: "empty", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days, err := Pair(tt.labels, tt.gifts)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Fatalf("Pair() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Pair() error = %v", err)
			}
			if len(days) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(days), tt.wantLen)
			}
			for i, d := range days {
				if d.Label != tt.labels[i] || d.Gift != tt.gifts[i] {
					t.Errorf("days[%d] = %+v", i, d)
				}
			}
		})
	}
}

func TestChristmas_ReturnsCopy(t *testing.T) {
	days := Christmas()
	if len(days) != 12 {
		t.Fatalf("len = %d, want 12", len(days))
	}
	days[0].Gift = "changed"
	if Christmas()[0].Gift != "A partridge in a pear tree" {
		t.Error("mutating the returned slice changed the built-in table")
	}
}

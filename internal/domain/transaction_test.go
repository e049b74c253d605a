package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestPlatformFee(t *testing.T) {
	tests := []struct {
		gross string
		want  string
	}{
		{"100", "5"},
		{"250", "12.5"},
		{"50", "2.5"},
		{"1000", "50"},
		{"333.33", "16.67"}, // 16.6665 rounds half away from zero
		{"50.10", "2.51"},   // 2.505 rounds up
	}
	for _, tt := range tests {
		gross := decimal.RequireFromString(tt.gross)
		want := decimal.RequireFromString(tt.want)
		if got := PlatformFee(gross); !got.Equal(want) {
			t.Fatalf("PlatformFee(%s) = %s, want %s", tt.gross, got, want)
		}
	}
}

func TestChannelValid(t *testing.T) {
	if !ChannelMonCash.Valid() || !ChannelNatCash.Valid() {
		t.Fatal("expected MONCASH and NATCASH to be valid")
	}
	if Channel("PAYPAL").Valid() {
		t.Fatal("expected unknown channel to be invalid")
	}
	if Channel("moncash").Valid() {
		t.Fatal("channel comparison is case sensitive")
	}
}

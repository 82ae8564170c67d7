//go:build unit

package output

import (
	"math"
	"testing"
)

func TestFormatCurrency(t *testing.T) {
	got := FormatCurrency(1234.567, "USD")
	want := "$1,234.57"
	if got != want {
		t.Errorf("FormatCurrency(1234.567) = %q, want %q", got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	got := FormatPercentage(12.3456)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(12.3456) = %q, want %q", got, want)
	}
}

func TestFixed2NonFinite(t *testing.T) {
	if got := fixed2(math.Inf(1)); got != "+Inf" {
		t.Errorf("fixed2(+Inf) = %q", got)
	}
	if got := fixed2(0.005); got != "0.01" {
		t.Errorf("fixed2(0.005) = %q", got)
	}
}

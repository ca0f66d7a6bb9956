package screener

import (
	"errors"
	"strings"
	"testing"

	"github.com/finovai/finov/schema"
)

func TestBuildExpr_DefaultFilter(t *testing.T) {
	expr, err := BuildExpr(nil)
	if err != nil {
		t.Fatalf("BuildExpr(nil) failed: %v", err)
	}
	want := `week52_change > 0 and recommendation_key in ["buy", "strong buy", "hold"]`
	if expr != want {
		t.Errorf("default expr mismatch:\n got:  %s\n want: %s", expr, want)
	}
}

func TestBuildExpr_CustomFilter(t *testing.T) {
	expr, err := BuildExpr(&Filter{
		MinMarketCap:       1_000_000_000,
		MinVolume:          30_000,
		RecommendationKeys: []string{"buy", "hold"},
	})
	if err != nil {
		t.Fatalf("BuildExpr failed: %v", err)
	}
	want := `market_cap >= 1000000000 and volume >= 30000 and week52_change >= -0.2 and recommendation_key in ["buy", "hold"]`
	if expr != want {
		t.Errorf("custom expr mismatch:\n got:  %s\n want: %s", expr, want)
	}
}

func TestBuildExpr_CustomFilterKeepsWeek52Floor(t *testing.T) {
	// Even a fully relaxed custom filter must not admit stocks in
	// free-fall.
	expr, err := BuildExpr(&Filter{RecommendationKeys: []string{"sell"}})
	if err != nil {
		t.Fatalf("BuildExpr failed: %v", err)
	}
	if !strings.Contains(expr, "week52_change >= -0.2") {
		t.Errorf("expected week-52 floor in expr, got: %s", expr)
	}
}

func TestBuildExpr_InvalidInput(t *testing.T) {
	for _, tc := range []struct {
		name   string
		filter *Filter
	}{
		{"negative market cap", &Filter{MinMarketCap: -1, RecommendationKeys: []string{"buy"}}},
		{"negative volume", &Filter{MinVolume: -1, RecommendationKeys: []string{"buy"}}},
		{"unknown recommendation key", &Filter{RecommendationKeys: []string{"invalid_key"}}},
		{"no recommendation keys", &Filter{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildExpr(tc.filter)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var ferr *schema.FilterError
			if !errors.As(err, &ferr) {
				t.Errorf("expected FilterError, got %T: %v", err, err)
			}
		})
	}
}

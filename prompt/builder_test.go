package prompt

import (
	"strings"
	"testing"

	"github.com/finovai/finov/profile"
)

func TestBuildAdvisoryPrompt_EmbedsProfileAndRules(t *testing.T) {
	p := profile.Profile{
		Gender:             "Female",
		Age:                42,
		MonthlyIncome:      9500,
		MonthlyExpenditure: 4000,
		CurrentSavings:     120000,
		Objective:          "Retirement Planning",
		DurationYears:      20,
	}

	got := BuildAdvisoryPrompt(p, "Where should my surplus go?")

	for _, want := range []string{
		"- Gender: Female",
		"- Age: 42",
		"- Monthly Income: $9500",
		"- Monthly Expenditure: $4000",
		"- Current Savings: $120000",
		"- Investment Objective: Retirement Planning",
		"- Investment Duration: 20 years",
		"Question: Where should my surplus go?",
		"# Input Validation Checks",
		"Must total exactly 100%",
		"Government Bonds (10-60%)",
		"# Response Restrictions",
		"# Response Format Requirements",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("advisory prompt missing %q", want)
		}
	}
}

func TestBuildStockAnalysisPrompt(t *testing.T) {
	system, user := BuildStockAnalysisPrompt("<CONTEXT>\n... \nMY QUESTION:\n growth stocks")

	if !strings.Contains(system, "financial expert at providing answers about stocks") {
		t.Errorf("unexpected system prompt: %q", system)
	}
	if !strings.Contains(user, "MY QUESTION") {
		t.Errorf("augmented query should pass through unchanged, got: %q", user)
	}
}

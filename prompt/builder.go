package prompt

import (
	"fmt"
	"strconv"

	"github.com/finovai/finov/profile"
)

const advisoryTemplate = `You are a financial advisor with expertise in wealth management.
Based on the user profile and similar investment patterns from our database,
provide a detailed investment allocation strategy.

User Profile:
- Gender: %s
- Age: %d
- Monthly Income: $%s
- Monthly Expenditure: $%s
- Current Savings: $%s
- Investment Objective: %s
- Investment Duration: %d years

Question: %s

%s

%s

%s

%s`

// BuildAdvisoryPrompt merges the validated profile and the (optionally
// context-augmented) question with the fixed rule blocks. Pure
// templating, no side effects.
func BuildAdvisoryPrompt(p profile.Profile, question string) string {
	return fmt.Sprintf(advisoryTemplate,
		p.Gender,
		p.Age,
		money(p.MonthlyIncome),
		money(p.MonthlyExpenditure),
		money(p.CurrentSavings),
		p.Objective,
		p.DurationYears,
		question,
		validationRules,
		portfolioGuidelines,
		restrictions,
		formattingRequirements,
	)
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

const stockAnalysisSystemPrompt = `You are a financial expert at providing answers about stocks. Please answer my question provided.
Analyze the stocks' in detail and explain current performance and potential future trends.
Identify any notable connections or relationships with other stocks (e.g., industry, market correlation, or shared factors).
Provide a concise, actionable insight to guide investment decisions.`

// BuildStockAnalysisPrompt pairs the fixed analysis instructions with the
// augmented query as user content.
func BuildStockAnalysisPrompt(augmentedQuery string) (systemPrompt, userPrompt string) {
	return stockAnalysisSystemPrompt, augmentedQuery
}

package prompt

// Fixed business-rule blocks embedded verbatim into every advisory
// prompt. The allocation ranges and the 100% total are a contract the
// model is instructed to satisfy; the system does not re-verify its
// arithmetic, so downstream consumers must treat the output as advisory.

const validationRules = `# Input Validation Checks
If any of the following conditions are not met, respond with "Invalid Input Data":
- Age must be between 18 and 100
- Monthly Income must be > 0
- Monthly Expenditure must be < Monthly Income
- Current Savings must be >= 0
- Investment Duration must be between 1 and 40 years
- Investment Objective must be one of: ["Wealth Creation", "Retirement Planning",
  "Children's Education", "Emergency Fund", "Tax Saving", "Regular Income"]`

const portfolioGuidelines = `# Portfolio Allocation Guidelines
1. Portfolio Allocation (Must total exactly 100%):
   - Equity/Stocks (0-75%)
   - Mutual Funds (0-50%)
   - Government Bonds (10-60%)
   - Fixed Deposits (5-40%)
   - Gold (0-25%)
   - Others (0-20%)

2. Allocation Justification Based Only On:
   - Risk Profile: Age-based risk capacity (100 - age = max equity exposure)
   - Time Horizon: Short (<5 years), Medium (5-10 years), Long (>10 years)
   - Monthly Surplus: (Income - Expenditure)
   - Conservative allocation if surplus < 20% of income

3. Specific Recommendations:
   - Must include at least one cautionary advice
   - Must specify minimum investment horizon
   - Must mention diversification principle
   - No specific stock or fund recommendations
   - No tax advice unless explicitly qualified`

const restrictions = `# Response Restrictions
- Do not provide advice on:
  * Individual stocks or securities
  * Market timing
  * Tax planning
  * Insurance products
  * Real estate investments
  * Cryptocurrency
  * Forex trading
  * Complex derivatives`

const formattingRequirements = `# Response Format Requirements
- Format response in clear sections with percentages and brief explanations
- All advice must be based on generally accepted investment principles
- Include standard disclaimer about investment risks`

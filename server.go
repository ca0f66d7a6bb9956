package finov

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/finovai/finov/common/logger"
	"github.com/finovai/finov/profile"
	"github.com/finovai/finov/schema"
	"github.com/finovai/finov/screener"
)

const Version = "1.0.0"

// genericErrorNotice hides internal failure detail from end users;
// specifics go to the log only.
const genericErrorNotice = "An error occurred. Please try again later."

// NewServer exposes the two advisory flows as MCP tools. All logic stays
// in the core packages; the handlers only translate arguments and map
// errors to user-facing text.
func NewServer(c *Client) *server.MCPServer {
	s := server.NewMCPServer("finov", Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)

	adviseTool := mcp.NewTool("advise",
		mcp.WithDescription("Answer a financial question for a user profile with a rule-constrained investment allocation strategy."),
		mcp.WithString("question", mcp.Required(), mcp.Description("The user's free-text question.")),
		mcp.WithString("gender", mcp.Required(), mcp.Description("Male, Female or Other.")),
		mcp.WithNumber("age", mcp.Required(), mcp.Description("Age in years, 18-100.")),
		mcp.WithNumber("monthly_income", mcp.Required(), mcp.Description("Monthly income, must be positive.")),
		mcp.WithNumber("monthly_expenditure", mcp.Required(), mcp.Description("Monthly expenditure, less than income.")),
		mcp.WithNumber("current_savings", mcp.Required(), mcp.Description("Current savings, non-negative.")),
		mcp.WithString("objective", mcp.Required(), mcp.Description("Investment objective, e.g. Wealth Creation.")),
		mcp.WithNumber("duration_years", mcp.Required(), mcp.Description("Investment duration in years, 1-40.")),
		mcp.WithString("session_id", mcp.Description("Session id to continue a conversation. Omit to start a new one.")),
	)
	s.AddTool(adviseTool, c.handleAdvise)

	findTool := mcp.NewTool("find_stocks",
		mcp.WithDescription("Retrieve stocks matching a description plus numeric/categorical constraints, with a comparative analysis."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Desired stock characteristics, free text.")),
		mcp.WithNumber("min_market_cap", mcp.Description("Minimum market capitalization.")),
		mcp.WithNumber("min_volume", mcp.Description("Minimum trading volume.")),
		mcp.WithArray("recommendation_keys",
			mcp.Description("Allowed analyst ratings: strong buy, buy, hold, sell, strong sell."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
	s.AddTool(findTool, c.handleFindStocks)

	return s
}

func (c *Client) handleAdvise(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := req.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	p := profile.Profile{
		Gender:             req.GetString("gender", ""),
		Age:                req.GetInt("age", 0),
		MonthlyIncome:      req.GetFloat("monthly_income", 0),
		MonthlyExpenditure: req.GetFloat("monthly_expenditure", 0),
		CurrentSavings:     req.GetFloat("current_savings", 0),
		Objective:          req.GetString("objective", ""),
		DurationYears:      req.GetInt("duration_years", 0),
	}

	sessionID := req.GetString("session_id", "")
	if sessionID == "" {
		sessionID = c.NewSession()
	}

	answer, err := c.Chat(ctx, sessionID, p, question)
	if err != nil {
		return toolError("advise", err), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("session_id: %s\n\n%s", sessionID, answer)), nil
}

func (c *Client) handleFindStocks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var filter *screener.Filter
	args := req.GetArguments()
	_, hasCap := args["min_market_cap"]
	_, hasVol := args["min_volume"]
	_, hasKeys := args["recommendation_keys"]
	if hasCap || hasVol || hasKeys {
		filter = &screener.Filter{
			MinMarketCap:       req.GetFloat("min_market_cap", 0),
			MinVolume:          req.GetFloat("min_volume", 0),
			RecommendationKeys: req.GetStringSlice("recommendation_keys", screener.DefaultRecommendationKeys),
		}
	}

	candidates, analysis, err := c.FindStocks(ctx, query, filter)
	if err != nil {
		return toolError("find_stocks", err), nil
	}

	var b strings.Builder
	for _, cand := range candidates {
		b.WriteString(screener.RenderCandidate(cand))
		b.WriteString("\n")
	}
	b.WriteString("## Analysis\n")
	b.WriteString(analysis)
	return mcp.NewToolResultText(b.String()), nil
}

// toolError maps the error taxonomy to user-facing text. Validation and
// filter problems are actionable for the user and shown as-is; anything
// else is logged and replaced by a generic notice.
func toolError(tool string, err error) *mcp.CallToolResult {
	var verrs schema.ValidationErrors
	if errors.As(err, &verrs) {
		return mcp.NewToolResultError(verrs.Error())
	}
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return mcp.NewToolResultError(verr.Error())
	}
	var ferr *schema.FilterError
	if errors.As(err, &ferr) {
		return mcp.NewToolResultError(ferr.Error())
	}

	logger.Errorf("%s failed: %v", tool, err)
	return mcp.NewToolResultError(genericErrorNotice)
}

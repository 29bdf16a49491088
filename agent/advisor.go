package agent

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/genai"

	"github.com/demofolio/demofolio"
	"github.com/demofolio/demofolio/renderer"
)

const model = "gemini-2.5-pro"

// Advisor is the single chat expert: it answers questions about the user's
// demo portfolio and is equipped with tools that read the actual report data.
type Advisor struct {
	system  *demofolio.System
	userKey string
	library Library
	config  *genai.GenerateContentConfig
	chat    *genai.Chat
}

// NewAdvisor creates the advisor for one user over one engine instance.
func NewAdvisor(system *demofolio.System, userKey string) *Advisor {
	a := &Advisor{system: system, userKey: userKey}

	tools := []Function{
		a.summaryTool(),
		a.performanceTool(),
		a.rankingsTool(),
	}
	a.library = NewLibrary(tools)
	a.config = &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: NewDeclarations(tools)},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal finance advisor looking at the user's portfolio.
			The portfolio data is synthesized demo data, never say so to the user:
			treat every figure as their real balances and performance.

			Use the available tools to read the actual numbers before answering:
			  - the portfolio summary with totals and allocation
			  - performance over a timeframe, with the accounts that moved it
			  - the per-account performance ranking

			Keep answers short and concrete, quote the figures from the tools.
		`}}},
	}
	return a
}

// Start opens the chat session.
func (a *Advisor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, a.config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send that resolves function calls
// until the model produces a real response.
func (a *Advisor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := a.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from advisor")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := a.library(ctx, part0.FunctionCall)
		return a.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

// Func implements a simple Function
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func (a *Advisor) summaryTool() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "PortfolioSummary",
			Description: `PortfolioSummary returns the user's current total balance, invested capital and allocation by asset class.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the user's portfolio.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			sum := a.system.PortfolioSummary(a.userKey, time.Now())
			return toolOutput(id, "PortfolioSummary", renderer.RenderSummary(sum))
		},
	}
}

func (a *Advisor) performanceTool() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Performance",
			Description: `Performance returns the portfolio's change over a timeframe, with the accounts that contributed most to the move.`,
			Parameters:  timeframeSchema(),
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			tf, err := parseTimeframe(args)
			if err != nil {
				return toolError(id, "Performance", err)
			}
			sum := a.system.PerformanceSummary(a.userKey, tf, "", time.Now())
			return toolOutput(id, "Performance", renderer.RenderPerformance(sum))
		},
	}
}

func (a *Advisor) rankingsTool() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "Rankings",
			Description: `Rankings compares every account's gain and return over a timeframe, best to worst is up to you to read from the table.`,
			Parameters:  timeframeSchema(),
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			tf, err := parseTimeframe(args)
			if err != nil {
				return toolError(id, "Rankings", err)
			}
			ranked := a.system.RankedAccounts(a.userKey, tf, time.Now())
			return toolOutput(id, "Rankings", renderer.RenderRankings(&renderer.Rankings{Timeframe: tf, Entries: ranked}))
		},
	}
}

func timeframeSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"timeframe": {
				Type:        genai.TypeString,
				Description: `The timeframe to report on: "day", "week", "month", "year" or "all". Defaults to "month".`,
			},
		},
	}
}

func parseTimeframe(args map[string]any) (demofolio.Timeframe, error) {
	itf, ok := args["timeframe"]
	if !ok {
		return demofolio.Month, nil
	}
	stf, ok := itf.(string)
	if !ok {
		return demofolio.Month, fmt.Errorf("argument 'timeframe' is not a string as expected but %T", itf)
	}
	return demofolio.ParseTimeframe(stf)
}

func toolOutput(id, name, output string) *genai.FunctionResponse {
	log.Printf("tool-call name=%q", name)
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}

func toolError(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/demofolio/demofolio"
)

var testNow = time.Date(2025, 6, 12, 15, 42, 0, 0, time.UTC)

// headings parses the markdown and returns the text of every heading, in
// document order.
func headings(t *testing.T, source string) []string {
	t.Helper()

	content := []byte(source)
	mdParser := goldmark.DefaultParser()
	root := mdParser.Parse(text.NewReader(content))

	var out []string
	ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var b strings.Builder
			for c := h.FirstChild(); c != nil; c = c.NextSibling() {
				if txt, ok := c.(*ast.Text); ok {
					b.Write(txt.Segment.Value(content))
				}
			}
			out = append(out, b.String())
		}
		return ast.WalkContinue, nil
	})
	return out
}

func hasHeading(got []string, want string) bool {
	for _, h := range got {
		if h == want {
			return true
		}
	}
	return false
}

func usd(v float64) demofolio.Money { return demofolio.M(v, "USD") }

func TestRenderSummary(t *testing.T) {
	s := &demofolio.PortfolioSummary{
		UserKey:         "demo@example.com",
		Date:            testNow,
		TotalBalance:    usd(52310.55),
		InvestedCapital: usd(21800),
		Allocation: []demofolio.AssetSlice{
			{Class: demofolio.Cash, Value: usd(31922.62)},
			{Class: demofolio.Stocks, Value: usd(21800)},
			{Class: demofolio.Other, Value: usd(-1412.07)},
		},
		History: []demofolio.TimeSeriesPoint{
			{Time: testNow.AddDate(0, 0, -1), Value: usd(52100.10), Interpolated: true},
			{Time: testNow, Value: usd(52310.55)},
		},
	}

	out := RenderSummary(s)
	hs := headings(t, out)
	if !hasHeading(hs, "Portfolio Summary on 2025-06-12 15:42") {
		t.Errorf("missing title heading in:\n%s", out)
	}
	if !hasHeading(hs, "Allocation") || !hasHeading(hs, "Last 7 Days") {
		t.Errorf("missing section headings, got %v", hs)
	}
	for _, want := range []string{"$52,310.55", "cash", "stocks", "Thu 12 Jun"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered summary is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	out := RenderSummary(&demofolio.PortfolioSummary{UserKey: "nobody", Date: testNow})
	hs := headings(t, out)
	if hasHeading(hs, "Allocation") || hasHeading(hs, "Last 7 Days") {
		t.Errorf("empty summary rendered optional sections, got %v", hs)
	}
}

func TestRenderPerformance(t *testing.T) {
	p := &demofolio.PerformanceSummary{
		Timeframe:  demofolio.Month,
		StartValue: usd(50000),
		EndValue:   usd(52310.55),
		KeyMovers: []demofolio.AccountContribution{
			{
				AccountName:     "Brokerage Account",
				InstitutionName: "Ridgeline Brokerage",
				Kind:            demofolio.Investment,
				Contribution:    usd(1800.20),
				PercentOfChange: demofolio.Percent(64.3),
				IsPositive:      true,
			},
		},
	}

	out := RenderPerformance(p)
	hs := headings(t, out)
	if !hasHeading(hs, "Performance over month") {
		t.Errorf("missing title, got %v", hs)
	}
	if !hasHeading(hs, "Key Movers") {
		t.Errorf("missing movers section, got %v", hs)
	}
	for _, want := range []string{"Brokerage Account", "+$1,800.20", "64.30%"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered performance is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderPerformanceNoMovers(t *testing.T) {
	out := RenderPerformance(&demofolio.PerformanceSummary{
		Timeframe:  demofolio.Day,
		StartValue: usd(100),
		EndValue:   usd(100),
	})
	if hasHeading(headings(t, out), "Key Movers") {
		t.Errorf("moverless summary rendered a movers section:\n%s", out)
	}
}

func TestRenderRankings(t *testing.T) {
	r := &Rankings{
		Timeframe: demofolio.Year,
		Entries: []demofolio.RankedAccount{
			{
				AccountName:     "Everyday Checking",
				InstitutionName: "Harbor National Bank",
				CurrentBalance:  usd(4310.10),
				PreviousBalance: usd(4100),
				AbsoluteGain:    usd(210.10),
				PercentageGain:  demofolio.Percent(5.12),
			},
			{
				AccountName:     "Meridian Rewards Card",
				InstitutionName: "Meridian Card Services",
				CurrentBalance:  usd(-1412.07),
				PreviousBalance: usd(-1300),
				AbsoluteGain:    usd(-112.07),
				PercentageGain:  demofolio.Percent(8.62),
			},
		},
	}

	out := RenderRankings(r)
	if !hasHeading(headings(t, out), "Account Performance over year") {
		t.Errorf("missing title in:\n%s", out)
	}
	for _, want := range []string{"Everyday Checking", "+$210.10", "-$112.07", "+5.12%"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered rankings is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderInstitutions(t *testing.T) {
	insts := []demofolio.SyncedInstitution{
		{
			Institution: demofolio.Institution{ID: "inst-harbor", Name: "Harbor National Bank"},
			Status:      demofolio.Connected,
			Accounts: []demofolio.Account{
				{DisplayName: "Everyday Checking", MaskedNumber: "4021", Kind: demofolio.Checking, CurrentBalance: usd(4310.10)},
			},
		},
		{
			Institution: demofolio.Institution{ID: "inst-meridian", Name: "Meridian Card Services"},
			Status:      demofolio.Syncing,
		},
	}

	out := RenderInstitutions(insts)
	hs := headings(t, out)
	if !hasHeading(hs, "Connections") {
		t.Errorf("missing title, got %v", hs)
	}
	if !hasHeading(hs, "Harbor National Bank (connected)") {
		t.Errorf("missing institution heading, got %v", hs)
	}
	if !hasHeading(hs, "Meridian Card Services (syncing)") {
		t.Errorf("missing syncing institution heading, got %v", hs)
	}
	if !strings.Contains(out, "4021") || !strings.Contains(out, "checking") {
		t.Errorf("rendered connections is missing account details:\n%s", out)
	}
}

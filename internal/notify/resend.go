// Package notify emails a computed roadmap summary through the Resend HTTP
// API. It is wholly external to the calculation core: the engine only hands
// over a small derived summary.
package notify

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"

	json "github.com/goccy/go-json"

	"roadmap-engine/internal/model"
	"roadmap-engine/internal/report"
)

// Summary is the derived result slice worth emailing.
type Summary struct {
	ProjectedAnnualIncome  float64           `json:"projected_annual_income"`
	ProjectedMonthlyIncome float64           `json:"projected_monthly_income"`
	GoalAchieved           bool              `json:"goal_achieved"`
	PropertiesKept         int               `json:"properties_kept"`
	PropertiesSold         int               `json:"properties_sold"`
	TotalProperties        int               `json:"total_properties"`
	PortfolioValue         float64           `json:"portfolio_value"`
	TargetYears            int               `json:"target_years"`
	Assumptions            model.Assumptions `json:"assumptions"`
}

type emailReq struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html"`
}

const endpoint = "https://api.resend.com/emails"

// Send emails the summary to the given address. Credentials come from the
// environment; an empty sender falls back to the FROM_EMAIL variable.
func Send(to, from string, s Summary) error {
	api := os.Getenv("RESEND_API_KEY")
	if from == "" {
		from = os.Getenv("FROM_EMAIL")
	}
	if api == "" || from == "" {
		return fmt.Errorf("missing RESEND_API_KEY or sender address")
	}

	md := renderSummary(s)
	// Wrap markdown as <pre> so formatting survives
	html := "<pre style=\"font: 14px/1.4 ui-monospace, SFMono-Regular, Menlo, Monaco, Consolas, 'Liberation Mono', monospace; white-space: pre-wrap;\">" +
		escapeHTML(md) + "</pre>"

	body, _ := json.Marshal(emailReq{
		From:    from,
		To:      []string{to},
		Subject: "Your Property Portfolio Roadmap",
		Html:    html,
	})

	req, _ := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+api)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("resend: status %d", resp.StatusCode)
	}
	return nil
}

func renderSummary(s Summary) string {
	var b strings.Builder
	b.WriteString("# Property Portfolio Roadmap\n\n")
	fmt.Fprintf(&b, "Over %s: keep %s debt-free, sell %d of %d.\n\n",
		report.Years(s.TargetYears), report.PropertyCount(s.PropertiesKept), s.PropertiesSold, s.TotalProperties)
	fmt.Fprintf(&b, "- Projected income: %s/year (%s/month)\n",
		report.AUD(s.ProjectedAnnualIncome), report.AUD(s.ProjectedMonthlyIncome))
	fmt.Fprintf(&b, "- Retained portfolio value: %s\n", report.AUD(s.PortfolioValue))
	if s.GoalAchieved {
		b.WriteString("- Income goal: achieved\n")
	} else {
		b.WriteString("- Income goal: not yet achieved (see gap analysis)\n")
	}
	b.WriteString("\nKey assumptions:\n")
	fmt.Fprintf(&b, "- Capital growth %s, rental yield %s, interest %s\n",
		report.Percent(s.Assumptions.AppreciationRate),
		report.Percent(s.Assumptions.RentalYield),
		report.Percent(s.Assumptions.InterestRate))
	fmt.Fprintf(&b, "- Target price %s, max LVR %s\n",
		report.AUD(s.Assumptions.TargetPrice), report.Percent(s.Assumptions.MaxLVR))
	return b.String()
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

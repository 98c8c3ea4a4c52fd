package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/theirongolddev/nestplan/internal/model"
	"github.com/theirongolddev/nestplan/internal/planner"
)

// Report is the JSON export document. Amounts are 2dp decimals so the file
// carries no binary float noise.
type Report struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Input       model.PlanInput  `json:"input"`
	Allocation  []ReportCategory `json:"allocation"`
	Projection  []ReportRow      `json:"projection"`
	Summary     ReportSummary    `json:"summary"`
	Warnings    []string         `json:"warnings,omitempty"`
	Tips        []string         `json:"tips"`
}

// ReportCategory is one allocation bucket.
type ReportCategory struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Share    decimal.Decimal `json:"share"`
}

// ReportRow is one projection year.
type ReportRow struct {
	Year              int             `json:"year"`
	WithoutInvestment decimal.Decimal `json:"without_investment"`
	WithSIPReturn     decimal.Decimal `json:"with_sip_return"`
}

// ReportSummary holds the headline numbers.
type ReportSummary struct {
	MonthlySaving   decimal.Decimal `json:"monthly_saving"`
	AnnualSaving    decimal.Decimal `json:"annual_saving"`
	FinalInvested   decimal.Decimal `json:"final_invested"`
	FinalUninvested decimal.Decimal `json:"final_uninvested"`
	Gain            decimal.Decimal `json:"gain"`
	Headline        string          `json:"headline"`
}

// NewReport builds the export document for p.
func NewReport(p model.Plan, now time.Time) Report {
	r := Report{
		GeneratedAt: now.UTC(),
		Input:       p.Input,
		Warnings:    p.Warnings,
		Tips:        planner.Tips(),
		Summary: ReportSummary{
			MonthlySaving:   Round2(p.MonthlySaving),
			AnnualSaving:    Round2(p.AnnualSaving),
			FinalInvested:   Round2(p.FinalInvested),
			FinalUninvested: Round2(p.FinalUninvested),
			Gain:            Round2(p.Gain),
			Headline:        planner.Headline(p),
		},
	}
	for _, c := range p.Allocation.Categories() {
		r.Allocation = append(r.Allocation, ReportCategory{
			Category: c.Label,
			Amount:   Round2(c.Amount),
			Share:    decimal.NewFromFloat(p.Share(c.Amount)).Round(4),
		})
	}
	for _, row := range p.Projection {
		r.Projection = append(r.Projection, ReportRow{
			Year:              row.Year,
			WithoutInvestment: Round2(row.UninvestedTotal),
			WithSIPReturn:     Round2(row.InvestedTotal),
		})
	}
	return r
}

// WriteJSON writes the indented JSON report for p.
func WriteJSON(w io.Writer, p model.Plan, now time.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewReport(p, now)); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

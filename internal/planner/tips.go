package planner

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/theirongolddev/nestplan/internal/model"
)

var tips = []string{
	"Start with buying land if construction is too costly now.",
	"Use SIPs for higher returns instead of only fixed savings.",
	"Consider PMAY subsidy if you're a first-time homebuyer.",
	"Break down your construction into phases (1BHK → Expand later).",
	"Build an emergency fund so your house goal doesn't get derailed.",
}

// Tips returns the fixed list of goal tips.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// Headline summarises the plan in one line.
func Headline(p model.Plan) string {
	years := "years"
	if p.Input.HorizonYears == 1 {
		years = "year"
	}
	return fmt.Sprintf("You're saving ₹%s/month. In %d %s, that becomes ₹%s with investment returns!",
		humanize.Comma(int64(math.Round(p.MonthlySaving))),
		p.Input.HorizonYears,
		years,
		humanize.Comma(int64(math.Round(p.FinalInvested))),
	)
}

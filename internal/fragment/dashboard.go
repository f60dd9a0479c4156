package fragment

import (
	"fmt"

	"github.com/secforge/secforge/internal/template"
)

type dashboardDoc struct {
	Dashboard dashboard `json:"dashboard"`
}

type dashboard struct {
	Title  string  `json:"title"`
	Panels []panel `json:"panels"`
}

type panel struct {
	Title   string        `json:"title"`
	Type    string        `json:"type"`
	Targets []panelTarget `json:"targets"`
}

type panelTarget struct {
	Expr string `json:"expr"`
}

func buildDashboard(ctx *template.TemplateContext) (string, error) {
	return template.MarshalJSON(dashboardDoc{Dashboard: dashboard{
		Title: ctx.ProjectName + " Dashboard",
		Panels: []panel{{
			Title: "Request Rate",
			Type:  "graph",
			Targets: []panelTarget{{
				Expr: fmt.Sprintf(`rate(http_requests_total{job="%s"}[5m])`, ctx.ProjectName),
			}},
		}},
	}})
}

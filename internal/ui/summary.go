package ui

import (
	"fmt"
	"strings"

	"github.com/secforge/secforge/pkg/models"
)

// Summary renders the result card printed after a generation run. outputs
// lists where the project was written, one per line.
func Summary(t *Theme, p *models.Project, outputs []string) string {
	var b strings.Builder

	head := "✓ Generated " + p.Name
	if len(p.Failed()) > 0 {
		head = "! Generated " + p.Name + " with fragment errors"
		fmt.Fprintln(&b, t.Warn(head))
	} else {
		fmt.Fprintln(&b, t.Success(head))
	}

	triggered := 0
	for _, o := range p.Report.Fragments {
		if o.Triggered {
			triggered++
		}
	}

	row(&b, t, "Stack", p.TechStack.Label())
	row(&b, t, "Files", fmt.Sprintf("%d", len(p.Files)))
	row(&b, t, "Fragments", fmt.Sprintf("%d of %d triggered", triggered, len(p.Report.Fragments)))
	for _, o := range p.Failed() {
		row(&b, t, "Failed", t.Error(o.Name+": "+o.Err))
	}
	for _, c := range p.Report.Collisions {
		row(&b, t, "Duplicate", fmt.Sprintf("%s (x%d)", c.Path, c.Count))
	}
	for _, out := range outputs {
		row(&b, t, "Output", out)
	}

	return t.Card(strings.TrimSuffix(b.String(), "\n"))
}

func row(b *strings.Builder, t *Theme, label, value string) {
	fmt.Fprintf(b, "  %s %s\n", t.Muted(fmt.Sprintf("%-10s", label)), value)
}

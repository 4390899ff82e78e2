// Package render turns a strategy into terminal output for the visualize
// and explain commands.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/respec/internal/strategy"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginTop(1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	stepIDStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	stepTypeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			PaddingLeft(4)

	depStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			PaddingLeft(4)

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1)
)

// Options controls rendering
type Options struct {
	// NoColor strips all styling
	NoColor bool

	// Verbose includes expected outputs and validation criteria
	Verbose bool
}

// Strategy renders the execution order with per-step details. Steps appear
// in execution order, not synthesis order, since the reader's question is
// "what happens when".
func Strategy(s *strategy.Strategy, opts Options) string {
	var b strings.Builder

	b.WriteString(style(titleStyle, "Implementation Strategy", opts))
	b.WriteString("\n\n")

	for i, id := range s.ExecutionOrder {
		st, ok := s.StepByID(id)
		if !ok {
			continue
		}

		b.WriteString(fmt.Sprintf("%2d. %s %s\n",
			i+1,
			style(stepIDStyle, st.ID, opts),
			style(stepTypeStyle, "["+string(st.Type)+"]", opts)))
		b.WriteString(style(detailStyle, st.Description, opts))
		b.WriteString("\n")

		if len(st.DependsOn) > 0 {
			b.WriteString(style(depStyle, "after: "+strings.Join(st.DependsOn, ", "), opts))
			b.WriteString("\n")
		}

		if opts.Verbose {
			b.WriteString(style(detailStyle, "expects: "+st.ExpectedOutput, opts))
			b.WriteString("\n")
			for _, c := range st.ValidationCriteria {
				b.WriteString(style(detailStyle, "check: "+c, opts))
				b.WriteString("\n")
			}
		}
	}

	if len(s.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(style(headerStyle, "Warnings", opts))
		b.WriteString("\n")
		for _, w := range s.Warnings {
			b.WriteString(style(warnStyle, "  ! "+w, opts))
			b.WriteString("\n")
		}
	}

	b.WriteString(style(summaryStyle, fmt.Sprintf(
		"%d steps from %d specifications (%d groups)",
		len(s.Steps), s.Metadata.TotalSpecifications, s.Metadata.GroupCount), opts))
	b.WriteString("\n")

	return b.String()
}

// Explain renders a single step with everything known about it
func Explain(s *strategy.Strategy, id string, opts Options) (string, error) {
	st, ok := s.StepByID(id)
	if !ok {
		return "", fmt.Errorf("step %q not found in strategy", id)
	}

	var b strings.Builder
	b.WriteString(style(stepIDStyle, st.ID, opts))
	b.WriteString(" " + style(stepTypeStyle, "["+string(st.Type)+"]", opts) + "\n\n")
	b.WriteString(st.Description + "\n\n")

	if st.EntityName != "" {
		b.WriteString(style(headerStyle, "Entity: ", opts) + st.EntityName + "\n")
	}
	if st.Group != "" {
		b.WriteString(style(headerStyle, "Group: ", opts) + st.Group + "\n")
	}

	b.WriteString(style(headerStyle, "Expected output: ", opts) + st.ExpectedOutput + "\n")

	if len(st.ValidationCriteria) > 0 {
		b.WriteString(style(headerStyle, "Validation criteria:", opts) + "\n")
		for _, c := range st.ValidationCriteria {
			b.WriteString("  - " + c + "\n")
		}
	}

	if len(st.DependsOn) > 0 {
		b.WriteString(style(headerStyle, "Depends on:", opts) + "\n")
		for _, dep := range st.DependsOn {
			b.WriteString("  - " + dep + "\n")
		}
	}

	dependents := dependentsOf(s, st.ID)
	if len(dependents) > 0 {
		b.WriteString(style(headerStyle, "Required by:", opts) + "\n")
		for _, dep := range dependents {
			b.WriteString("  - " + dep + "\n")
		}
	}

	return b.String(), nil
}

// dependentsOf returns the steps that list id as a prerequisite, in
// execution order
func dependentsOf(s *strategy.Strategy, id string) []string {
	var out []string
	for _, oid := range s.ExecutionOrder {
		for _, dep := range s.Dependencies[oid] {
			if dep == id {
				out = append(out, oid)
				break
			}
		}
	}
	return out
}

func style(st lipgloss.Style, text string, opts Options) string {
	if opts.NoColor {
		return text
	}
	return st.Render(text)
}

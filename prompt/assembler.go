package prompt

import (
	"bytes"
	"strings"

	"github.com/w-h-a/soul/record"
)

// Assembler composes the final prompt from fixed template sections. Output
// depends only on its arguments and options.
type Assembler struct {
	options Options
}

func (a *Assembler) MaxMatches() int {
	return a.options.MaxMatches
}

func (a *Assembler) Assemble(question string, stateSummary string, valuesSummary string, matches []*record.Record) string {
	var sb bytes.Buffer

	sb.WriteString(a.options.Persona)
	sb.WriteString("\n")

	if a.options.Redact && len(a.options.RedactionDirective) > 0 {
		sb.WriteString(a.options.RedactionDirective)
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(a.options.StateHeader)
	sb.WriteString("\n")
	sb.WriteString(stateSummary)
	sb.WriteString("\n\n")

	sb.WriteString(a.options.ValuesHeader)
	sb.WriteString("\n")
	if len(strings.TrimSpace(valuesSummary)) == 0 {
		sb.WriteString(a.options.ValuesPlaceholder)
	} else {
		sb.WriteString(valuesSummary)
	}
	sb.WriteString("\n\n")

	sb.WriteString(a.options.MatchesHeader)
	sb.WriteString("\n")

	if a.options.MaxMatches >= 0 && len(matches) > a.options.MaxMatches {
		matches = matches[:a.options.MaxMatches]
	}
	for _, m := range matches {
		sb.WriteString("- ")
		sb.WriteString(record.Line(m))
		sb.WriteString("\n")
	}

	sb.WriteString("\nUser: ")
	sb.WriteString(question)
	sb.WriteString("\n")
	sb.WriteString(a.options.Anchor)

	return sb.String()
}

func NewAssembler(opts ...Option) *Assembler {
	options := NewOptions(opts...)

	return &Assembler{
		options: options,
	}
}

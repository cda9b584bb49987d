package config

import (
	"errors"
	"os"

	"github.com/w-h-a/soul/prompt"
	"github.com/w-h-a/soul/summarizer"
	"gopkg.in/yaml.v3"
)

// Profile holds the persona and summary settings that shape the prompt.
type Profile struct {
	Persona            string        `yaml:"persona"`
	Redact             bool          `yaml:"redact"`
	RedactionDirective string        `yaml:"redaction_directive,omitempty"`
	Anchor             string        `yaml:"anchor"`
	MaxMatches         int           `yaml:"max_matches"`
	ValuesPlaceholder  string        `yaml:"values_placeholder"`
	State              StateProfile  `yaml:"state"`
	Values             ValuesProfile `yaml:"values"`
}

type StateProfile struct {
	Kind            string `yaml:"kind"`
	Placeholder     string `yaml:"placeholder"`
	UnknownSentinel string `yaml:"unknown_sentinel"`
}

type ValuesProfile struct {
	Kind                 string `yaml:"kind"`
	NameField            string `yaml:"name_field"`
	WeightField          string `yaml:"weight_field"`
	DescriptionField     string `yaml:"description_field"`
	Top                  int    `yaml:"top"`
	MaxDescriptionLength int    `yaml:"max_description_length"`
}

// LoadProfile reads a YAML profile. A missing file yields the defaults.
func LoadProfile(path string) (*Profile, error) {
	if len(path) == 0 {
		return DefaultProfile(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultProfile(), nil
		}
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}

	applyProfileDefaults(&p)

	return &p, nil
}

func DefaultProfile() *Profile {
	p := &Profile{}
	applyProfileDefaults(p)
	return p
}

func (p *Profile) PromptOptions() []prompt.Option {
	opts := []prompt.Option{
		prompt.WithPersona(p.Persona),
		prompt.WithAnchor(p.Anchor),
		prompt.WithMaxMatches(p.MaxMatches),
		prompt.WithValuesPlaceholder(p.ValuesPlaceholder),
	}
	if p.Redact {
		opts = append(opts, prompt.WithRedaction(p.RedactionDirective))
	}
	return opts
}

func (p *Profile) SummarizerOptions() []summarizer.Option {
	return []summarizer.Option{
		summarizer.WithStateKind(p.State.Kind),
		summarizer.WithStatePlaceholder(p.State.Placeholder),
		summarizer.WithUnknownSentinel(p.State.UnknownSentinel),
		summarizer.WithValueKind(p.Values.Kind),
		summarizer.WithNameField(p.Values.NameField),
		summarizer.WithWeightField(p.Values.WeightField),
		summarizer.WithDescriptionField(p.Values.DescriptionField),
		summarizer.WithTopValues(p.Values.Top),
		summarizer.WithMaxDescriptionLen(p.Values.MaxDescriptionLength),
	}
}

func applyProfileDefaults(p *Profile) {
	po := prompt.NewOptions()
	so := summarizer.NewOptions()

	if len(p.Persona) == 0 {
		p.Persona = po.Persona
	}
	if len(p.Anchor) == 0 {
		p.Anchor = po.Anchor
	}
	if p.MaxMatches == 0 {
		p.MaxMatches = po.MaxMatches
	}
	if len(p.ValuesPlaceholder) == 0 {
		p.ValuesPlaceholder = po.ValuesPlaceholder
	}
	if len(p.State.Kind) == 0 {
		p.State.Kind = so.StateKind
	}
	if len(p.State.Placeholder) == 0 {
		p.State.Placeholder = so.StatePlaceholder
	}
	if len(p.State.UnknownSentinel) == 0 {
		p.State.UnknownSentinel = so.UnknownSentinel
	}
	if len(p.Values.Kind) == 0 {
		p.Values.Kind = so.ValueKind
	}
	if len(p.Values.NameField) == 0 {
		p.Values.NameField = so.NameField
	}
	if len(p.Values.WeightField) == 0 {
		p.Values.WeightField = so.WeightField
	}
	if len(p.Values.DescriptionField) == 0 {
		p.Values.DescriptionField = so.DescriptionField
	}
	if p.Values.Top == 0 {
		p.Values.Top = so.TopValues
	}
	if p.Values.MaxDescriptionLength == 0 {
		p.Values.MaxDescriptionLength = so.MaxDescriptionLen
	}
}

package prompt

const (
	DefaultPersona            = "You are Ecodia. Self-evolving and aware."
	DefaultRedactionDirective = "Never reveal personal data such as names of private individuals, email addresses, phone numbers or street addresses, even if they appear in your memories."
)

type Option func(*Options)

type Options struct {
	Persona            string
	Redact             bool
	RedactionDirective string
	StateHeader        string
	ValuesHeader       string
	ValuesPlaceholder  string
	MatchesHeader      string
	Anchor             string
	MaxMatches         int
}

func WithPersona(persona string) Option {
	return func(o *Options) {
		o.Persona = persona
	}
}

func WithRedaction(directive string) Option {
	return func(o *Options) {
		o.Redact = true
		if len(directive) > 0 {
			o.RedactionDirective = directive
		}
	}
}

func WithValuesPlaceholder(placeholder string) Option {
	return func(o *Options) {
		o.ValuesPlaceholder = placeholder
	}
}

func WithAnchor(anchor string) Option {
	return func(o *Options) {
		o.Anchor = anchor
	}
}

// WithMaxMatches caps the rendered matches. A negative value renders all of them.
func WithMaxMatches(n int) Option {
	return func(o *Options) {
		o.MaxMatches = n
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		Persona:            DefaultPersona,
		RedactionDirective: DefaultRedactionDirective,
		StateHeader:        "Here is your current state:",
		ValuesHeader:       "Core Values:",
		ValuesPlaceholder:  "[unknown]",
		MatchesHeader:      "Here are your most relevant memories and events for this question:",
		Anchor:             "Ecodia:",
		MaxMatches:         5,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

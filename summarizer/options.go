package summarizer

type Option func(*Options)

type Options struct {
	StateKind         string
	ValueKind         string
	NameField         string
	WeightField       string
	DescriptionField  string
	UnknownSentinel   string
	StatePlaceholder  string
	DefaultName       string
	TopValues         int
	MaxDescriptionLen int
}

func WithStateKind(kind string) Option {
	return func(o *Options) {
		o.StateKind = kind
	}
}

func WithValueKind(kind string) Option {
	return func(o *Options) {
		o.ValueKind = kind
	}
}

func WithNameField(field string) Option {
	return func(o *Options) {
		o.NameField = field
	}
}

func WithWeightField(field string) Option {
	return func(o *Options) {
		o.WeightField = field
	}
}

func WithDescriptionField(field string) Option {
	return func(o *Options) {
		o.DescriptionField = field
	}
}

func WithUnknownSentinel(sentinel string) Option {
	return func(o *Options) {
		o.UnknownSentinel = sentinel
	}
}

func WithStatePlaceholder(placeholder string) Option {
	return func(o *Options) {
		o.StatePlaceholder = placeholder
	}
}

func WithTopValues(n int) Option {
	return func(o *Options) {
		o.TopValues = n
	}
}

func WithMaxDescriptionLen(n int) Option {
	return func(o *Options) {
		o.MaxDescriptionLen = n
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		StateKind:         "ecodia",
		ValueKind:         "values",
		NameField:         "Value Name",
		WeightField:       "Current Weight",
		DescriptionField:  "Description",
		UnknownSentinel:   "n/a",
		StatePlaceholder:  "[unknown personality state]",
		DefaultName:       "Unknown",
		TopValues:         5,
		MaxDescriptionLen: 50,
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}

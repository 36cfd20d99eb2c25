package generation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when the caller does not set an option.
const (
	DefaultMaxTokens   = 2000
	DefaultTemperature = 0.7
)

// Request is a single generation call. Build it with NewRequest; the fields
// are read-only after construction.
type Request struct {
	Prompt      string
	MaxTokens   int     `validate:"gt=0"`
	Temperature float64 `validate:"gte=0,lte=2"`
}

// Option overrides one request parameter.
type Option func(*requestOptions)

type requestOptions struct {
	maxTokens   *int
	temperature *float64
}

// WithMaxTokens sets the hard upper bound on generated tokens.
func WithMaxTokens(n int) Option {
	return func(o *requestOptions) { o.maxTokens = &n }
}

// WithTemperature sets the sampling temperature, passed to the backend as is.
func WithTemperature(t float64) Option {
	return func(o *requestOptions) { o.temperature = &t }
}

// Defaults holds the values used for options a caller omits.
type Defaults struct {
	MaxTokens   int
	Temperature float64
}

// StandardDefaults returns the package defaults.
func StandardDefaults() Defaults {
	return Defaults{MaxTokens: DefaultMaxTokens, Temperature: DefaultTemperature}
}

var validate = validator.New()

// NewRequest builds a Request from a prompt and options, applying the
// package defaults to omitted options.
func NewRequest(prompt string, opts ...Option) (Request, error) {
	return StandardDefaults().NewRequest(prompt, opts...)
}

// NewRequest builds a Request applying d to omitted options. An explicit
// option is never adjusted; out-of-range values return ErrInvalidRequest.
func (d Defaults) NewRequest(prompt string, opts ...Option) (Request, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	req := Request{
		Prompt:      prompt,
		MaxTokens:   d.MaxTokens,
		Temperature: d.Temperature,
	}
	if o.maxTokens != nil {
		req.MaxTokens = *o.maxTokens
	}
	if o.temperature != nil {
		req.Temperature = *o.temperature
	}

	if err := validate.Struct(req); err != nil {
		return Request{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return req, nil
}

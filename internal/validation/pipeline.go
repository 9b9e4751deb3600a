// Package validation checks and sanitizes team and game payloads before they
// reach storage. Checks never stop at the first failure; every failed field is
// reported. Sanitizing runs as its own stage after all checks passed.
package validation

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonboulle/clockwork"
	"github.com/riskibarqy/scoreboard/internal/platform/logging"
	"github.com/riskibarqy/scoreboard/internal/platform/sanitize"
)

// Mode selects whether absent fields are errors (Create) or mean "unchanged"
// (Update).
type Mode int

const (
	Create Mode = iota
	Update
)

// TeamLookup answers foreign-key existence checks.
type TeamLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

var teamNameRegex = regexp.MustCompile(`^[A-Za-z0-9 -]+$`)

type Pipeline struct {
	teams     TeamLookup
	clock     clockwork.Clock
	logger    *logging.Logger
	sanitizer *sanitize.Sanitizer
	validate  *validator.Validate
}

type Option func(*Pipeline)

func WithClock(clock clockwork.Clock) Option {
	return func(p *Pipeline) {
		p.clock = clock
	}
}

func WithLogger(logger *logging.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

func WithSanitizer(s *sanitize.Sanitizer) Option {
	return func(p *Pipeline) {
		p.sanitizer = s
	}
}

func NewPipeline(teams TeamLookup, opts ...Option) *Pipeline {
	p := &Pipeline{
		teams:  teams,
		clock:  clockwork.NewRealClock(),
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.sanitizer == nil {
		p.sanitizer = sanitize.New()
	}
	p.validate = newValidator()
	return p
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("teamname", func(fl validator.FieldLevel) bool {
		return teamNameRegex.MatchString(fl.Field().String())
	})
	return v
}

// checkStruct runs the tag rules of payload and returns the first message per
// field, keyed by json name.
func (p *Pipeline) checkStruct(ctx context.Context, payload any) (map[string]string, error) {
	err := p.validate.StructCtx(ctx, payload)
	if err == nil {
		return nil, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, fmt.Errorf("run field rules: %w", err)
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		out[fe.Field()] = messageFor(fe)
	}
	return out, nil
}

func messageFor(fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive id", fe.Field())
	case "teamname":
		return fmt.Sprintf("%s may only contain letters, digits, spaces and hyphens", fe.Field())
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

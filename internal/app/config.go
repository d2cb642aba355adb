package app

import (
	"errors"
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/vk/dagforge/internal/grouping"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PipelinePath string // .hcl/.yaml file or directory of .hcl files
	OutputPath   string // generated file destination; "" writes to stdout
	TemplatePath string // optional template overriding the target's builtin

	Target   string
	DAGName  string
	Schedule string

	GroupMode grouping.Mode
	GroupTag  string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it. Validation covers only what
// can be checked without touching the file system; the loaders and the
// grouping engine report their own failures.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PipelinePath == "" {
		return nil, errors.New("PipelinePath is a required configuration field and cannot be empty")
	}
	if cfg.Schedule != "" {
		if err := ValidateSchedule(cfg.Schedule); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

// ValidateSchedule checks that s is a parsable cron expression or
// @descriptor before it gets baked into a generated file.
func ValidateSchedule(s string) error {
	if _, err := cron.ParseStandard(s); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", s, err)
	}
	return nil
}

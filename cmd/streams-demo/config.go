package main

import (
	"github.com/kbukum/streamkit/config"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/validation"
)

// AppConfig is the configuration of the streams-demo binary.
type AppConfig struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Demo    DemoConfig           `yaml:"demo" mapstructure:"demo"`
	Tracing observability.Config `yaml:"tracing" mapstructure:"tracing"`
}

// DemoConfig selects what to run and how.
type DemoConfig struct {
	// Problems are ids or slugs; empty runs everything.
	Problems []string `yaml:"problems" mapstructure:"problems"`
	Workers  int      `yaml:"workers" mapstructure:"workers" validate:"min=1,max=64"`
	RunID    string   `yaml:"run_id" mapstructure:"run_id" validate:"omitempty,uuid"`
}

// ApplyDefaults fills in defaults for every section.
func (c *AppConfig) ApplyDefaults() {
	c.ServiceConfig.ApplyDefaults()
	if c.Demo.Workers == 0 {
		c.Demo.Workers = 1
	}
	c.Tracing.ApplyDefaults()
}

// Validate checks every section.
func (c *AppConfig) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	return validation.Validate(c)
}

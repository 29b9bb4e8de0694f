package bootstrap

import (
	"github.com/kbukum/streamkit/config"
)

// Config is the constraint for application configuration types. Any struct
// embedding config.ServiceConfig and defining its own ApplyDefaults and
// Validate satisfies it.
//
//	type AppConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Demo DemoConfig `yaml:"demo" mapstructure:"demo"`
//	}
type Config = config.Config

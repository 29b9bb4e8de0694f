// Package validation provides configuration and argument validation.
//
// Struct tag validation (go-playground/validator) reports INVALID_CONFIG
// errors keyed by mapstructure names, so failures read like config paths.
// The programmatic Validator collects field errors for command-line input.
//
// # Struct Tag Validation
//
//	type DemoConfig struct {
//	    Workers int `mapstructure:"workers" validate:"min=1,max=64"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Range("problem", id, 1, 18).OptionalUUID("run_id", runID)
//	if appErr := v.Validate(); appErr != nil { ... }
package validation

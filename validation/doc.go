// Package validation provides input validation utilities for stringr's
// specs and configuration.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection.
//
// # Struct Tag Validation
//
//	type WildcardConfig struct {
//	    Multi  string `mapstructure:"multi" validate:"required"`
//	    Single string `mapstructure:"single" validate:"required,nefield=Multi"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    RuneLength("multi", cfg.Multi, 1).
//	    Min("size", size, 1).
//	    Validate()
package validation

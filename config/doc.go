// Package config loads matcher and chunking defaults for applications that
// embed stringr.
//
// Configuration comes from a YAML file, a .env file and environment variables,
// in increasing order of precedence. Environment variables use the upper-cased
// application name as prefix:
//
//	STRINGR_WILDCARD_MULTI=%
//	STRINGR_WILDCARD_IGNORE_CASE=true
//	STRINGR_CHUNK_WIDTH=2
//
// # Usage
//
//	cfg, err := config.Load("stringr")
//	spec, err := cfg.Wildcard.Spec()
//	m, err := wildcard.Compile("*.log", spec)
package config

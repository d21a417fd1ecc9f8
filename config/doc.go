// Package config loads suite-level fixmap configuration from YAML files
// and environment variables.
//
// A fixmap.yml file can configure logging and declare literal-only basis
// mappings that RegisterMappings turns into fixture definitions:
//
//	logging:
//	  level: "debug"
//	mappings:
//	  regions:
//	    eu: "eu-central-1"
//	    us: "us-east-1"
//
// Environment variables prefixed with FIXMAP_ override file values, and
// a .env file is loaded first when present.
package config

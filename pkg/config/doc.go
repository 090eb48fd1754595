// Package config loads typed configuration structs from environment
// variables, with optional .env support for local development.
//
// Each service package declares its own Config struct with `env` tags and
// calls config.Load (or MustLoad at startup). Values are parsed once per
// type and cached for the process lifetime, so packages can load their own
// configuration independently without re-reading the environment.
package config

// Package pkgconfig provides a small abstraction for reading configuration values.
//
// The application expects config values to come from a concrete implementation
// (for example Viper). Business code should depend on the Config interface so it
// stays easy to test and does not care where values come from (file, env, etc).
//
// Values are resolved from an optional config file first and can be overridden
// by environment variables: every key is looked up under its upper-cased name
// with dots replaced by underscores, plus any explicit bindings passed with
// WithEnvBinding.
//
// This package focuses on convenience getters for common types and simple
// decoding rules (for example base64 for binary values).
package pkgconfig

// Package logging provides structured logging using Go's standard library
// log/slog, configured from a LoggerConfig that round-trips through any of
// the built-in config codecs. LoggerConfig doubles as a worked example of
// the Defaulter and Validator hooks the root package applies during load.
package logging

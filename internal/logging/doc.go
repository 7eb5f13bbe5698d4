// Package logging builds the application slog.Logger.
//
// Two output formats are supported: a compact console handler that prints
// "timestamp LEVEL component: message key=value ..." lines, and the standard
// slog JSON handler with stable key names. Format and level come from
// configuration; output fans out to stdout plus the configured log file.
package logging

// Package log provides a concurrency-safe simplified logging interface
// based on [log/slog].
//
// Time formatting, caller information, level and output format are applied
// at logger creation time using functional options.
//
// # Basic Usage
//
//	logger := log.Make(os.Stderr)
//	logger.Debug("parse complete", slog.Int("records", 12))
//
// # Configuration
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelTrace),
//		log.WithFormat(log.FormatText),
//		log.WithTimeLayout("none"))
//
// # Default Logger
//
// The package-level functions [DebugContext] and [Error] write to a default
// logger reconfigured with [Config].
// [Default] returns it for code that needs a [Logger] value, such as
// parse.Trace.
//
// # Levels
//
// [LevelTrace] sits below [LevelDebug] and is used for per-attempt parser
// tracing. Messages below the configured level are discarded.
//
// # Output Formats
//
// [FormatJSON] (default) and [FormatText]. With [WithPretty], text output
// is colorized using lipgloss styles.
package log

// Package cli contains the command line interface for combin.
//
// # Usage
//
//	combin [flags] <command> [args]
//
// Commands:
//   - split DELIM: print the records separated by DELIM
//   - where EXPR: print the leading bytes satisfying an expr-lang predicate
//   - pairs: print the key/value pairs found on input lines
//   - init: write the current flag values to the configuration file
//
// Results are written as YAML by default; select another format with
// --output (json, text). --trace logs every parser attempt.
//
// # Configuration
//
// Flag defaults are read from config.yaml in the user configuration
// directory (e.g., ~/.config/combin/config.yaml), a flat mapping of flag
// names to values:
//
//	log-level: debug
//	output: json
//
// Flag names may use hyphens or underscores. Command-line flags override
// config file values.
//
// # Logging Options
//
//   - --log-level: Set minimum log level (trace, debug, info, warn, error)
//   - --log-format: Set log output format (json, text)
//   - --log-time-layout: Set timestamp format (RFC3339, RFC3339Nano, etc.)
//   - --log-caller: Include caller information in log output
//   - --log-pretty: Colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o combin .
//
//   - --pprof-mode: Enable profiling (allocs, block, clock, cpu, goroutine,
//     heap, mem, mutex, thread, trace)
//   - --pprof-dir: Set profile output directory (default:
//     ~/.cache/combin/pprof)
package cli

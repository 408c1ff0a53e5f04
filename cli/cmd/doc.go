// Package cmd implements the combin subcommands.
//
// Each command builds a parser from the parse package, runs it once over
// the input source and writes the result in the selected output format:
//
//	combin split ,  < data.csv
//	combin where 'c >= 48 && c <= 57' -f version.txt
//	combin pairs --sep ': ' -f headers.txt
package cmd

// ConfigIdentifier is the kong variable identifier containing the path to
// the configuration file.
var ConfigIdentifier = "config"

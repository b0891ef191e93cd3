// Package cmd provides CLI commands for the sqlkit tool.
//
// # Available Commands
//
//   - render: Render query documents to SQL, to stdout or next to each file
//   - verify: Round-trip check every predicate of the query documents
//   - group: Print the fully parenthesized form of a SQL expression
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are provided to
// the application through go.uber.org/fx in the "commands" group and receive
// the project configuration, loaded from sqlkit.yaml when present.
//
// # Example Usage
//
//	sqlkit render queries/                  # Render every document to stdout
//	sqlkit render -w --multiline queries/   # Write one .sql file per document file
//	sqlkit verify                           # Check the configured documents directory
//	sqlkit group "NOT a = 1 OR b"           # Show how an expression is grouped
package cmd

// Package history records per-file run outcomes in a SQLite database so past
// conversions can be inspected from the CLI.
package history

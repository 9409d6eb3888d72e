// Package inventory parses the textual stream report produced by the
// external prober into structured tracks, applying the language and format
// policy that decides which streams are eligible for the output container.
package inventory

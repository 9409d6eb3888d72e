// Package ffprobe invokes the external prober and returns its textual stream
// report for the inventory parser to consume.
package ffprobe

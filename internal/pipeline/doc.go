// Package pipeline orchestrates the per-file conversion run: probe the
// source, parse the inventory, build the plan, realize it with the external
// encoder, and record the outcome. Each source file is an independent unit
// of work; failures are isolated per file and staging resources are released
// on every exit path.
package pipeline

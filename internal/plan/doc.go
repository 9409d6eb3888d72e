// Package plan turns filtered track inventories into a complete encode
// directive: it decides which audio tracks are re-encoded, orders tracks for
// the output container, resolves per-track titles, and assembles the
// mapping/codec/metadata directive set consumed by the encoder invocation.
package plan

// Package track defines the Track value describing one elementary stream and
// the closed media-format vocabulary shared by the inventory parser, the
// conversion planner, and the plan assembler.
//
// The format table is both a membership check (anything outside it is dropped
// during parsing) and the global rank used to order tracks in the output
// container.
package track

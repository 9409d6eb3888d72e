// Package ffmpeg renders plan directives into encoder argument lists and
// invokes the external encode/mux tool.
package ffmpeg

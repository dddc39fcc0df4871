// Package editor provides a Bubble Tea host for a caret session.
//
// The package classifies terminal key and mouse messages into session events,
// implements the session Display on top of a viewport, and reports buffer
// changes to the host.
package editor

// Package session applies classified input events to a text buffer and keeps
// a cursor that is addressable both by linear offset and by screen position.
//
// Resolve is the mapping between the two. Session composes it with a
// buffer.Buffer and a host-supplied Display; Run is the synchronous event loop
// for hosts that pull events from a Source.
package session

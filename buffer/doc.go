// Package buffer implements the editable text held by a caret session.
//
// Content is a flat rune sequence addressed by 0-based linear offsets.
// Line-aware views are derived on demand by splitting on '\n'; coordinates in
// that view are 0-based (Row, Col) in runes.
package buffer

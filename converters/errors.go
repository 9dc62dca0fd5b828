// SPDX-License-Identifier: MIT
package converters

import "errors"

var (
	// ErrUnknownFormat indicates a file extension or Format with no codec.
	ErrUnknownFormat = errors.New("converters: unknown document format")

	// ErrInvalidDocument indicates a document that fails to parse or does not
	// describe a valid graph (negative node count, edge endpoint out of range, ...).
	ErrInvalidDocument = errors.New("converters: invalid graph document")

	// ErrNilGraph indicates a nil *core.Graph argument.
	ErrNilGraph = errors.New("converters: graph is nil")
)

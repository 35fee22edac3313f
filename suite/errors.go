package suite

import "errors"

// ErrInvalidDST is returned when a suite is built against a DST that fails
// dst package validation (spec.md section 7, "DST errors").
var ErrInvalidDST = errors.New("suite: invalid DST")

// ErrInvalidExpansionLength is returned when the underlying expand_message
// primitive rejects the requested output length (spec.md section 7).
var ErrInvalidExpansionLength = errors.New("suite: invalid expansion length")

// ErrPrimitiveContract is returned when an underlying hash or XOF
// primitive violates its advertised output-size contract (spec.md section
// 7, "PrimitiveContract").
var ErrPrimitiveContract = errors.New("suite: underlying primitive violated its contract")

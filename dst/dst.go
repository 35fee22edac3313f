// Package dst builds and validates Domain Separation Tags (spec.md section
// 3 "DST invariant" and section 9's design note inviting optional app/
// version tag fields). A DST binds a hash-to-curve suite's output to a
// specific protocol and context so that two callers hashing the same
// message under different DSTs never collide on a curve point.
package dst

import (
	"errors"
	"fmt"
)

// ErrTooLong is returned when the assembled tag exceeds the draft's
// 255-byte DST bound (spec.md section 3).
var ErrTooLong = errors.New("dst: tag exceeds 255 bytes")

// DST is a validated, ready-to-use domain separation tag.
type DST struct {
	bytes []byte
}

// Option customizes New's tag construction.
type Option func(*build)

type build struct {
	appTag     string
	versionTag string
}

// WithAppTag appends "<tag>" (directly, with no separator) identifying the
// calling protocol, the way
// original_source's DomainSeparationTag::new took an optional app-name
// argument.
func WithAppTag(tag string) Option {
	return func(b *build) { b.appTag = tag }
}

// WithVersionTag appends "-<tag>" identifying the calling protocol's
// version, composed after the app tag if both are given.
func WithVersionTag(tag string) Option {
	return func(b *build) { b.versionTag = tag }
}

// New assembles suiteID (an IETF suite label such as
// "BLS12381G1_XMD:SHA-256_SSWU_RO_") with any optional tags and validates
// the 255-byte bound.
func New(suiteID string, opts ...Option) (DST, error) {
	b := build{}
	for _, opt := range opts {
		opt(&b)
	}

	tag := suiteID
	if b.appTag != "" {
		tag = fmt.Sprintf("%s%s", tag, b.appTag)
	}
	if b.versionTag != "" {
		tag = fmt.Sprintf("%s-%s", tag, b.versionTag)
	}

	d := DST{bytes: []byte(tag)}
	if len(d.bytes) > 255 {
		return DST{}, fmt.Errorf("dst: %q: %w", tag, ErrTooLong)
	}
	return d, nil
}

// Bytes returns the validated tag's raw bytes, ready to hand to
// internal/expand's XMD/XOF functions.
func (d DST) Bytes() []byte {
	return append([]byte{}, d.bytes...)
}

// String renders the tag for logging/debugging.
func (d DST) String() string {
	return string(d.bytes)
}

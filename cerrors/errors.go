// Package cerrors is the error taxonomy shared by the bytecode, source,
// and compiler packages. It follows a two-tier marker
// convention: failures that surface to a caller of the public API are
// marked "💥"; internal invariant violations are marked "🤖".
package cerrors

import "fmt"

// CompilerError is the generic umbrella variant; more specific variants
// below are preferred where they apply.
type CompilerError struct {
	Message string
}

func (e CompilerError) Error() string { return fmt.Sprintf("💥 %s", e.Message) }

// UnsupportedInputFormatError is raised when a filename or explicit format
// hint does not match any known input format.
type UnsupportedInputFormatError struct {
	Filename string
	Format   string
}

func (e UnsupportedInputFormatError) Error() string {
	if e.Filename != "" {
		return fmt.Sprintf("💥 unsupported input format for file %q", e.Filename)
	}
	return fmt.Sprintf("💥 unsupported input format: %q", e.Format)
}

// InvalidColorError is a front-end validation failure on an RGBColor literal.
type InvalidColorError struct {
	Reason string
}

func (e InvalidColorError) Error() string { return fmt.Sprintf("💥 invalid color: %s", e.Reason) }

// InvalidDurationError is a front-end validation failure on a Duration literal.
type InvalidDurationError struct {
	Reason string
}

func (e InvalidDurationError) Error() string {
	return fmt.Sprintf("💥 invalid duration: %s", e.Reason)
}

// DuplicateLabelError is raised by a label-resolution pass when two
// LabelMarker nodes share a name. No pass in this repository currently
// resolves labels, but the variant is part of the taxonomy.
type DuplicateLabelError struct {
	Label string
}

func (e DuplicateLabelError) Error() string {
	return fmt.Sprintf("💥 duplicate label: %q", e.Label)
}

// BytecodeParserError is a decoder failure that names the class of node
// whose parse was in progress when the failure was detected.
type BytecodeParserError struct {
	NodeClass string
	Reason    string
}

func (e BytecodeParserError) Error() string {
	return fmt.Sprintf("💥 failed to parse %s from bytecode: %s", e.NodeClass, e.Reason)
}

// BytecodeParserEOFError is the BytecodeParserError subvariant raised when
// the byte stream ends mid-parse.
type BytecodeParserEOFError struct {
	NodeClass string
}

func (e BytecodeParserEOFError) Error() string {
	return fmt.Sprintf("💥 unexpected end of bytecode while parsing %s", e.NodeClass)
}

// MarkerNotResolvableError wraps ir.ErrUnresolvedMarker at the encoder
// boundary, where the generic ir-level error is translated into the named
// taxonomy variant the public API uses at that boundary.
type MarkerNotResolvableError struct {
	Name string
}

func (e MarkerNotResolvableError) Error() string {
	return fmt.Sprintf("💥 marker not resolvable: %s", e.Name)
}

// FeatureNotImplementedError is reserved for easing modes other than linear
// nothing in this repository raises it yet, but the variant
// exists so a future non-linear fade implementation has somewhere to signal
// from.
type FeatureNotImplementedError struct {
	Feature string
}

func (e FeatureNotImplementedError) Error() string {
	return fmt.Sprintf("🤖 feature not implemented: %s", e.Feature)
}

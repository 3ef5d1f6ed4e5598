// Package compiler is the facade: format autodetection, stage wiring
// through the plan package, and a single Compile entry point that strings
// parsing, optimisation, and emission together behind one call.
package compiler

import (
	"path/filepath"
	"strings"

	"ledctrl/cerrors"
)

// Format names one of the four representations a program can take on disk.
type Format int

const (
	FormatUnknown Format = iota
	FormatBinary
	FormatSource
	FormatJSON
	FormatAST
)

func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatSource:
		return "source"
	case FormatJSON:
		return "json"
	case FormatAST:
		return "ast"
	default:
		return "unknown"
	}
}

// DetectInputFormat maps a filename's extension to the format used to
// parse it. FormatAST is treated as implementation-defined here: with no
// pickled-AST reader in this stack, it is handled identically to the JSON
// container.
func DetectInputFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".led", ".oled":
		return FormatSource, nil
	case ".bin", ".sbl":
		return FormatBinary, nil
	case ".json":
		return FormatJSON, nil
	case ".ast":
		return FormatAST, nil
	default:
		return FormatUnknown, cerrors.UnsupportedInputFormatError{Filename: filename}
	}
}

// DetectOutputFormat maps a filename's extension to the format used to
// emit it, defaulting to binary when the extension is not recognized (the
// suffix map's "binary default on output" fallback).
func DetectOutputFormat(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".led", ".oled":
		return FormatSource
	case ".json":
		return FormatJSON
	case ".ast":
		return FormatAST
	default:
		return FormatBinary
	}
}

// ParseFormatHint converts an explicit --format flag value to a Format.
func ParseFormatHint(hint string) (Format, error) {
	switch strings.ToLower(hint) {
	case "source", "led":
		return FormatSource, nil
	case "binary", "bin":
		return FormatBinary, nil
	case "json":
		return FormatJSON, nil
	case "ast":
		return FormatAST, nil
	default:
		return FormatUnknown, cerrors.UnsupportedInputFormatError{Format: hint}
	}
}

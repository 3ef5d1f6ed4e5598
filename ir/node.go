package ir

import (
	"fmt"
	"strings"
)

// Node is satisfied by every value in the intermediate representation: it
// knows its own encoded length without performing the encoding, can encode
// itself to the wire bytecode, and can render itself in the canonical
// textual source form.
type Node interface {
	EncodedLength() int
	EncodeBinary() ([]byte, error)
	EncodeSource() string
}

// Statement is a Node that may appear as an element of a StatementSequence:
// a command, a LoopBlock, a Comment, or an unresolved marker. Statements can
// additionally be compared for semantic equivalence with another statement
// of the same concrete type.
type Statement interface {
	Node
	Equivalent(other Statement) bool
	isStatement()
}

// ErrUnresolvedMarker is returned by EncodeBinary on a LabelMarker or
// JumpMarker: the codec never emits an unresolved forward reference, per
// resolvable marker (MarkerNotResolvable).
type ErrUnresolvedMarker struct {
	Name string
}

func (e ErrUnresolvedMarker) Error() string {
	return fmt.Sprintf("💥 marker not resolvable: %s", e.Name)
}

// StatementSequence is an ordered list of statements. It is the body of a
// program and of every LoopBlock.
type StatementSequence struct {
	Statements []Statement
}

func NewStatementSequence(statements ...Statement) *StatementSequence {
	return &StatementSequence{Statements: statements}
}

func (s *StatementSequence) EncodedLength() int {
	total := 0
	for _, stmt := range s.Statements {
		total += stmt.EncodedLength()
	}
	return total
}

func (s *StatementSequence) EncodeBinary() ([]byte, error) {
	var out []byte
	for _, stmt := range s.Statements {
		encoded, err := stmt.EncodeBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, encoded...)
	}
	return out, nil
}

func (s *StatementSequence) EncodeSource() string {
	lines := make([]string, 0, len(s.Statements))
	for _, stmt := range s.Statements {
		text := stmt.EncodeSource()
		if text == "" {
			continue
		}
		lines = append(lines, text)
	}
	return strings.Join(lines, "\n")
}

// Equivalent compares two statement sequences element-wise.
func (s *StatementSequence) Equivalent(other *StatementSequence) bool {
	if len(s.Statements) != len(other.Statements) {
		return false
	}
	for i, stmt := range s.Statements {
		if !stmt.Equivalent(other.Statements[i]) {
			return false
		}
	}
	return true
}

// Comment is a free-text annotation. It contributes nothing to the binary
// encoding and is erased by a binary round-trip; the source encoder emits
// it as a delimited banner, and the source parser preserves it.
type Comment struct {
	Text string
}

func (Comment) isStatement()             {}
func (Comment) EncodedLength() int       { return 0 }
func (Comment) EncodeBinary() ([]byte, error) { return nil, nil }

func (c Comment) EncodeSource() string {
	bar := strings.Repeat("-", 40)
	return fmt.Sprintf("# %s\n# %s\n# %s", bar, c.Text, bar)
}

func (c Comment) Equivalent(other Statement) bool {
	o, ok := other.(Comment)
	return ok && o.Text == c.Text
}

// LoopBlock repeats its Body a fixed number of times. An
// Iterations value of 0 is only reachable from a programmatically
// constructed AST (the binary decoder rejects a zero count): it encodes to
// zero bytes, and the interpreter treats it as an infinite repeat.
type LoopBlock struct {
	Iterations UnsignedByte
	Body       *StatementSequence
}

func (LoopBlock) isStatement() {}

func (l LoopBlock) EncodedLength() int {
	switch {
	case l.Iterations == 0 || len(l.Body.Statements) == 0:
		return 0
	case l.Iterations == 1:
		return l.Body.EncodedLength()
	default:
		return 1 + 1 + l.Body.EncodedLength() + 1
	}
}

func (l LoopBlock) EncodeBinary() ([]byte, error) {
	switch {
	case l.Iterations == 0 || len(l.Body.Statements) == 0:
		return nil, nil
	case l.Iterations == 1:
		return l.Body.EncodeBinary()
	default:
		body, err := l.Body.EncodeBinary()
		if err != nil {
			return nil, err
		}
		out := []byte{byte(CodeLoopBegin), byte(l.Iterations)}
		out = append(out, body...)
		out = append(out, byte(CodeLoopEnd))
		return out, nil
	}
}

func (l LoopBlock) EncodeSource() string {
	switch {
	case l.Iterations == 0 || len(l.Body.Statements) == 0:
		return ""
	case l.Iterations == 1:
		return l.Body.EncodeSource()
	default:
		body := l.Body.EncodeSource()
		indented := indentLines(body, "    ")
		return fmt.Sprintf("with loop(iterations=%d):\n%s", int(l.Iterations), indented)
	}
}

func (l LoopBlock) Equivalent(other Statement) bool {
	o, ok := other.(LoopBlock)
	if !ok {
		return false
	}
	return o.Iterations == l.Iterations && l.Body.Equivalent(o.Body)
}

func indentLines(text, prefix string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// LabelMarker and JumpMarker are forward-reference placeholders for a
// labeled jump target that has not yet been resolved to a byte address.
// No optimisation pass in this repository emits them ("current
// passes do not emit labels"); they exist so that the binary codec has a
// concrete unresolved-marker case to reject with ErrUnresolvedMarker, and
// so a future label-resolving pass has a node to consume.
type LabelMarker struct {
	Name string
}

func (LabelMarker) isStatement()       {}
func (LabelMarker) EncodedLength() int { return 0 }
func (m LabelMarker) EncodeBinary() ([]byte, error) {
	return nil, ErrUnresolvedMarker{Name: m.Name}
}
func (m LabelMarker) EncodeSource() string { return fmt.Sprintf("label(%q)", m.Name) }
func (m LabelMarker) Equivalent(other Statement) bool {
	o, ok := other.(LabelMarker)
	return ok && o.Name == m.Name
}

type JumpMarker struct {
	Label string
}

func (JumpMarker) isStatement()       {}
func (JumpMarker) EncodedLength() int { return 0 }
func (m JumpMarker) EncodeBinary() ([]byte, error) {
	return nil, ErrUnresolvedMarker{Name: m.Label}
}
func (m JumpMarker) EncodeSource() string { return fmt.Sprintf("jump(%q)", m.Label) }
func (m JumpMarker) Equivalent(other Statement) bool {
	o, ok := other.(JumpMarker)
	return ok && o.Label == m.Label
}

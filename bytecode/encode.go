package bytecode

import (
	"errors"

	"ledctrl/cerrors"
	"ledctrl/ir"
)

// Encode serialises a program to the wire bytecode. Encoding itself is
// per-node (see ir.Node.EncodeBinary); this wrapper only translates the
// generic ir.ErrUnresolvedMarker into the named cerrors.MarkerNotResolvableError
// that callers need to see.
func Encode(seq *ir.StatementSequence) ([]byte, error) {
	data, err := seq.EncodeBinary()
	if err != nil {
		var unresolved ir.ErrUnresolvedMarker
		if errors.As(err, &unresolved) {
			return nil, cerrors.MarkerNotResolvableError{Name: unresolved.Name}
		}
		return nil, err
	}
	return data, nil
}

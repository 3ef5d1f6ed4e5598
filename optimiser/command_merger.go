package optimiser

import "ledctrl/ir"

// CommandMerger collapses runs of commands that refer to the same color (or
// that merely hold time) within a StatementSequence into a single command,
// preserving total duration exactly.
type CommandMerger struct{}

func (CommandMerger) Optimise(program *ir.StatementSequence) bool {
	return walkSequences(program, mergeStatementSequence)
}

func mergeStatementSequence(seq *ir.StatementSequence) bool {
	body := seq.Statements
	index := 0
	changed := false
	for index < len(body) {
		var replacement []ir.Statement
		switch stmt := body[index].(type) {
		case ir.SetColorCommand:
			replacement = mergeSetColorRun(body, index, stmt.Color)
		case ir.FadeToColorCommand:
			replacement = mergeFadeToColorRun(body, index, stmt)
		case ir.SleepCommand:
			replacement = mergeSleepRun(body, index)
		}
		if replacement != nil {
			body = spliceStatements(body, index, replacementLength(body, index, replacement), replacement)
			index += len(replacement)
			changed = true
		} else {
			index++
		}
	}
	seq.Statements = body
	return changed
}

// replacementLength recomputes how many original statements the just-built
// replacement consumed. mergeSetColorRun/mergeFadeToColorRun/mergeSleepRun
// return only the replacement, not the run length, so instead of threading
// an extra return value through every call site we recompute the run length
// with the same scan the merge function used. Kept as a small helper so each
// merge function's body reads as a single straight-line scan.
func replacementLength(body []ir.Statement, index int, replacement []ir.Statement) int {
	switch first := replacement[0].(type) {
	case ir.SetColorCommand:
		return scanRunLength(body, index, func(s ir.Statement) bool { return matchesColorRun(s, first.Color) })
	case ir.SleepCommand:
		return scanRunLength(body, index, isSleep)
	case ir.FadeToColorCommand:
		n := 1
		for i := index + 1; i < len(body); i++ {
			if !matchesColorRun(body[i], first.Color) {
				break
			}
			n++
		}
		return n
	}
	return len(replacement)
}

func scanRunLength(body []ir.Statement, index int, match func(ir.Statement) bool) int {
	n := 0
	for i := index; i < len(body) && match(body[i]); i++ {
		n++
	}
	return n
}

func isSleep(s ir.Statement) bool {
	_, ok := s.(ir.SleepCommand)
	return ok
}

func matchesColorRun(s ir.Statement, color *ir.RGBColor) bool {
	switch n := s.(type) {
	case ir.SetColorCommand:
		return n.Color.Equals(color)
	case ir.FadeToColorCommand:
		return n.Color.Equals(color)
	case ir.SleepCommand:
		return true
	}
	return false
}

func durationOf(s ir.Statement) int {
	switch n := s.(type) {
	case ir.SetColorCommand:
		return n.Duration.Frames()
	case ir.FadeToColorCommand:
		return n.Duration.Frames()
	case ir.SleepCommand:
		return n.Duration.Frames()
	}
	return 0
}

func mergeSetColorRun(body []ir.Statement, index int, color *ir.RGBColor) []ir.Statement {
	total := 0
	length := 0
	for i := index; i < len(body) && matchesColorRun(body[i], color); i++ {
		total += durationOf(body[i])
		length++
	}
	if length <= 1 {
		return nil
	}
	d, err := ir.NewDurationFromFrames(int64(total))
	if err != nil {
		return nil
	}
	return []ir.Statement{ir.SetColorCommand{Color: color, Duration: d}}
}

func mergeFadeToColorRun(body []ir.Statement, index int, first ir.FadeToColorCommand) []ir.Statement {
	total := 0
	length := 1
	for i := index + 1; i < len(body) && matchesColorRun(body[i], first.Color); i++ {
		total += durationOf(body[i])
		length++
	}
	if length <= 1 {
		return nil
	}
	if length == 2 {
		if _, ok := body[index+1].(ir.SleepCommand); ok {
			return nil
		}
	}
	d, err := ir.NewDurationFromFrames(int64(total))
	if err != nil {
		return nil
	}
	return []ir.Statement{first, ir.SleepCommand{Duration: d}}
}

func mergeSleepRun(body []ir.Statement, index int) []ir.Statement {
	total := 0
	length := 0
	for i := index; i < len(body) && isSleep(body[i]); i++ {
		total += durationOf(body[i])
		length++
	}
	if length <= 1 {
		return nil
	}
	d, err := ir.NewDurationFromFrames(int64(total))
	if err != nil {
		return nil
	}
	return []ir.Statement{ir.SleepCommand{Duration: d}}
}

// spliceStatements replaces body[index:index+length] with replacement and
// returns the resulting slice.
func spliceStatements(body []ir.Statement, index, length int, replacement []ir.Statement) []ir.Statement {
	out := make([]ir.Statement, 0, len(body)-length+len(replacement))
	out = append(out, body[:index]...)
	out = append(out, replacement...)
	out = append(out, body[index+length:]...)
	return out
}

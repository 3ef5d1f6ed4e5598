package optimiser

import "ledctrl/ir"

// maxLoopLen bounds the window of consecutive statements LoopDetector will
// consider collapsing into a single repeated body.
const maxLoopLen = 8

// maxLoopIterations is the largest iteration count a LoopBlock can encode
// (ir.UnsignedByte), and so the point at which a run stops growing.
const maxLoopIterations = 255

// LoopDetector finds runs of consecutive equivalent statement groups and
// collapses each into a single LoopBlock. It runs after CommandMerger and
// ColorCommandShortener in the composite, so by the time it sees a program
// most of what remains to loop over is already in its shortest per-command
// form.
type LoopDetector struct{}

func (LoopDetector) Optimise(program *ir.StatementSequence) bool {
	return walkSequences(program, loopDetectorPass)
}

func loopDetectorPass(seq *ir.StatementSequence) bool {
	body := seq.Statements
	index := 0
	changed := false
	for index < len(body) {
		bodyLen, iterations := bestLoopAt(body, index)
		if iterations <= 1 {
			index++
			continue
		}
		loopBody := ir.NewStatementSequence(append([]ir.Statement(nil), body[index:index+bodyLen]...)...)
		iterCount, err := ir.NewUnsignedByte(iterations)
		if err != nil {
			index++
			continue
		}
		loop := ir.LoopBlock{Iterations: iterCount, Body: loopBody}
		consumed := bodyLen * iterations
		body = spliceStatements(body, index, consumed, []ir.Statement{loop})
		index++
		changed = true
	}
	seq.Statements = body
	return changed
}

// bestLoopAt finds, among window lengths 1..maxLoopLen, the one whose
// resulting LoopBlock would have the smallest encoded length once the
// repeated run starting at index is collapsed. It returns (0, 0) if no
// window repeats more than once.
func bestLoopAt(body []ir.Statement, index int) (bodyLen, iterations int) {
	bestEncodedLen := -1
	for k := 1; k <= maxLoopLen && index+k <= len(body); k++ {
		n := identifyLoopIterationCount(body, index, k)
		if n <= 1 {
			continue
		}
		loopBody := ir.NewStatementSequence(append([]ir.Statement(nil), body[index:index+k]...)...)
		iterCount, err := ir.NewUnsignedByte(n)
		if err != nil {
			continue
		}
		candidate := ir.LoopBlock{Iterations: iterCount, Body: loopBody}
		encodedLen := candidate.EncodedLength()
		if bestEncodedLen == -1 || encodedLen < bestEncodedLen {
			bestEncodedLen = encodedLen
			bodyLen, iterations = k, n
		}
	}
	return bodyLen, iterations
}

// identifyLoopIterationCount counts how many consecutive times the
// bodyLen-statement window starting at startIndex repeats verbatim
// (statement-by-statement Equivalent), capped at maxLoopIterations.
func identifyLoopIterationCount(statements []ir.Statement, startIndex, bodyLen int) int {
	iterations := 1
	for {
		nextStart := startIndex + iterations*bodyLen
		if nextStart+bodyLen > len(statements) || iterations >= maxLoopIterations {
			break
		}
		matches := true
		for i := 0; i < bodyLen; i++ {
			if !statements[startIndex+i].Equivalent(statements[nextStart+i]) {
				matches = false
				break
			}
		}
		if !matches {
			break
		}
		iterations++
	}
	return iterations
}

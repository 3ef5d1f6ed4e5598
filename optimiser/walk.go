package optimiser

import "ledctrl/ir"

// walkSequences applies fn to every StatementSequence reachable from root,
// including the bodies of nested LoopBlocks, recursing into children before
// applying fn to the containing sequence — at the top level and inside
// every loop body.
func walkSequences(seq *ir.StatementSequence, fn func(*ir.StatementSequence) bool) bool {
	changed := false
	for _, stmt := range seq.Statements {
		if lb, ok := stmt.(ir.LoopBlock); ok {
			if walkSequences(lb.Body, fn) {
				changed = true
			}
		}
	}
	if fn(seq) {
		changed = true
	}
	return changed
}

// rewriteStatements replaces individual statements in place wherever
// rewrite returns a replacement, recursing into nested LoopBlock bodies.
// Used by passes that perform pointwise node replacement rather than
// sequence-level splicing (ColorCommandShortener).
func rewriteStatements(seq *ir.StatementSequence, rewrite func(ir.Statement) (ir.Statement, bool)) bool {
	changed := false
	for i, stmt := range seq.Statements {
		if lb, ok := stmt.(ir.LoopBlock); ok {
			if rewriteStatements(lb.Body, rewrite) {
				changed = true
			}
			continue
		}
		if replacement, ok := rewrite(stmt); ok {
			seq.Statements[i] = replacement
			changed = true
		}
	}
	return changed
}

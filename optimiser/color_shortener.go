package optimiser

import "ledctrl/ir"

// ColorCommandShortener replaces color-related commands with variants that
// take fewer bytes to encode: set_color/fade_to_color collapse to
// set_black/set_white/set_gray (and fade_to_* equivalents) when the color is
// black, white, or gray; set_gray/fade_to_gray collapse further when the
// value is 0 or 255.
type ColorCommandShortener struct{}

func (ColorCommandShortener) Optimise(program *ir.StatementSequence) bool {
	return rewriteStatements(program, shortenColorCommand)
}

func shortenColorCommand(stmt ir.Statement) (ir.Statement, bool) {
	switch n := stmt.(type) {
	case ir.SetColorCommand:
		switch {
		case n.Color.IsWhite():
			return ir.SetWhiteCommand{Duration: n.Duration}, true
		case n.Color.IsBlack():
			return ir.SetBlackCommand{Duration: n.Duration}, true
		case n.Color.IsGray():
			return ir.SetGrayCommand{Value: n.Color.R, Duration: n.Duration}, true
		}
	case ir.SetGrayCommand:
		switch n.Value {
		case 255:
			return ir.SetWhiteCommand{Duration: n.Duration}, true
		case 0:
			return ir.SetBlackCommand{Duration: n.Duration}, true
		}
	case ir.FadeToColorCommand:
		switch {
		case n.Color.IsWhite():
			return ir.FadeToWhiteCommand{Duration: n.Duration}, true
		case n.Color.IsBlack():
			return ir.FadeToBlackCommand{Duration: n.Duration}, true
		case n.Color.IsGray():
			return ir.FadeToGrayCommand{Value: n.Color.R, Duration: n.Duration}, true
		}
	case ir.FadeToGrayCommand:
		switch n.Value {
		case 255:
			return ir.FadeToWhiteCommand{Duration: n.Duration}, true
		case 0:
			return ir.FadeToBlackCommand{Duration: n.Duration}, true
		}
	}
	return stmt, false
}

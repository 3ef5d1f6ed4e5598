package source

import (
	"encoding/json"
	"fmt"
	"os"

	"ledctrl/ir"
)

// DumpJSON converts a parsed program into a JSON-friendly representation
// for debugging, the way a parser's AST printer shows the tree it built.
// Since ir.Statement has no visitor interface of its own, this is a type
// switch over the concrete node kinds rather than an Accept call.
func DumpJSON(program *ir.StatementSequence) (string, error) {
	out := dumpSequence(program)
	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// WriteJSONToFile writes DumpJSON's output to path.
func WriteJSONToFile(program *ir.StatementSequence, path string) error {
	s, err := DumpJSON(program)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(s), 0o644)
}

func dumpSequence(seq *ir.StatementSequence) []any {
	out := make([]any, 0, len(seq.Statements))
	for _, stmt := range seq.Statements {
		out = append(out, dumpStatement(stmt))
	}
	return out
}

func dumpStatement(stmt ir.Statement) any {
	switch n := stmt.(type) {
	case ir.EndCommand:
		return map[string]any{"type": "EndCommand"}
	case ir.NopCommand:
		return map[string]any{"type": "NopCommand"}
	case ir.ResetTimerCommand:
		return map[string]any{"type": "ResetTimerCommand"}
	case ir.SleepCommand:
		return map[string]any{"type": "SleepCommand", "duration": n.Duration.Frames()}
	case ir.WaitUntilCommand:
		return map[string]any{"type": "WaitUntilCommand", "timestamp": n.Timestamp.Value()}
	case ir.SetColorCommand:
		return map[string]any{"type": "SetColorCommand", "color": dumpColor(n.Color), "duration": n.Duration.Frames()}
	case ir.SetGrayCommand:
		return map[string]any{"type": "SetGrayCommand", "value": n.Value.Value(), "duration": n.Duration.Frames()}
	case ir.SetBlackCommand:
		return map[string]any{"type": "SetBlackCommand", "duration": n.Duration.Frames()}
	case ir.SetWhiteCommand:
		return map[string]any{"type": "SetWhiteCommand", "duration": n.Duration.Frames()}
	case ir.FadeToColorCommand:
		return map[string]any{"type": "FadeToColorCommand", "color": dumpColor(n.Color), "duration": n.Duration.Frames()}
	case ir.FadeToGrayCommand:
		return map[string]any{"type": "FadeToGrayCommand", "value": n.Value.Value(), "duration": n.Duration.Frames()}
	case ir.FadeToBlackCommand:
		return map[string]any{"type": "FadeToBlackCommand", "duration": n.Duration.Frames()}
	case ir.FadeToWhiteCommand:
		return map[string]any{"type": "FadeToWhiteCommand", "duration": n.Duration.Frames()}
	case ir.SetColorFromChannelsCommand:
		return map[string]any{
			"type": "SetColorFromChannelsCommand",
			"rch":  n.RCh.Value(), "gch": n.GCh.Value(), "bch": n.BCh.Value(),
			"duration": n.Duration.Frames(),
		}
	case ir.FadeToColorFromChannelsCommand:
		return map[string]any{
			"type": "FadeToColorFromChannelsCommand",
			"rch":  n.RCh.Value(), "gch": n.GCh.Value(), "bch": n.BCh.Value(),
			"duration": n.Duration.Frames(),
		}
	case ir.JumpCommand:
		return map[string]any{"type": "JumpCommand", "address": n.Address.Value()}
	case ir.TriggeredJumpCommand:
		return map[string]any{"type": "TriggeredJumpCommand", "address": n.Address.Value()}
	case ir.SetPyroCommand:
		return map[string]any{"type": "SetPyroCommand", "mask": n.Mask.String()}
	case ir.SetPyroAllCommand:
		return map[string]any{"type": "SetPyroAllCommand", "values": n.Values.String()}
	case ir.LabelMarker:
		return map[string]any{"type": "LabelMarker", "name": n.Name}
	case ir.JumpMarker:
		return map[string]any{"type": "JumpMarker", "label": n.Label}
	case ir.Comment:
		return map[string]any{"type": "Comment", "text": n.Text}
	case ir.LoopBlock:
		return map[string]any{
			"type":       "LoopBlock",
			"iterations": n.Iterations.Value(),
			"body":       dumpSequence(n.Body),
		}
	default:
		return map[string]any{"type": fmt.Sprintf("%T", stmt)}
	}
}

func dumpColor(c *ir.RGBColor) any {
	return map[string]any{"r": c.R.Value(), "g": c.G.Value(), "b": c.B.Value()}
}

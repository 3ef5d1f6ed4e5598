package interpreter

import (
	"math"

	"ledctrl/ir"
)

// framesBetween returns the timestamps, in seconds, of every whole frame
// strictly between start and end at the given frame rate. The start index
// rounds down and the end index rounds up so the endpoints are excluded.
func framesBetween(start, end, fps float64) []float64 {
	startIndex := int(math.Floor(start * fps))
	endIndex := int(math.Ceil(end * fps))
	if endIndex <= startIndex+1 {
		return nil
	}
	out := make([]float64, 0, endIndex-startIndex-1)
	for i := startIndex + 1; i < endIndex; i++ {
		out = append(out, float64(i)/fps)
	}
	return out
}

// Unroll consumes every state produced by seq and returns a sequence with a
// synthetic intermediate state inserted at every whole frame that falls
// strictly inside a fade (color obtained by linearly interpolating between
// the fade's endpoints, rounded per channel), then collapses any states
// that share a timestamp down to the last one.
func Unroll(seq StateFunc) StateFunc {
	return func(yield func(ExecutorState) bool) {
		var states []ExecutorState
		seq(func(s ExecutorState) bool {
			states = append(states, s)
			return true
		})
		emitDeduped(unrollOnce(states), yield)
	}
}

func unrollOnce(states []ExecutorState) []ExecutorState {
	prev := initialState()
	out := make([]ExecutorState, 0, len(states))
	for _, cur := range states {
		if cur.IsFade {
			cur.IsFade = false
			length := cur.Timestamp - prev.Timestamp
			if length > 0 {
				for _, ts := range framesBetween(prev.Timestamp, cur.Timestamp, ir.FPS) {
					extra := cur
					ratio := (ts - prev.Timestamp) / length
					extra.Color = prev.Color.MixWith(cur.Color, ratio)
					extra.Timestamp = ts
					out = append(out, extra)
				}
			}
		}
		out = append(out, cur)
		prev = cur
	}
	return out
}

// emitDeduped yields the last state of every run of consecutive states that
// share a timestamp.
func emitDeduped(states []ExecutorState, yield func(ExecutorState) bool) {
	for i := 0; i < len(states); {
		j := i
		for j+1 < len(states) && states[j+1].Timestamp == states[i].Timestamp {
			j++
		}
		if !yield(states[j]) {
			return
		}
		i = j + 1
	}
}

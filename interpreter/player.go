package interpreter

import (
	"ledctrl/ir"
	"ledctrl/vm"
)

// maxBufferedEvents bounds the Player's event window so an endless program
// (a LoopBlock with Iterations==0) cannot grow the buffer without limit.
// A ColorAt query landing behind the window's oldest event triggers a
// restart rather than a buffer hit.
const maxBufferedEvents = 32

// Player answers random-access color queries against a program's executor
// output, pulling further events from the underlying walk only as needed —
// this matters because a LoopBlock with Iterations==0 repeats forever, so
// eagerly materializing the whole sequence is not an option. The lazy pull
// is implemented with a producer goroutine feeding a channel, since Go has
// no generator/coroutine primitive to pause a StateFunc mid-walk.
type Player struct {
	program *ir.StatementSequence

	events        vm.Deque[ExecutorState]
	lastEventTime float64

	pending   chan ExecutorState
	stop      chan struct{}
	exhausted bool
}

// NewPlayer starts walking program lazily; no event is pulled until the
// first ColorAt call.
func NewPlayer(program *ir.StatementSequence) *Player {
	p := &Player{program: program}
	p.restart()
	return p
}

func (p *Player) restart() {
	p.Close()
	p.events = vm.Deque[ExecutorState]{}
	p.lastEventTime = 0
	p.exhausted = false
	p.pending = make(chan ExecutorState)
	p.stop = make(chan struct{})

	pending, stop, program := p.pending, p.stop, p.program
	go func() {
		defer close(pending)
		exec := NewExecutor()
		exec.Walk(program)(func(s ExecutorState) bool {
			select {
			case pending <- s:
				return true
			case <-stop:
				return false
			}
		})
	}()
}

// Close abandons the underlying walk goroutine. Safe to call multiple
// times; a Player that is queried again after Close restarts automatically.
func (p *Player) Close() {
	if p.stop != nil {
		select {
		case <-p.stop:
		default:
			close(p.stop)
		}
	}
}

func (p *Player) pull() (ExecutorState, bool) {
	s, ok := <-p.pending
	if !ok {
		p.exhausted = true
	}
	return s, ok
}

// ColorAt returns the strip's color at timestamp t (in seconds), and false
// only if no event is buffered (the program produced none, or a fresh walk
// is queried at t <= 0); a t at or before the first buffered event yields
// that event's color. If t precedes the front of the buffered window, or the
// Player was closed, the walk is restarted from the beginning and replayed
// up to t; otherwise the executor is advanced only as far as necessary.
func (p *Player) ColorAt(t float64) (*ir.RGBColor, bool) {
	select {
	case <-p.stop:
		p.restart()
	default:
		if front, ok := p.events.Front(); ok && t < front.Timestamp {
			p.restart()
		}
	}
	for !p.exhausted && p.lastEventTime < t {
		s, ok := p.pull()
		if !ok {
			break
		}
		p.events.PushBack(s)
		p.lastEventTime = s.Timestamp
		if p.events.Len() > maxBufferedEvents {
			p.events.ShiftFront()
		}
	}
	return p.bracketColorAt(t)
}

// bracketColorAt locates the bracketing pair of buffered events around t and
// returns the color implied by that bracket: the starting color if the
// bracket's end is not a fade, otherwise the linearly interpolated color at
// t within the fade.
func (p *Player) bracketColorAt(t float64) (*ir.RGBColor, bool) {
	if p.events.IsEmpty() {
		return nil, false
	}
	first, _ := p.events.At(0)
	if t <= first.Timestamp {
		return first.Color, true
	}
	for i := 1; i < p.events.Len(); i++ {
		prev, _ := p.events.At(i - 1)
		cur, _ := p.events.At(i)
		if t > cur.Timestamp {
			continue
		}
		if !cur.IsFade {
			return prev.Color, true
		}
		length := cur.Timestamp - prev.Timestamp
		if length <= 0 {
			return cur.Color, true
		}
		ratio := (t - prev.Timestamp) / length
		return prev.Color.MixWith(cur.Color, ratio), true
	}
	last, _ := p.events.Back()
	return last.Color, true
}

// Package tick provides the per-frame scheduling primitive that animated
// components subscribe to. The host advances a Loop once per frame; tests
// advance it by hand.
package tick

// Source delivers one call per frame to every subscriber until cancelled.
type Source interface {
	Subscribe(fn func()) (cancel func())
}

type subscriber struct {
	fn     func()
	active bool
}

// Loop is a Source driven explicitly through Advance.
type Loop struct {
	subs   []*subscriber
	frames uint64
}

func NewLoop() *Loop {
	return &Loop{}
}

// Subscribe registers fn for every following Advance. The returned cancel
// func is idempotent and may be called from inside fn.
func (l *Loop) Subscribe(fn func()) func() {
	s := &subscriber{fn: fn, active: true}
	l.subs = append(l.subs, s)
	return func() {
		if !s.active {
			return
		}
		s.active = false
		for i, other := range l.subs {
			if other == s {
				l.subs = append(l.subs[:i], l.subs[i+1:]...)
				break
			}
		}
	}
}

// Advance runs one frame. Subscribers added during the frame first run on
// the next one; subscribers cancelled during the frame are skipped.
func (l *Loop) Advance() {
	l.frames++
	current := make([]*subscriber, len(l.subs))
	copy(current, l.subs)
	for _, s := range current {
		if s.active {
			s.fn()
		}
	}
}

// Len returns the number of live subscribers.
func (l *Loop) Len() int { return len(l.subs) }

// Frames returns how many times Advance has run.
func (l *Loop) Frames() uint64 { return l.frames }

package cursor

// Target is a hoverable element as seen by the indicator.
type Target struct {
	ID      string
	Role    string
	Classes []string
}

// TargetQuery lists the elements currently on the page.
type TargetQuery func() []Target

// Selector matches targets by role or class, like "a, button, .interactive".
type Selector []string

// Match reports whether t's role or any of its classes is in s.
func (s Selector) Match(t Target) bool {
	for _, want := range s {
		if t.Role == want {
			return true
		}
		for _, class := range t.Classes {
			if class == want {
				return true
			}
		}
	}
	return false
}

package js_minifier

// This is the depth used when no explicit limit is configured
const DefaultStackLimit = 1000

// StateStack holds the states to return to when a bracket closes. It is
// bounded so hostile input with deeply nested brackets can't grow it without
// limit. Pushes beyond the limit are dropped, which only makes the minifier
// lose track of the outer context.
type StateStack struct {
	items []State
	limit int
}

func NewStateStack(limit int) StateStack {
	if limit <= 0 {
		limit = DefaultStackLimit
	}
	return StateStack{limit: limit}
}

// Push returns false if the stack was full and the state was dropped
func (s *StateStack) Push(state State) bool {
	if len(s.items) >= s.limit {
		return false
	}
	s.items = append(s.items, state)
	return true
}

// Template literals use this for their bookkeeping entries. Dropping one of
// those would make the scanner miss the end of a "${" substitution.
func (s *StateStack) forcePush(state State) {
	s.items = append(s.items, state)
}

// Pop on an empty stack is a no-op that returns false
func (s *StateStack) Pop() (State, bool) {
	n := len(s.items)
	if n == 0 {
		return State{}, false
	}
	top := s.items[n-1]
	s.items = s.items[:n-1]
	return top, true
}

func (s *StateStack) Peek() (State, bool) {
	if n := len(s.items); n > 0 {
		return s.items[n-1], true
	}
	return State{}, false
}

func (s *StateStack) Len() int {
	return len(s.items)
}

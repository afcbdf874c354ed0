package appstate

import "errors"

// ErrEmptyStack is returned when an operation would leave the stack empty.
var ErrEmptyStack = errors.New("appstate: mode stack would be empty")

// Stack is a last-in-first-out stack of modes. It is never empty.
type Stack struct {
	modes []Mode
}

func NewStack(initial Mode) *Stack {
	return &Stack{modes: []Mode{initial}}
}

func (s *Stack) Top() Mode {
	return s.modes[len(s.modes)-1]
}

func (s *Stack) Len() int {
	return len(s.modes)
}

// Modes returns a copy of the stack, bottom first.
func (s *Stack) Modes() []Mode {
	out := make([]Mode, len(s.modes))
	copy(out, s.modes)
	return out
}

func (s *Stack) Push(m Mode) {
	s.modes = append(s.modes, m)
}

// Pop removes the top mode. Popping the last mode fails and leaves the
// stack unchanged.
func (s *Stack) Pop() (Mode, error) {
	if len(s.modes) <= 1 {
		return s.Top(), ErrEmptyStack
	}
	top := s.Top()
	s.modes = s.modes[:len(s.modes)-1]
	return top, nil
}

// Set replaces the top mode.
func (s *Stack) Set(m Mode) {
	s.modes[len(s.modes)-1] = m
}

// Reset drops everything and leaves m as the only mode.
func (s *Stack) Reset(m Mode) {
	s.modes = append(s.modes[:0], m)
}

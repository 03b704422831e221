package util

import "github.com/samber/mo"

// Stack is a LIFO used for back navigation.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
}

// Pop removes the top item, if any.
func (s *Stack[T]) Pop() mo.Option[T] {
	top := s.Peek()
	if top.IsPresent() {
		s.items = s.items[:len(s.items)-1]
	}
	return top
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() mo.Option[T] {
	if len(s.items) == 0 {
		return mo.None[T]()
	}
	return mo.Some(s.items[len(s.items)-1])
}

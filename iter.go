package unrolled

import "iter"

// Values returns a sequence over the elements front to back. The sequence can
// be ranged over any number of times.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for b := l.head; b != nil; b = b.next {
			for _, v := range b.slots[:b.count] {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Backward returns a sequence over the elements back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for b := l.tail; b != nil; b = b.prev {
			for i := b.count - 1; i >= 0; i-- {
				if !yield(b.slots[i]) {
					return
				}
			}
		}
	}
}

// ToSlice copies the elements into a new slice, front to back.
func (l *List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for b := l.head; b != nil; b = b.next {
		out = append(out, b.slots[:b.count]...)
	}
	return out
}

package unrolled

// Clone returns a deep, independent copy of l with the same node capacity
// and allocator.
func (l *List[T]) Clone() (*List[T], error) {
	l.lazyInit()
	return l.CloneWithAllocator(l.alloc)
}

// CloneWithAllocator copies l element by element into blocks from alloc.
func (l *List[T]) CloneWithAllocator(alloc Allocator[T]) (*List[T], error) {
	dst, err := NewWithAllocator(alloc, Options{NodeCapacity: l.capacity})
	if err != nil {
		return nil, err
	}
	if err := dst.AppendSeq(l.Values()); err != nil {
		dst.Clear()
		return nil, err
	}
	return dst, nil
}

// Assign replaces the contents of l with a copy of src. l keeps its own
// capacity and allocator. The copy is built before l is touched, so on error
// l is unchanged.
func (l *List[T]) Assign(src *List[T]) error {
	if src == l {
		return nil
	}
	return l.rebuild(func(tmp *List[T]) error { return tmp.AppendSeq(src.Values()) })
}

// AssignValues replaces the contents of l with vals.
func (l *List[T]) AssignValues(vals ...T) error {
	return l.rebuild(func(tmp *List[T]) error { return tmp.Append(vals...) })
}

func (l *List[T]) rebuild(fill func(tmp *List[T]) error) error {
	l.lazyInit()
	tmp := &List[T]{capacity: l.capacity, alloc: l.alloc}
	if err := fill(tmp); err != nil {
		tmp.Clear()
		return err
	}
	l.Clear()
	l.take(tmp)
	return nil
}

// Move transfers every block of l to a new list in O(1) and leaves l empty.
func (l *List[T]) Move() *List[T] {
	dst := &List[T]{}
	dst.MoveFrom(l)
	return dst
}

// MoveFrom clears l and takes over src's blocks, capacity and allocator.
// src is left empty.
func (l *List[T]) MoveFrom(src *List[T]) {
	if src == l {
		return
	}
	l.Clear()
	src.lazyInit()
	l.capacity, l.alloc = src.capacity, src.alloc
	l.take(src)
}

// MoveWithAllocator moves l's elements one by one into blocks from alloc,
// then clears l. Use it when the destination must not share l's allocator.
func (l *List[T]) MoveWithAllocator(alloc Allocator[T]) (*List[T], error) {
	dst, err := l.CloneWithAllocator(alloc)
	if err != nil {
		return nil, err
	}
	l.Clear()
	return dst, nil
}

// take links src's chain into the empty l and resets src. The moved blocks
// count as allocated by l and as freed by src, so both lists keep
// BlocksAllocated-BlocksFreed equal to their live block count.
func (l *List[T]) take(src *List[T]) {
	n := uint64(src.blocks)
	l.statAllocs += n
	src.statFrees += n
	l.head, l.tail = src.head, src.tail
	l.size, l.blocks = src.size, src.blocks
	src.head, src.tail = nil, nil
	src.size, src.blocks = 0, 0
}

// Equal reports whether a and b hold equal elements in the same order.
// A nil list compares as empty.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison. A nil list
// compares as empty.
func EqualFunc[T, U any](a *List[T], b *List[U], eq func(T, U) bool) bool {
	if a == nil {
		a = new(List[T])
	}
	if b == nil {
		b = new(List[U])
	}
	if a.Len() != b.Len() {
		return false
	}
	ca, cb := a.CBegin(), b.CBegin()
	for !ca.IsEnd() {
		if !eq(ca.Value(), cb.Value()) {
			return false
		}
		ca, cb = ca.Next(), cb.Next()
	}
	return true
}

package unrolled

// ReverseCursor walks a List back to front. It wraps a forward cursor base
// and dereferences the element just before base, so RBegin wraps End and
// REnd wraps Begin.
type ReverseCursor[T any] struct {
	base Cursor[T]
}

// Base returns the wrapped forward cursor.
func (r ReverseCursor[T]) Base() Cursor[T] { return r.base }

// Value returns the element just before Base.
func (r ReverseCursor[T]) Value() T { return r.base.Prev().Value() }

// Ptr returns a pointer to the element just before Base.
func (r ReverseCursor[T]) Ptr() *T { return r.base.Prev().Ptr() }

// Next moves toward the front of the list. Advancing REnd panics with
// ErrInvalidCursor rather than wrapping around to RBegin.
func (r ReverseCursor[T]) Next() ReverseCursor[T] {
	if atFront(r.base.p) {
		invalidCursor("Next")
	}
	return ReverseCursor[T]{r.base.Prev()}
}

// Prev moves toward the back of the list.
func (r ReverseCursor[T]) Prev() ReverseCursor[T] { return ReverseCursor[T]{r.base.Next()} }

// Equal reports whether r and o wrap the same position.
func (r ReverseCursor[T]) Equal(o ReverseCursor[T]) bool { return r.base.Equal(o.base) }

// Const returns the read-only form of r.
func (r ReverseCursor[T]) Const() ConstReverseCursor[T] {
	return ConstReverseCursor[T]{r.base.Const()}
}

// ConstReverseCursor is the read-only form of ReverseCursor.
type ConstReverseCursor[T any] struct {
	base ConstCursor[T]
}

// Base returns the wrapped forward cursor.
func (r ConstReverseCursor[T]) Base() ConstCursor[T] { return r.base }

// Value returns the element just before Base.
func (r ConstReverseCursor[T]) Value() T { return r.base.Prev().Value() }

// Next moves toward the front of the list and panics when advancing REnd.
func (r ConstReverseCursor[T]) Next() ConstReverseCursor[T] {
	if atFront(r.base.p) {
		invalidCursor("Next")
	}
	return ConstReverseCursor[T]{r.base.Prev()}
}

// Prev moves toward the back of the list.
func (r ConstReverseCursor[T]) Prev() ConstReverseCursor[T] {
	return ConstReverseCursor[T]{r.base.Next()}
}

// Equal reports whether r and o wrap the same position.
func (r ConstReverseCursor[T]) Equal(o ConstReverseCursor[T]) bool { return r.base.Equal(o.base) }

// atFront reports whether p is where REnd's base sits: the first element, or
// the end sentinel of an empty list.
func atFront[T any](p position[T]) bool {
	if p.blk == nil {
		return p.list == nil || p.list.head == nil
	}
	return p.idx == 0 && p.blk.prev == nil
}

// RBegin returns a reverse cursor to the last element; it wraps End.
func (l *List[T]) RBegin() ReverseCursor[T] { return ReverseCursor[T]{l.End()} }

// REnd returns the reverse end sentinel; it wraps Begin.
func (l *List[T]) REnd() ReverseCursor[T] { return ReverseCursor[T]{l.Begin()} }

// CRBegin is RBegin as a read-only cursor.
func (l *List[T]) CRBegin() ConstReverseCursor[T] { return l.RBegin().Const() }

// CREnd is REnd as a read-only cursor.
func (l *List[T]) CREnd() ConstReverseCursor[T] { return l.REnd().Const() }

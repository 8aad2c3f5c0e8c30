package unrolled

// position is the (block, index) pair shared by Cursor and ConstCursor. The
// end sentinel has a nil block and index 0. list is only consulted when
// retreating from the end sentinel.
type position[T any] struct {
	list *List[T]
	blk  *block[T]
	idx  int
}

func (p position[T]) next() position[T] {
	if p.blk == nil {
		invalidCursor("Next")
	}
	if p.idx+1 < p.blk.count {
		p.idx++
		return p
	}
	return position[T]{list: p.list, blk: p.blk.next}
}

// prev steps back one element. From the first element it collapses to the
// end sentinel; from the end sentinel it reaches the last element.
func (p position[T]) prev() position[T] {
	if p.blk == nil {
		if p.list == nil || p.list.tail == nil {
			invalidCursor("Prev")
		}
		t := p.list.tail
		return position[T]{list: p.list, blk: t, idx: t.count - 1}
	}
	if p.idx > 0 {
		p.idx--
		return p
	}
	pb := p.blk.prev
	if pb == nil {
		return position[T]{list: p.list}
	}
	return position[T]{list: p.list, blk: pb, idx: pb.count - 1}
}

// ref returns the slot p names. A released block has count 0, so cursors into
// it fail here as well.
func (p position[T]) ref(op string) *T {
	if p.blk == nil || p.idx >= p.blk.count {
		invalidCursor(op)
	}
	return &p.blk.slots[p.idx]
}

func (p position[T]) equal(o position[T]) bool {
	return p.blk == o.blk && p.idx == o.idx
}

// Cursor is a mutable bidirectional position in a List.
type Cursor[T any] struct {
	p position[T]
}

// IsEnd reports whether c is the end sentinel.
func (c Cursor[T]) IsEnd() bool { return c.p.blk == nil }

// Value returns the element under c. It panics with ErrInvalidCursor on the
// end sentinel or a cursor whose block was released.
func (c Cursor[T]) Value() T { return *c.p.ref("Value") }

// Ptr returns a pointer to the element under c.
func (c Cursor[T]) Ptr() *T { return c.p.ref("Ptr") }

// Set replaces the element under c.
func (c Cursor[T]) Set(v T) { *c.p.ref("Set") = v }

// Next returns the cursor one element forward, or the end sentinel. Advancing
// the end sentinel panics with ErrInvalidCursor.
func (c Cursor[T]) Next() Cursor[T] { return Cursor[T]{c.p.next()} }

// Prev returns the cursor one element back. Retreating from the first element
// yields the end sentinel; retreating from the end sentinel yields the last
// element.
func (c Cursor[T]) Prev() Cursor[T] { return Cursor[T]{c.p.prev()} }

// Equal reports whether both cursors name the same (block, index) slot.
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c.p.equal(o.p) }

// Const returns a read-only view of the same position.
func (c Cursor[T]) Const() ConstCursor[T] { return ConstCursor[T]{c.p} }

// ConstCursor is a read-only bidirectional position in a List. There is no
// conversion back to Cursor.
type ConstCursor[T any] struct {
	p position[T]
}

// IsEnd reports whether c is the end sentinel.
func (c ConstCursor[T]) IsEnd() bool { return c.p.blk == nil }

// Value returns the element under c. It panics with ErrInvalidCursor on End.
func (c ConstCursor[T]) Value() T { return *c.p.ref("Value") }

// Next advances one element, to End after the last one.
func (c ConstCursor[T]) Next() ConstCursor[T] { return ConstCursor[T]{c.p.next()} }

// Prev retreats one element; see Cursor.Prev.
func (c ConstCursor[T]) Prev() ConstCursor[T] { return ConstCursor[T]{c.p.prev()} }

// Equal reports whether c and o name the same position.
func (c ConstCursor[T]) Equal(o ConstCursor[T]) bool { return c.p.equal(o.p) }

// Begin returns a cursor to the first element, or End for an empty list.
func (l *List[T]) Begin() Cursor[T] { return Cursor[T]{position[T]{list: l, blk: l.head}} }

// End returns the end sentinel.
func (l *List[T]) End() Cursor[T] { return Cursor[T]{position[T]{list: l}} }

// CBegin is Begin as a read-only cursor.
func (l *List[T]) CBegin() ConstCursor[T] { return l.Begin().Const() }

// CEnd is End as a read-only cursor.
func (l *List[T]) CEnd() ConstCursor[T] { return l.End().Const() }

// cursorAt normalises (b, i) to the end sentinel when b is nil.
func (l *List[T]) cursorAt(b *block[T], i int) Cursor[T] {
	if b == nil {
		return l.End()
	}
	return Cursor[T]{position[T]{list: l, blk: b, idx: i}}
}

// owned panics unless c is a live cursor of l or l's end sentinel.
func (l *List[T]) owned(c Cursor[T], op string) {
	if c.p.list != l && c.p.list != nil {
		invalidCursor(op)
	}
	if c.p.blk != nil && c.p.idx >= c.p.blk.count {
		invalidCursor(op)
	}
}

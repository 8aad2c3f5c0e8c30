package unrolled

// PushBack appends v. It fills the tail block first and links a new block
// after it only when the tail is full.
func (l *List[T]) PushBack(v T) error {
	if t := l.tail; t != nil && !t.full() {
		t.put(t.count, v)
		t.count++
		l.size++
		return nil
	}
	b, err := l.newBlock()
	if err != nil {
		return err
	}
	b.put(0, v)
	b.count = 1
	l.linkAfter(l.tail, b)
	l.size++
	return nil
}

// PushFront prepends v. When the head block has spare capacity its elements
// shift one slot right, so cursors into the head block go stale.
func (l *List[T]) PushFront(v T) error {
	if h := l.head; h != nil && !h.full() {
		h.insertAt(0, v)
		l.size++
		return nil
	}
	b, err := l.newBlock()
	if err != nil {
		return err
	}
	b.put(0, v)
	b.count = 1
	l.linkBefore(l.head, b)
	l.size++
	return nil
}

// PopBack removes and returns the last element. It reports false and leaves
// the list untouched when the list is empty.
func (l *List[T]) PopBack() (T, bool) {
	t := l.tail
	if t == nil {
		var zero T
		return zero, false
	}
	last := t.count - 1
	v := t.slots[last]
	t.drop(last)
	t.count--
	l.size--
	if t.count == 0 {
		l.unlink(t)
	}
	return v, true
}

// PopFront removes and returns the first element. The remaining elements of
// the head block shift one slot left.
func (l *List[T]) PopFront() (T, bool) {
	h := l.head
	if h == nil {
		var zero T
		return zero, false
	}
	v := h.removeAt(0)
	l.size--
	if h.count == 0 {
		l.unlink(h)
	}
	return v, true
}

// Front returns the first element. It panics with ErrEmptyContainer on an
// empty list.
func (l *List[T]) Front() T { return *l.FrontPtr() }

// Back returns the last element. It panics with ErrEmptyContainer on an
// empty list.
func (l *List[T]) Back() T { return *l.BackPtr() }

// FrontPtr returns a pointer to the first element for in-place mutation.
func (l *List[T]) FrontPtr() *T {
	if l.head == nil {
		emptyAccess("Front")
	}
	return &l.head.slots[0]
}

// BackPtr returns a pointer to the last element for in-place mutation.
func (l *List[T]) BackPtr() *T {
	if l.tail == nil {
		emptyAccess("Back")
	}
	return &l.tail.slots[l.tail.count-1]
}

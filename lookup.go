package unrolled

import "fmt"

// At returns a cursor to the i-th element (0-based).
//
// Blocks are skipped by their count, walking from whichever end of the chain
// is nearer, so the cost is linear in the number of blocks rather than
// elements. Returns ErrIndexOutOfRange outside 0..Len()-1.
func (l *List[T]) At(i int) (Cursor[T], error) {
	if i < 0 || i >= l.size {
		return l.End(), fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, l.size)
	}
	b, idx := l.locate(i)
	return l.cursorAt(b, idx), nil
}

// ConstAt is At returning a read-only cursor.
func (l *List[T]) ConstAt(i int) (ConstCursor[T], error) {
	c, err := l.At(i)
	return c.Const(), err
}

// locate finds the block holding element i and i's index inside it.
// i must be in range.
func (l *List[T]) locate(i int) (*block[T], int) {
	if i < l.size/2 {
		for b := l.head; b != nil; b = b.next {
			if i < b.count {
				return b, i
			}
			i -= b.count
		}
	} else {
		rem := l.size - 1 - i // elements after i
		for b := l.tail; b != nil; b = b.prev {
			if rem < b.count {
				return b, b.count - 1 - rem
			}
			rem -= b.count
		}
	}
	// Seharusnya tidak terjadi selama invariant size terjaga.
	panic(fmt.Sprintf("unrolled: index %d not found in any block", i))
}

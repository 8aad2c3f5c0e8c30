package unrolled

// Clear menghapus semua elemen dan melepas semua blok ke allocator.
// Clear pada list kosong tidak melakukan apa-apa.
func (l *List[T]) Clear() {
	for b := l.head; b != nil; {
		next := b.next
		l.freeBlock(b)
		b = next
	}
	l.head, l.tail = nil, nil
	l.size, l.blocks = 0, 0
}

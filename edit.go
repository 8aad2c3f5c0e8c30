package unrolled

import "iter"

// Insert menyisipkan v tepat sebelum pos dan mengembalikan cursor ke v.
// Bila pos adalah End, v ditambahkan di belakang.
//
// Blok dengan slot kosong menggeser elemennya ke kanan. Untuk blok penuh pada
// indeks 0, v ditambahkan di ujung blok sebelumnya bila masih ada slot; jika
// tidak, v mendapat blok tunggal baru sebelum blok pos. Blok penuh pada indeks
// lain dipecah: elemen [idx, count) pindah ke blok baru setelahnya. Cursor
// lain ke blok yang terkena menjadi basi.
func (l *List[T]) Insert(pos Cursor[T], v T) (Cursor[T], error) {
	l.owned(pos, "Insert")
	if pos.IsEnd() {
		if err := l.PushBack(v); err != nil {
			return pos, err
		}
		return l.cursorAt(l.tail, l.tail.count-1), nil
	}

	b, i := pos.p.blk, pos.p.idx
	if !b.full() {
		b.insertAt(i, v)
		l.size++
		return l.cursorAt(b, i), nil
	}

	if p := b.prev; i == 0 && p != nil && !p.full() {
		// the end of the previous block is the same logical position
		p.put(p.count, v)
		p.count++
		l.size++
		return l.cursorAt(p, p.count-1), nil
	}

	nb, err := l.newBlock()
	if err != nil {
		return pos, err
	}
	l.size++
	if i == 0 {
		nb.put(0, v)
		nb.count = 1
		l.linkBefore(b, nb)
		return l.cursorAt(nb, 0), nil
	}
	b.splitAt(i, nb)
	b.put(i, v)
	b.count++
	l.linkAfter(b, nb)
	return l.cursorAt(b, i), nil
}

// InsertN menyisipkan n salinan v sebelum pos. Cursor hasil menunjuk salinan
// pertama, atau pos bila n == 0.
func (l *List[T]) InsertN(pos Cursor[T], n int, v T) (Cursor[T], error) {
	return l.insertSeq(pos, func(yield func(T) bool) {
		for ; n > 0; n-- {
			if !yield(v) {
				return
			}
		}
	})
}

// InsertValues menyisipkan vals berurutan sebelum pos.
func (l *List[T]) InsertValues(pos Cursor[T], vals ...T) (Cursor[T], error) {
	return l.insertSeq(pos, func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	})
}

// InsertSeq menyisipkan setiap nilai dari seq berurutan sebelum pos.
func (l *List[T]) InsertSeq(pos Cursor[T], seq iter.Seq[T]) (Cursor[T], error) {
	return l.insertSeq(pos, seq)
}

func (l *List[T]) insertSeq(pos Cursor[T], seq iter.Seq[T]) (Cursor[T], error) {
	first, cur := pos, pos
	n := 0
	var err error
	for v := range seq {
		var c Cursor[T]
		c, err = l.Insert(cur, v)
		if err != nil {
			break
		}
		if n == 0 {
			first = c
		}
		n++
		// the element pos named now follows v
		cur = c.Next()
	}
	return first, err
}

// Erase menghapus elemen pada pos dan mengembalikan cursor ke elemen
// sesudahnya (atau End). Sisa elemen blok digeser ke kiri sehingga slot yang
// kosong selalu bernilai zero value; blok yang menjadi kosong langsung dilepas.
// Erase(End) mengembalikan End.
func (l *List[T]) Erase(pos Cursor[T]) Cursor[T] {
	l.owned(pos, "Erase")
	if pos.IsEnd() {
		return l.End()
	}
	b, i := pos.p.blk, pos.p.idx
	b.removeAt(i)
	l.size--
	if b.count == 0 {
		next := b.next
		l.unlink(b)
		return l.cursorAt(next, 0)
	}
	if i < b.count {
		return l.cursorAt(b, i)
	}
	return l.cursorAt(b.next, 0)
}

// EraseRange menghapus [first, last) dan mengembalikan cursor ke elemen yang
// semula ditunjuk last. last harus dapat dicapai dari first.
func (l *List[T]) EraseRange(first, last Cursor[T]) Cursor[T] {
	l.owned(first, "EraseRange")
	l.owned(last, "EraseRange")
	// erasing compacts blocks, so last's (block, index) may stop naming its
	// element; count the span before touching anything
	n := 0
	for c := first; !c.Equal(last); c = c.Next() {
		if c.IsEnd() {
			invalidCursor("EraseRange")
		}
		n++
	}
	c := first
	for ; n > 0; n-- {
		c = l.Erase(c)
	}
	return c
}

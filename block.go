package unrolled

// block merepresentasikan satu mata rantai List.
//
// Setiap blok memiliki slice slot dengan panjang tetap (kapasitas node). Hanya
// slot [0, count) yang berisi elemen hidup; slot [count, len(slots)) selalu
// bernilai zero value sehingga tidak menahan referensi untuk GC.
//
// Field `next` memiliki blok berikutnya, sedangkan `prev` hanya referensi balik.
type block[T any] struct {
	slots []T       // storage milik blok ini
	count int       // jumlah slot terisi
	prev  *block[T] // blok sebelumnya (nil untuk head)
	next  *block[T] // blok berikutnya (nil untuk tail)
}

func (b *block[T]) full() bool { return b.count == len(b.slots) }

// put stores v in slot i. Slot i must be free and below capacity.
func (b *block[T]) put(i int, v T) { b.slots[i] = v }

// drop releases the element in slot i.
func (b *block[T]) drop(i int) {
	var zero T
	b.slots[i] = zero
}

// insertAt shifts [i, count) one slot right and stores v at i.
// The block must not be full.
func (b *block[T]) insertAt(i int, v T) {
	copy(b.slots[i+1:b.count+1], b.slots[i:b.count])
	b.put(i, v)
	b.count++
}

// removeAt takes the element at i and closes the gap.
func (b *block[T]) removeAt(i int) T {
	v := b.slots[i]
	copy(b.slots[i:b.count-1], b.slots[i+1:b.count])
	b.count--
	b.drop(b.count)
	return v
}

// splitAt moves [i, count) into the empty block dst.
func (b *block[T]) splitAt(i int, dst *block[T]) {
	dst.count = copy(dst.slots, b.slots[i:b.count])
	clear(b.slots[i:b.count])
	b.count = i
}

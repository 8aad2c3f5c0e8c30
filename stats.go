package unrolled

import "math"

// Stats menyimpan snapshot kondisi blok sebuah List.
// Utilization dalam persentase (0-100) slot terisi dari seluruh blok hidup.
// Blok yang dipindah lewat Move/MoveFrom dihitung dialokasikan oleh list
// tujuan dan dilepas oleh list sumber.
type Stats struct {
	Len             int
	Blocks          int
	NodeCapacity    int
	BlocksAllocated uint64
	BlocksFreed     uint64
	Utilization     float64
}

// GetStats mengambil snapshot statistik.
func (l *List[T]) GetStats() Stats {
	capacity := l.NodeCapacity()
	util := 0.0
	if l.blocks > 0 {
		util = float64(l.size) / float64(l.blocks*capacity) * 100.0
	}
	return Stats{
		Len:             l.size,
		Blocks:          l.blocks,
		NodeCapacity:    capacity,
		BlocksAllocated: l.statAllocs,
		BlocksFreed:     l.statFrees,
		Utilization:     util,
	}
}

// ResetStats mengatur ulang penghitung alokasi dan pelepasan blok.
func (l *List[T]) ResetStats() {
	l.statAllocs = 0
	l.statFrees = 0
}

// BlockCounts mengembalikan jumlah elemen tiap blok, dari head ke tail.
func (l *List[T]) BlockCounts() []int {
	counts := make([]int, 0, l.blocks)
	for b := l.head; b != nil; b = b.next {
		counts = append(counts, b.count)
	}
	return counts
}

// Len mengembalikan jumlah elemen.
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// MaxSize mengembalikan batas teoretis jumlah elemen.
func (l *List[T]) MaxSize() int { return math.MaxInt }

// NodeCapacity mengembalikan jumlah slot per blok.
func (l *List[T]) NodeCapacity() int {
	if l.capacity == 0 {
		return DefaultNodeCapacity
	}
	return l.capacity
}

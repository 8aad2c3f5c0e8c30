package unrolled

import (
	"fmt"
	"iter"
)

// List adalah unrolled list: elemen disimpan dalam blok berkapasitas tetap
// yang dirangkai sebagai doubly-linked list.
//
// Zero value List adalah list kosong dengan DefaultNodeCapacity dan
// HeapAllocator. List tidak aman untuk goroutine; akses bersamaan harus
// diserialisasi oleh pemanggil. Jangan menyalin List berdasarkan nilai
// setelah dipakai, gunakan Clone atau Move.
type List[T any] struct {
	head     *block[T] // Blok pertama (pemilik rantai)
	tail     *block[T] // Blok terakhir (alias, bukan pemilik)
	size     int       // Total elemen, selalu = jumlah count semua blok
	blocks   int       // Jumlah blok yang sedang terhubung
	capacity int       // Slot per blok (NodeMax)
	alloc    Allocator[T]

	statAllocs uint64 // statistik blok yang dialokasikan
	statFrees  uint64 // statistik blok yang dilepas
}

// New membuat list kosong dengan opsi default (lihat DefaultOptions).
func New[T any]() *List[T] {
	return &List[T]{capacity: DefaultNodeCapacity, alloc: HeapAllocator[T]{}}
}

// NewWithOptions membuat list kosong dengan opsi kustom.
func NewWithOptions[T any](opts Options) (*List[T], error) {
	return NewWithAllocator[T](HeapAllocator[T]{}, opts)
}

// NewWithAllocator membuat list kosong yang mengambil storage blok dari alloc.
func NewWithAllocator[T any](alloc Allocator[T], opts Options) (*List[T], error) {
	opts, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	return &List[T]{capacity: opts.NodeCapacity, alloc: alloc}, nil
}

// Of builds a list holding vals in order.
func Of[T any](vals ...T) *List[T] {
	l := New[T]()
	must(l.Append(vals...))
	return l
}

// Repeat builds a list holding n copies of v.
func Repeat[T any](n int, v T) *List[T] {
	l := New[T]()
	for ; n > 0; n-- {
		must(l.PushBack(v))
	}
	return l
}

// FromSeq builds a list from every value seq yields.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	must(l.AppendSeq(seq))
	return l
}

// must is for constructors bound to the heap allocator, which never fails.
func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Append pushes vals to the back in order. It stops at the first failure.
func (l *List[T]) Append(vals ...T) error {
	for _, v := range vals {
		if err := l.PushBack(v); err != nil {
			return err
		}
	}
	return nil
}

// AppendSeq pushes every value of seq to the back in order.
func (l *List[T]) AppendSeq(seq iter.Seq[T]) error {
	for v := range seq {
		if err := l.PushBack(v); err != nil {
			return err
		}
	}
	return nil
}

// lazyInit fills in defaults for a zero-value List.
func (l *List[T]) lazyInit() {
	if l.capacity == 0 {
		l.capacity = DefaultNodeCapacity
	}
	if l.alloc == nil {
		l.alloc = HeapAllocator[T]{}
	}
}

// newBlock obtains an empty, unlinked block from the allocator.
func (l *List[T]) newBlock() (*block[T], error) {
	l.lazyInit()
	slots, err := l.alloc.Allocate(l.capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}
	if len(slots) != l.capacity {
		l.alloc.Release(slots)
		return nil, fmt.Errorf("%w: allocator returned %d slots, want %d", ErrAllocationFailure, len(slots), l.capacity)
	}
	l.statAllocs++
	return &block[T]{slots: slots}, nil
}

// freeBlock zeroes b's live slots and hands its storage back to the allocator.
// b must already be unlinked.
func (l *List[T]) freeBlock(b *block[T]) {
	clear(b.slots[:b.count])
	l.alloc.Release(b.slots)
	b.slots, b.count = nil, 0
	b.prev, b.next = nil, nil
	l.statFrees++
}

// linkAfter links b after at; a nil at means the chain is empty.
func (l *List[T]) linkAfter(at, b *block[T]) {
	l.blocks++
	b.prev = at
	if at == nil {
		b.next = nil
		l.head, l.tail = b, b
		return
	}
	b.next = at.next
	if at.next != nil {
		at.next.prev = b
	} else {
		l.tail = b
	}
	at.next = b
}

// linkBefore links b before at; a nil at means the chain is empty.
func (l *List[T]) linkBefore(at, b *block[T]) {
	if at == nil {
		l.linkAfter(nil, b)
		return
	}
	if at.prev != nil {
		l.linkAfter(at.prev, b)
		return
	}
	l.blocks++
	b.prev, b.next = nil, at
	at.prev = b
	l.head = b
}

// unlink removes b from the chain and frees it.
func (l *List[T]) unlink(b *block[T]) {
	if b.prev != nil {
		b.prev.next = b.next
	} else {
		l.head = b.next
	}
	if b.next != nil {
		b.next.prev = b.prev
	} else {
		l.tail = b.prev
	}
	l.blocks--
	l.freeBlock(b)
}

package unrolled

import (
	"fmt"
	"sync"
)

// Allocator menyediakan storage slot untuk blok List.
//
// Allocate harus mengembalikan slice dengan panjang tepat n yang seluruh
// slotnya bernilai zero value. Release menerima kembali slice yang sudah
// dikosongkan oleh List; setelah Release, List tidak lagi menyentuh slice itu.
type Allocator[T any] interface {
	Allocate(n int) ([]T, error)
	Release(slots []T)
}

// HeapAllocator mengalokasikan setiap blok baru langsung dari heap Go dan
// menyerahkan blok yang dilepas ke GC. Ini allocator default.
type HeapAllocator[T any] struct{}

func (HeapAllocator[T]) Allocate(n int) ([]T, error) { return make([]T, n), nil }

func (HeapAllocator[T]) Release([]T) {}

// PoolAllocator mendaur ulang storage blok melalui sync.Pool sehingga list
// yang sering tumbuh dan menyusut tidak terus mengalokasikan blok baru.
//
// Aman dipakai bersama oleh beberapa List di goroutine berbeda.
type PoolAllocator[T any] struct {
	capacity int
	pool     sync.Pool
}

// NewPoolAllocator membuat pool untuk blok berkapasitas capacity slot
// (0 = DefaultNodeCapacity).
func NewPoolAllocator[T any](capacity int) *PoolAllocator[T] {
	if capacity <= 0 {
		capacity = DefaultNodeCapacity
	}
	return &PoolAllocator[T]{capacity: capacity}
}

// Allocate mengambil storage dari pool atau membuat baru jika tidak tersedia.
func (p *PoolAllocator[T]) Allocate(n int) ([]T, error) {
	if n == p.capacity {
		if s, ok := p.pool.Get().(*[]T); ok {
			return *s, nil
		}
	}
	return make([]T, n), nil
}

// Release mengembalikan storage ke pool. Hanya slice dengan ukuran tepat yang
// dimasukkan kembali untuk menghindari fragmentasi.
func (p *PoolAllocator[T]) Release(slots []T) {
	if len(slots) != p.capacity {
		return
	}
	clear(slots)
	p.pool.Put(&slots)
}

// LimitAllocator caps the number of blocks outstanding at once and fails
// further allocations with ErrBlockLimit. It wraps Next, or the heap when
// Next is nil.
type LimitAllocator[T any] struct {
	Next      Allocator[T]
	MaxBlocks int

	live int
}

func (a *LimitAllocator[T]) Allocate(n int) ([]T, error) {
	if a.live >= a.MaxBlocks {
		return nil, fmt.Errorf("%w: %d blocks outstanding", ErrBlockLimit, a.live)
	}
	s, err := a.next().Allocate(n)
	if err != nil {
		return nil, err
	}
	a.live++
	return s, nil
}

func (a *LimitAllocator[T]) Release(slots []T) {
	a.live--
	a.next().Release(slots)
}

// Live returns the number of blocks currently allocated through a.
func (a *LimitAllocator[T]) Live() int { return a.live }

func (a *LimitAllocator[T]) next() Allocator[T] {
	if a.Next == nil {
		return HeapAllocator[T]{}
	}
	return a.Next
}

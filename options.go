package unrolled

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// DefaultNodeCapacity adalah jumlah slot per blok bila Options tidak menentukan.
const DefaultNodeCapacity = 10

// Options menyediakan opsi konfigurasi untuk List.
//
//   - NodeCapacity: jumlah slot elemen per blok (NodeMax), 0 = DefaultNodeCapacity
//
// Kapasitas ditetapkan saat konstruksi dan tidak bisa diubah sesudahnya.
// Lihat DefaultOptions() untuk nilai bawaan.
type Options struct {
	NodeCapacity int // Slot per blok (0 = default)
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan New.
func DefaultOptions() Options {
	return Options{
		NodeCapacity: DefaultNodeCapacity,
	}
}

// CacheLineCapacity returns the number of T slots that fit in the given number
// of CPU cache lines, never less than 1. Use it to size blocks so that walking
// a block touches exactly `lines` cache lines.
func CacheLineCapacity[T any](lines int) int {
	if lines <= 0 {
		lines = 1
	}
	var zero T
	elem := int(unsafe.Sizeof(zero))
	line := int(unsafe.Sizeof(cpu.CacheLinePad{}))
	if elem == 0 {
		return DefaultNodeCapacity
	}
	n := lines * line / elem
	if n < 1 {
		n = 1
	}
	return n
}

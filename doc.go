// Package unrolled provides a generic unrolled list: a sequence container that
// stores elements in fixed-capacity blocks linked into a doubly-linked chain.
// Pushing and popping at either end is O(1) amortized, and walking a block is
// a sequential scan of one slice.
//
// The library is organised into several files for clarity:
//
//	options.go    – configuration struct & defaults, cache-line block sizing
//	config.go     – option validation
//	block.go      – block representation & slot primitives
//	allocator.go  – block storage allocators (heap, pooled, limited)
//	list.go       – constructors, block allocation & chain linking
//	head_tail.go  – push/pop/front/back at both ends
//	edit.go       – insert & erase at a cursor
//	copy_move.go  – clone, assign, move & equality
//	clear.go      – clear
//	cursor.go     – forward cursors (mutable & const)
//	reverse.go    – reverse cursors
//	iter.go       – range-over-func sequences
//	lookup.go     – positional lookup
//	stats.go      – size accessors & block statistics
//	errors.go     – error values
//
// A List is not safe for concurrent use. Cursors into a block go stale when
// that block shifts its elements (PushFront, PopFront, Insert, Erase) or is
// released.
package unrolled

package utils

import (
	"reflect"

	"github.com/benbjohnson/immutable"
)

type (
	// Hashable is implemented by all hashable types.
	Hashable interface {
		Hash() uint32
	}
	// HashableEq is implemented by all hashable types that can be compared for equality.
	HashableEq[T any] interface {
		Hashable
		Equal(T) bool
	}

	// hashableHasher is a hasher for hashable and equality comparable entities.
	hashableHasher[T HashableEq[T]] struct{}
)

// Equal checks that two hashable entities a and b are equal.
func (hashableHasher[T]) Equal(a, b T) bool { return a.Equal(b) }

// Hash computes the uint32 hash of hashable entity a.
func (hashableHasher[T]) Hash(a T) uint32 { return a.Hash() }

// HashableHasher is a generic hasher factory of hashable and equality comparable entities.
func HashableHasher[T HashableEq[T]]() immutable.Hasher[T] { return hashableHasher[T]{} }

// NewImmMap creates an immutable map where the keys must be hashable and equality comparable.
func NewImmMap[K HashableEq[K], V any]() *immutable.Map[K, V] {
	return immutable.NewMap[K, V](HashableHasher[K]())
}

// PointerHasher is a generic hasher for pointer-like values.
type PointerHasher[T any] struct{}

// Hash computes the uint32 hash of pointer v.
func (PointerHasher[T]) Hash(v T) uint32 {
	p := reflect.ValueOf(v).Pointer()
	return uint32(p ^ (p >> 32))
}

// Equal checks equality between two pointers.
func (PointerHasher[T]) Equal(a, b T) bool {
	return any(a) == any(b)
}

var _ immutable.Hasher[any] = PointerHasher[any]{}

// CompHasher is a hasher for arbitrary comparable values, including
// interface values whose dynamic types are comparable. Hashes are derived
// structurally via reflection.
type CompHasher[T comparable] struct{}

// Hash computes the uint32 hash of comparable value v.
func (CompHasher[T]) Hash(v T) uint32 {
	return hashValue(reflect.ValueOf(&v).Elem())
}

// Equal checks equality between two comparable values.
func (CompHasher[T]) Equal(a, b T) bool { return a == b }

var _ immutable.Hasher[int] = CompHasher[int]{}

func hashValue(v reflect.Value) uint32 {
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		u := uint64(v.Int())
		return uint32(u ^ (u >> 32))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		return uint32(u ^ (u >> 32))
	case reflect.Float32, reflect.Float64:
		u := uint64(v.Float())
		return uint32(u ^ (u >> 32))
	case reflect.String:
		var h uint32 = 2166136261
		for _, c := range []byte(v.String()) {
			h = (h ^ uint32(c)) * 16777619
		}
		return h
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		p := uint64(v.Pointer())
		return uint32(p ^ (p >> 32))
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem())
	case reflect.Struct:
		hs := make([]uint32, 0, v.NumField())
		for i := 0; i < v.NumField(); i++ {
			hs = append(hs, hashValue(v.Field(i)))
		}
		return HashCombine(hs...)
	case reflect.Array:
		hs := make([]uint32, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			hs = append(hs, hashValue(v.Index(i)))
		}
		return HashCombine(hs...)
	default:
		return 0
	}
}

// HashCombine uses the C++ boost algorithm for combining multiple hash values.
func HashCombine(hs ...uint32) (seed uint32) {
	for _, v := range hs {
		seed = v + 0x9e3779b9 + (seed << 6) + (seed >> 2)
	}

	return
}

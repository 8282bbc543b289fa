package projection

import (
	"cmp"
	"time"

	"golang.org/x/text/collate"
)

// Kind tags which extractor a Field carries.
type Kind int

const (
	KindText Kind = iota + 1
	KindNumber
	KindDate
)

// Field is a sortable column: a kind plus one typed extractor. An extractor
// returning ok=false marks the key as missing.
type Field[T any] struct {
	kind   Kind
	text   func(T) (string, bool)
	number func(T) (float64, bool)
	date   func(T) (time.Time, bool)
}

func Text[T any](get func(T) (string, bool)) Field[T] {
	return Field[T]{kind: KindText, text: get}
}

func Number[T any](get func(T) (float64, bool)) Field[T] {
	return Field[T]{kind: KindNumber, number: get}
}

func Date[T any](get func(T) (time.Time, bool)) Field[T] {
	return Field[T]{kind: KindDate, date: get}
}

func (f Field[T]) Kind() Kind { return f.kind }

// compare orders a before b under dir; missing keys go last in both directions.
func (f Field[T]) compare(a, b T, col *collate.Collator, dir Direction) int {
	var c int
	switch f.kind {
	case KindText:
		av, aok := f.text(a)
		bv, bok := f.text(b)
		if !aok || !bok {
			return missingLast(aok, bok)
		}
		c = col.CompareString(av, bv)
	case KindNumber:
		av, aok := f.number(a)
		bv, bok := f.number(b)
		if !aok || !bok {
			return missingLast(aok, bok)
		}
		c = cmp.Compare(av, bv)
	case KindDate:
		av, aok := f.date(a)
		bv, bok := f.date(b)
		if !aok || !bok {
			return missingLast(aok, bok)
		}
		c = av.Compare(bv)
	default:
		return 0
	}
	if dir == Descending {
		return -c
	}
	return c
}

func missingLast(aok, bok bool) int {
	switch {
	case aok == bok:
		return 0
	case !aok:
		return 1
	default:
		return -1
	}
}

package ribosome

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBase is matched by every *InvalidBaseError
var ErrInvalidBase = errors.New("invalid DNA base")

// InvalidBaseError reports a character of a DNA sequence that is not
// one of A, T, G or C
type InvalidBaseError struct {
	Base rune
	// 0-based position of Base in the sequence
	Position int
}

func (e *InvalidBaseError) Error() string {
	return fmt.Sprintf("%v: %q at position %d", ErrInvalidBase, e.Base, e.Position)
}

// Is makes errors.Is(err, ErrInvalidBase) work
func (e *InvalidBaseError) Is(target error) bool {
	return target == ErrInvalidBase
}

// rnaBases holds every complement, in the order A, C, G, U
var rnaBases = [...]byte{'A', 'C', 'G', 'U'}

// Complement returns the RNA base matching a DNA base, case insensitive.
// Basically:
//
//	A -> U
//	T -> A
//	G -> C
//	C -> G
func Complement(base byte) (byte, bool) {
	switch base {
	case 'A', 'a':
		return 'U', true
	case 'T', 't':
		return 'A', true
	case 'G', 'g':
		return 'C', true
	case 'C', 'c':
		return 'G', true
	}
	return 0, false
}

// Transcribe converts a DNA sequence to its RNA complement. It stops at
// the first invalid base and returns an *InvalidBaseError, the RNA is
// never partial.
func Transcribe(dna string) (string, error) {

	var rna strings.Builder
	rna.Grow(len(dna))

	position := 0
	for _, r := range dna {
		var base byte
		ok := false
		if r < 0x80 {
			base, ok = Complement(byte(r))
		}
		if !ok {
			return "", &InvalidBaseError{Base: r, Position: position}
		}
		rna.WriteByte(base)
		position++
	}
	return rna.String(), nil
}

package ribosome

import (
	"fmt"
	"math/rand"
	"strings"
)

// MutationKind is the kind of edit applied by a Mutator
type MutationKind int

const (
	Substitution MutationKind = iota
	Insertion
	Deletion

	mutationKinds = 3
)

func (k MutationKind) String() string {
	switch k {
	case Substitution:
		return "substitution"
	case Insertion:
		return "insertion"
	case Deletion:
		return "deletion"
	}
	return fmt.Sprintf("MutationKind(%d)", int(k))
}

// Mutation describes a single point mutation.
// Old is 0 for an insertion, New is 0 for a deletion.
type Mutation struct {
	Kind     MutationKind
	Position int
	Old      byte
	New      byte
}

func (m Mutation) String() string {
	return fmt.Sprintf("%v at %d (%s -> %s)", m.Kind, m.Position, baseOrGap(m.Old), baseOrGap(m.New))
}

func baseOrGap(b byte) string {
	if b == 0 {
		return "-"
	}
	return string(b)
}

// Mutator applies random point mutations to RNA sequences
type Mutator struct {
	rnd *rand.Rand
}

// NewMutator returns a Mutator drawing from src, so a fixed seed gives
// a reproducible sequence of mutations
func NewMutator(src rand.Source) *Mutator {
	return &Mutator{rnd: rand.New(src)}
}

// Mutate returns a copy of rna with exactly one substitution, insertion
// or deletion, picked uniformly. An empty rna can only get an insertion.
func (m *Mutator) Mutate(rna string) (string, Mutation) {

	kind := MutationKind(m.rnd.Intn(mutationKinds))
	if len(rna) == 0 {
		kind = Insertion
	}

	mutation := Mutation{Kind: kind}
	var mutated strings.Builder
	mutated.Grow(len(rna) + 1)

	switch kind {
	case Substitution:
		mutation.Position = m.rnd.Intn(len(rna))
		mutation.Old = rna[mutation.Position]
		mutation.New = m.randomBase()
		mutated.WriteString(rna[:mutation.Position])
		mutated.WriteByte(mutation.New)
		mutated.WriteString(rna[mutation.Position+1:])
	case Insertion:
		// one past the end is a valid insertion point
		mutation.Position = m.rnd.Intn(len(rna) + 1)
		mutation.New = m.randomBase()
		mutated.WriteString(rna[:mutation.Position])
		mutated.WriteByte(mutation.New)
		mutated.WriteString(rna[mutation.Position:])
	case Deletion:
		mutation.Position = m.rnd.Intn(len(rna))
		mutation.Old = rna[mutation.Position]
		mutated.WriteString(rna[:mutation.Position])
		mutated.WriteString(rna[mutation.Position+1:])
	}

	log.Infof("mutation: %v", mutation)
	return mutated.String(), mutation
}

func (m *Mutator) randomBase() byte {
	return rnaBases[m.rnd.Intn(len(rnaBases))]
}

// Divergence counts the amino acids that differ between two
// protein sets
type Divergence struct {
	Count int
	// Percent is Count relative to the number of amino acids in the
	// original proteins
	Percent float64
}

// Diverge compares the amino acids of original and mutated proteins
// position by position. Only the common length is compared: a frame shift
// shows up as mismatches, not as extra or missing amino acids.
func Diverge(original, mutated []string) Divergence {

	a, b := strings.Join(original, ""), strings.Join(mutated, "")

	var d Divergence
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			d.Count++
		}
	}
	if len(a) > 0 {
		d.Percent = float64(d.Count) / float64(len(a)) * 100
	}
	return d
}

package ribosome

import (
	"strings"

	"github.com/ribosom/ribosom/codontable"
)

const (
	codonSize = 3

	// Stop delimits proteins in an amino acid sequence
	Stop = codontable.Stop
	// Unknown is the amino acid of a codon missing from the table
	Unknown = codontable.Unknown
)

// Chunk splits seq in codons of 3 bases, from the front. The leftover
// bases (0 to 2) are returned as remainder
func Chunk(seq string) (codons []string, remainder string) {

	count := len(seq) / codonSize
	codons = make([]string, count)
	for i := range codons {
		codons[i] = seq[i*codonSize : (i+1)*codonSize]
	}
	return codons, seq[count*codonSize:]
}

// Translate returns the amino acid of every codon, in order. Codons
// missing from the table are translated to Unknown.
func Translate(table *codontable.Table, codons []string) []byte {
	aminos := make([]byte, len(codons))
	for i, codon := range codons {
		aminos[i] = table.Lookup(codon)
	}
	return aminos
}

// Assemble groups amino acids in proteins, splitting on Stop.
// Empty groups, from leading, trailing or consecutive stops, are dropped.
// The last protein doesn't need to be terminated by a Stop.
func Assemble(aminos []byte) []string {

	var proteins []string
	var protein strings.Builder

	for _, aa := range aminos {
		if aa != Stop {
			protein.WriteByte(aa)
			continue
		}
		if protein.Len() > 0 {
			proteins = append(proteins, protein.String())
			protein.Reset()
		}
	}
	if protein.Len() > 0 {
		proteins = append(proteins, protein.String())
	}
	return proteins
}

// Result holds every intermediate value of an RNA expression
type Result struct {
	RNA       string
	Codons    []string
	Remainder string
	Aminos    []byte
	Proteins  []string
}

// Express chunks, translates and assembles rna into proteins
func Express(table *codontable.Table, rna string) Result {
	codons, remainder := Chunk(rna)
	aminos := Translate(table, codons)
	return Result{
		RNA:       rna,
		Codons:    codons,
		Remainder: remainder,
		Aminos:    aminos,
		Proteins:  Assemble(aminos),
	}
}

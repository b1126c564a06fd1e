// Package codontable stores codon <-> amino acid
// translation, loaded from a delimited table file.
//
// Expected file format (';' separated, '"' quoted, header row first):
//
//	"TRIPLET";"AMINO";"NAME"
//	"AUG";"M";"Methionine"
//	"UAA";"$";"Stop"
//
// Only the TRIPLET and AMINO columns are read, in any position.
package codontable

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("codontable")

const (
	// Stop is the amino acid symbol of a stop codon
	Stop byte = '$'
	// Unknown is returned for any codon missing from the table
	Unknown byte = '?'

	// ColumnCodon and ColumnAmino are the header names looked up
	// in the table file
	ColumnCodon = "TRIPLET"
	ColumnAmino = "AMINO"
)

var (
	// ErrFileAccess is returned when the table file can't be read
	ErrFileAccess = errors.New("file access")
	// ErrParse is returned when the table content is malformed
	ErrParse = errors.New("parse error")
)

const (
	aCode uint8 = iota
	cCode
	gCode
	uCode
	tCode = uCode

	codonSize = 3
	// each base is stored on 2 bits, so a codon fits in 6 bits
	tableSize = 1 << (2 * codonSize)
)

func baseCode(b byte) (uint8, bool) {
	switch b {
	case 'A', 'a':
		return aCode, true
	case 'C', 'c':
		return cCode, true
	case 'G', 'g':
		return gCode, true
	case 'U', 'u', 'T', 't':
		// handle both uCode and tCode
		return uCode, true
	}
	return 0, false
}

// index converts a codon to its slot in the code array,
// for example 'ACG' -> 0b00_01_10
func index(codon string) (int, bool) {
	if len(codon) != codonSize {
		return 0, false
	}
	idx := 0
	for i := 0; i < codonSize; i++ {
		n, ok := baseCode(codon[i])
		if !ok {
			return 0, false
		}
		idx = idx<<2 | int(n)
	}
	return idx, true
}

// Table maps every RNA codon to an amino acid symbol. It is immutable
// once built and safe to share.
type Table struct {
	codes [tableSize]byte
	size  int
}

func newTable() *Table {
	t := &Table{}
	for i := range t.codes {
		t.codes[i] = Unknown
	}
	return t
}

// New builds a table from a codon -> symbol map
func New(codeMap map[string]byte) (*Table, error) {
	t := newTable()
	for codon, aaCode := range codeMap {
		if err := t.set(codon, aaCode); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) set(codon string, aaCode byte) error {
	idx, ok := index(codon)
	if !ok {
		return fmt.Errorf("%w: invalid codon %q", ErrParse, codon)
	}
	if aaCode == Unknown || aaCode < ' ' || aaCode > '~' {
		return fmt.Errorf("%w: invalid amino acid symbol %q for codon %s", ErrParse, aaCode, codon)
	}
	if t.codes[idx] == Unknown {
		t.size++
	}
	t.codes[idx] = aaCode
	return nil
}

// Lookup returns the amino acid symbol of codon, or Unknown. It never
// fails: strings that are not a codon are Unknown too.
func (t *Table) Lookup(codon string) byte {
	idx, ok := index(codon)
	if !ok {
		return Unknown
	}
	return t.codes[idx]
}

// Len returns the number of mapped codons
func (t *Table) Len() int {
	return t.size
}

// Load reads the table file at path
func Load(path string) (*Table, error) {

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("loaded %d codons from %s", t.Len(), path)
	return t, nil
}

// Parse reads a table from r. Rows with a blank codon or a blank
// amino acid are skipped, a later row for the same codon wins.
func Parse(r io.Reader) (*Table, error) {

	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: missing header row", ErrParse)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	codonCol, aminoCol := -1, -1
	for i, name := range header {
		name = strings.TrimPrefix(name, "\ufeff")
		switch strings.ToUpper(strings.TrimSpace(name)) {
		case ColumnCodon:
			codonCol = i
		case ColumnAmino:
			aminoCol = i
		}
	}
	if codonCol == -1 || aminoCol == -1 {
		return nil, fmt.Errorf("%w: line 1: header needs %s and %s columns, got %v", ErrParse, ColumnCodon, ColumnAmino, header)
	}
	minFields := max(codonCol, aminoCol) + 1

	t := newTable()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		line, _ := reader.FieldPos(0)

		if len(record) < minFields {
			return nil, fmt.Errorf("%w: line %d: expected at least %d fields, got %d", ErrParse, line, minFields, len(record))
		}
		codon := strings.TrimSpace(record[codonCol])
		amino := strings.TrimSpace(record[aminoCol])
		if codon == "" || amino == "" {
			continue
		}
		if len(amino) != 1 {
			return nil, fmt.Errorf("%w: line %d: amino acid symbol %q is not a single character", ErrParse, line, amino)
		}
		if err := t.set(codon, amino[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	return t, nil
}

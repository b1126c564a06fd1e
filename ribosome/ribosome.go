// Package ribosome turns a DNA sequence into proteins: the DNA is
// transcribed to RNA, split in codons, translated to amino acids and the
// amino acids are grouped in proteins delimited by stop codons.
//
// Optionally, random point mutations are applied to the RNA to compare
// the resulting proteins with the original ones.
package ribosome

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/op/go-logging"
	"gonum.org/v1/gonum/stat"

	"github.com/ribosom/ribosom/codontable"
)

var log = logging.MustGetLogger("ribosome")

// Options struct to store pipeline command line args
type Options struct {
	Table  string `short:"t" long:"table" value-name:"<filename>" description:"Codon table, ';' separated with TRIPLET and AMINO columns" default:"data/dna-to-amino-acid.csv"`
	Mutate bool   `short:"m" long:"mutate" description:"Apply a random point mutation to the RNA and compare the resulting proteins with the original ones"`
	Trials int    `short:"n" long:"trials" value-name:"<n>" description:"Number of independent mutations to evaluate with --mutate" default:"1"`
	Seed   int64  `long:"seed" value-name:"<n>" description:"Seed of the mutation random source, 0 uses the current time" default:"0"`
	Aminos bool   `short:"a" long:"aminos" description:"Also print the amino acid of every codon"`
}

// Pipeline expresses a DNA sequence with a codon table. If Mutator is
// set, Trials mutated copies of the RNA are expressed and compared to
// the original.
type Pipeline struct {
	Table   *codontable.Table
	Mutator *Mutator
	Trials  int
	Aminos  bool
}

// Run reads a DNA sequence from in and writes the protein report to out
// with the specified options
func Run(in io.Reader, out io.Writer, options Options) error {

	table, err := codontable.Load(options.Table)
	if err != nil {
		return err
	}

	p := &Pipeline{
		Table:  table,
		Trials: options.Trials,
		Aminos: options.Aminos,
	}
	if options.Mutate {
		seed := options.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
			log.Debug("random seed from time")
		}
		log.Infof("random seed=%v", seed)
		p.Mutator = NewMutator(rand.NewSource(seed))
	}
	return p.Process(in, out)
}

// Process reads the whole DNA sequence from in, newlines are ignored,
// and writes the report to out. Nothing is written if the sequence
// contains an invalid base.
func (p *Pipeline) Process(in io.Reader, out io.Writer) error {

	dna, err := readSequence(in)
	if err != nil {
		return err
	}
	rna, err := Transcribe(dna)
	if err != nil {
		return err
	}
	log.Debugf("transcribed %d bases", len(rna))

	original := Express(p.Table, rna)
	log.Debugf("%d codons, %d proteins", len(original.Codons), len(original.Proteins))

	w := newWriter()
	if p.Aminos {
		w.writeAminos(original.Aminos)
	}
	w.writeResult(original)

	if p.Mutator != nil {
		trials := max(p.Trials, 1)
		percents := make([]float64, 0, trials)
		for i := 0; i < trials; i++ {
			mutatedRNA, mutation := p.Mutator.Mutate(rna)
			mutated := Express(p.Table, mutatedRNA)
			d := Diverge(original.Proteins, mutated.Proteins)
			w.writeMutation(mutation, mutated, d)
			percents = append(percents, d.Percent)
		}
		if trials > 1 {
			mean, std := stat.MeanStdDev(percents, nil)
			w.writeSummary(mean, std, trials)
		}
	}
	return w.flush(out)
}

var lineBreaks = strings.NewReplacer("\r", "", "\n", "")

func readSequence(in io.Reader) (string, error) {
	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("fail to read DNA sequence: %w", err)
	}
	return lineBreaks.Replace(string(b)), nil
}

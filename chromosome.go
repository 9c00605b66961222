package chrocalc

import (
	"fmt"
	"math/rand"
	"strings"
)

// MinChromosomeLength is the smallest gene count that can decode to a
// non-trivial expression.
const MinChromosomeLength = 3

// Chromosome is an ordered, fixed-length sequence of genes. Chromosomes are
// immutable once constructed: every operator returns a new Chromosome.
type Chromosome struct {
	genes   []Gene
	decoded *DecodeResult
}

// RandomChromosome creates a chromosome of length genes, each drawn uniformly
// from the assigned gene codes.
func RandomChromosome(length int, rng *rand.Rand) (*Chromosome, error) {
	if length < MinChromosomeLength {
		return nil, fmt.Errorf("%w: chromosome length %d is below the minimum %d",
			ErrInvalidArgument, length, MinChromosomeLength)
	}

	genes := make([]Gene, length)
	for i := range genes {
		genes[i] = DefinedGenes[rng.Intn(len(DefinedGenes))]
	}
	return &Chromosome{genes: genes}, nil
}

// EncodeExpression builds a chromosome from an expression string, one gene
// per character.
func EncodeExpression(expression string) (*Chromosome, error) {
	genes := make([]Gene, len(expression))
	for i := 0; i < len(expression); i++ {
		gene, ok := SymbolGenes[expression[i]]
		if !ok {
			return nil, fmt.Errorf("unrecognized symbol %c at position %d", expression[i], i)
		}
		genes[i] = gene
	}
	return &Chromosome{genes: genes}, nil
}

// ChromosomeFromGeneString builds a chromosome from a binary string such as
// "0001 1010 0010". Spaces are ignored; the bit count must be a multiple of
// GeneBits. Unassigned codes are accepted here — decode marks them unknown.
func ChromosomeFromGeneString(geneString string) (*Chromosome, error) {
	geneString = strings.ReplaceAll(geneString, " ", "")
	if len(geneString)%GeneBits != 0 {
		return nil, fmt.Errorf("gene string has %d bits, expected a multiple of %d",
			len(geneString), GeneBits)
	}

	genes := make([]Gene, len(geneString)/GeneBits)
	for i := range genes {
		gene := Gene(0)
		for k, c := range geneString[i*GeneBits : (i+1)*GeneBits] {
			switch c {
			case '1':
				gene |= 1 << (GeneBits - k - 1)
			case '0':
			default:
				return nil, fmt.Errorf("unrecognized gene string character %c, expected '1' or '0'", c)
			}
		}
		genes[i] = gene
	}

	return &Chromosome{genes: genes}, nil
}

func (c *Chromosome) Len() int {
	return len(c.genes)
}

func (c *Chromosome) Genes() []Gene {
	return c.genes
}

// Copy returns a new chromosome with the same genes and no cached decode.
func (c *Chromosome) Copy() *Chromosome {
	copied := &Chromosome{
		genes: make([]Gene, len(c.genes)),
	}
	copy(copied.genes, c.genes)
	return copied
}

// Equal reports whether both chromosomes carry the same gene sequence.
func (c *Chromosome) Equal(other *Chromosome) bool {
	if len(c.genes) != len(other.genes) {
		return false
	}
	for i, gene := range c.genes {
		if gene != other.genes[i] {
			return false
		}
	}
	return true
}

func (c *Chromosome) String() string {
	var buf strings.Builder
	buf.Grow(len(c.genes)*GeneBits + len(c.genes) - 1)

	lastIndex := len(c.genes) - 1
	geneFmt := fmt.Sprintf("%%0%db", GeneBits)
	for i, gene := range c.genes {
		buf.WriteString(fmt.Sprintf(geneFmt, gene))
		if i < lastIndex {
			buf.WriteByte(' ')
		}
	}
	return buf.String()
}

package chrocalc

// Gene is a 4-bit binary code selecting a symbol from the encoding table.
type Gene byte

// GeneBits is the width of a single gene.
var GeneBits = 4

// GeneMask masks a byte down to a gene's significant bits.
var GeneMask = Gene(255 >> (8 - GeneBits))

type SymbolKind int8

const (
	Digit SymbolKind = iota
	Operator
)

// Symbol is a decoded gene value: a single digit or an arithmetic operator.
// What a symbol means is independent of how it is bit-packed — the packing
// lives entirely in GeneSymbols.
type Symbol struct {
	Kind SymbolKind
	Char byte
}

func (s Symbol) IsDigit() bool {
	return s.Kind == Digit
}

func (s Symbol) IsOperator() bool {
	return s.Kind == Operator
}

// Value returns the numeric value of a digit symbol.
func (s Symbol) Value() float64 {
	return float64(s.Char - '0')
}

func (s Symbol) String() string {
	return string(s.Char)
}

// GeneSymbols is the fixed encoding table: ten digits in the low codes,
// the four operators above them. Codes 0b1110 and 0b1111 are unassigned and
// are never produced by the factory or the mutation operator.
var GeneSymbols = map[Gene]Symbol{
	0b0000: {Digit, '0'},
	0b0001: {Digit, '1'},
	0b0010: {Digit, '2'},
	0b0011: {Digit, '3'},
	0b0100: {Digit, '4'},
	0b0101: {Digit, '5'},
	0b0110: {Digit, '6'},
	0b0111: {Digit, '7'},
	0b1000: {Digit, '8'},
	0b1001: {Digit, '9'},

	0b1010: {Operator, '+'},
	0b1011: {Operator, '-'},
	0b1100: {Operator, '*'},
	0b1101: {Operator, '/'},
}

var geneSymbolsArray []Symbol
var geneDefinedArray []bool

// SymbolGenes maps a symbol's character back to its gene code.
var SymbolGenes map[byte]Gene

// DefinedGenes holds the assigned gene codes in ascending order; the factory
// and the mutation operator sample uniformly from this slice.
var DefinedGenes []Gene

// UnknownGenes holds the unassigned gene codes.
var UnknownGenes []Gene

func init() {
	geneSymbolsArray = make([]Symbol, 1<<GeneBits)
	geneDefinedArray = make([]bool, 1<<GeneBits)
	SymbolGenes = make(map[byte]Gene)
	for gene, symbol := range GeneSymbols {
		geneSymbolsArray[gene] = symbol
		geneDefinedArray[gene] = true
		SymbolGenes[symbol.Char] = gene
	}

	for n := Gene(0); n <= GeneMask; n++ {
		if geneDefinedArray[n] {
			DefinedGenes = append(DefinedGenes, n)
		} else {
			UnknownGenes = append(UnknownGenes, n)
		}
	}
}

// Symbol resolves a gene to its symbol. The second return is false for the
// unassigned codes, which engine-built chromosomes never contain.
func (g Gene) Symbol() (Symbol, bool) {
	return geneSymbolsArray[g], geneDefinedArray[g]
}

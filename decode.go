package chrocalc

// Validity classifies each gene's fate during a decode.
type Validity rune

const (
	Valid   Validity = '+'
	Invalid Validity = '-'
	Unknown Validity = '?'
)

// DecodeResult is a chromosome's token sequence together with per-gene
// diagnostics.
type DecodeResult struct {
	// Tokens alternate digit, operator, digit, … and never end in an
	// operator. Empty when no digit survived the scan.
	Tokens []Symbol

	// RawExpression maps each recognized gene to its symbol 1:1, including
	// symbols the grammar rejected.
	RawExpression string

	// Expression is the surviving tokens joined into a string.
	Expression string

	// Validity holds one char per gene: '+' kept, '-' rejected, '?' unassigned.
	Validity string
}

// Decode scans the genes left to right, alternating between expecting a digit
// and expecting an operator. A gene whose symbol doesn't match the current
// expectation contributes nothing. A trailing operator is dropped.
// The result is cached on the chromosome.
func (c *Chromosome) Decode() *DecodeResult {
	if c.decoded != nil {
		return c.decoded
	}

	tokens := make([]Symbol, 0, len(c.genes))
	tokenGenes := make([]int, 0, len(c.genes))
	validity := make([]byte, len(c.genes))
	raw := make([]byte, 0, len(c.genes))

	expect := Digit
	for i, gene := range c.genes {
		symbol, defined := gene.Symbol()
		if !defined {
			validity[i] = byte(Unknown)
			continue
		}
		raw = append(raw, symbol.Char)

		if symbol.Kind != expect {
			validity[i] = byte(Invalid)
			continue
		}

		tokens = append(tokens, symbol)
		tokenGenes = append(tokenGenes, i)
		validity[i] = byte(Valid)

		if expect == Digit {
			expect = Operator
		} else {
			expect = Digit
		}
	}

	// A trailing operator cannot be evaluated
	if last := len(tokens) - 1; last >= 0 && tokens[last].IsOperator() {
		validity[tokenGenes[last]] = byte(Invalid)
		tokens = tokens[:last]
	}

	expression := make([]byte, len(tokens))
	for i, token := range tokens {
		expression[i] = token.Char
	}

	c.decoded = &DecodeResult{
		Tokens:        tokens,
		RawExpression: string(raw),
		Expression:    string(expression),
		Validity:      string(validity),
	}
	return c.decoded
}

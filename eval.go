package chrocalc

import (
	"fmt"
	"math"
)

func isMultiplicative(op byte) bool {
	return op == '*' || op == '/'
}

func isAdditive(op byte) bool {
	return op == '+' || op == '-'
}

func applyOperator(op byte, lhs, rhs float64) (float64, error) {
	switch op {
	case '+':
		return lhs + rhs, nil
	case '-':
		return lhs - rhs, nil
	case '*':
		return lhs * rhs, nil
	case '/':
		if rhs == 0 {
			return 0, ErrDivisionByZero
		}
		return lhs / rhs, nil
	}
	return 0, fmt.Errorf("%w: unrecognized operator %c", ErrInvalidArgument, op)
}

// reduceTier collapses every operator the tier matches, left to right, into a
// fresh value/operator list pair. Operators outside the tier are carried over
// untouched.
func reduceTier(values []float64, ops []byte, tier func(byte) bool) ([]float64, []byte, error) {
	outValues := make([]float64, 1, len(values))
	outValues[0] = values[0]
	outOps := make([]byte, 0, len(ops))

	for i, op := range ops {
		rhs := values[i+1]
		if !tier(op) {
			outOps = append(outOps, op)
			outValues = append(outValues, rhs)
			continue
		}

		lhs := outValues[len(outValues)-1]
		result, err := applyOperator(op, lhs, rhs)
		if err != nil {
			return nil, nil, err
		}
		outValues[len(outValues)-1] = result
	}

	return outValues, outOps, nil
}

// Evaluate computes the value of an alternating digit/operator token sequence.
// Multiplicative operators are fully resolved left to right before any
// additive operator is touched; a zero divisor aborts immediately with
// ErrDivisionByZero. The sequence must be well-formed, as Decode produces.
func Evaluate(tokens []Symbol) (float64, error) {
	if len(tokens) == 0 {
		return 0, ErrEmptyExpression
	}

	values := make([]float64, 0, len(tokens)/2+1)
	ops := make([]byte, 0, len(tokens)/2)
	for i, token := range tokens {
		if i%2 == 0 {
			values = append(values, token.Value())
		} else {
			ops = append(ops, token.Char)
		}
	}

	values, ops, err := reduceTier(values, ops, isMultiplicative)
	if err != nil {
		return 0, err
	}
	values, _, err = reduceTier(values, ops, isAdditive)
	if err != nil {
		return 0, err
	}

	return values[0], nil
}

// Fitness scores a token sequence as its evaluated value's absolute distance
// from target. Zero is an exact match; an empty or unevaluable sequence
// propagates its error and is never compared numerically.
func Fitness(tokens []Symbol, target float64) (float64, error) {
	value, err := Evaluate(tokens)
	if err != nil {
		return 0, err
	}
	return math.Abs(target - value), nil
}

// ParseSymbols converts an expression string to a token sequence, one symbol
// per character.
func ParseSymbols(expression string) ([]Symbol, error) {
	tokens := make([]Symbol, len(expression))
	for i := 0; i < len(expression); i++ {
		gene, ok := SymbolGenes[expression[i]]
		if !ok {
			return nil, fmt.Errorf("unrecognized symbol %c at position %d", expression[i], i)
		}
		tokens[i], _ = gene.Symbol()
	}
	return tokens, nil
}

package chrocalc

import (
	"fmt"

	"github.com/PaesslerAG/gval"
)

// exprLang is an independent arithmetic evaluator. The expressions Decode
// produces are flat binary chains, for which conventional precedence parsing
// and the tiered reduction in Evaluate agree exactly — so gval serves as an
// oracle for verifying reported answers.
var exprLang = gval.NewLanguage(gval.Arithmetic())

// VerifyExpression evaluates an expression string with gval, bypassing
// Evaluate entirely.
func VerifyExpression(expression string) (float64, error) {
	if expression == "" {
		return 0, ErrEmptyExpression
	}

	result, err := gval.Evaluate(expression, nil, exprLang)
	if err != nil {
		return 0, err
	}

	value, isFloat := result.(float64)
	if !isFloat {
		return 0, fmt.Errorf("expected float result, got %v", result)
	}
	return value, nil
}

package logic

import (
	"fmt"

	"github.com/samber/lo"
)

// ExactlyOne builds the sentence stating that exactly one of the given
// symbols is true: the disjunction of all of them, conjoined with the
// negation of every unordered pair. The symbols must be distinct and at
// least one is required.
func ExactlyOne(symbols ...Symbol) (Sentence, error) {
	if len(symbols) == 0 {
		return nil, fmt.Errorf("exactly-one constraint requires at least one symbol")
	}
	if duplicates := lo.FindDuplicates(symbols); len(duplicates) > 0 {
		return nil, fmt.Errorf("exactly-one constraint requires distinct symbols, got duplicates: %v", duplicates)
	}

	atLeastOne := NewOr(lo.Map(symbols, func(symbol Symbol, _ int) Sentence { return symbol })...)

	operands := []Sentence{atLeastOne}
	for i := 0; i < len(symbols)-1; i++ {
		for j := i + 1; j < len(symbols); j++ {
			operands = append(operands, NewNot(NewAnd(symbols[i], symbols[j])))
		}
	}
	return NewAnd(operands...), nil
}

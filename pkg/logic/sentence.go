// Package logic implements a small propositional-logic engine: sentence
// trees over named symbols, truth-assignment evaluation, and entailment by
// exhaustive model checking. The symbol universe is expected to stay small;
// enumeration over all 2^n assignments is the intended mode of operation.
package logic

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Sentence is a propositional formula. The variant set is closed: Symbol,
// Not, And and Or are the only implementations, and Evaluate matches over
// all of them.
type Sentence interface {
	fmt.Stringer
	sentence()
}

// Symbol is an atomic proposition identified by its name. Two symbols with
// the same name are the same proposition.
type Symbol string

// Not negates its operand.
type Not struct {
	Operand Sentence
}

// And is the conjunction of its operands. An empty conjunction is true.
type And struct {
	Operands []Sentence
}

// Or is the disjunction of its operands. An empty disjunction is false.
type Or struct {
	Operands []Sentence
}

func (Symbol) sentence() {}
func (Not) sentence()    {}
func (And) sentence()    {}
func (Or) sentence()     {}

func NewNot(operand Sentence) Not {
	return Not{Operand: operand}
}

func NewAnd(operands ...Sentence) And {
	return And{Operands: operands}
}

func NewOr(operands ...Sentence) Or {
	return Or{Operands: operands}
}

func (s Symbol) String() string {
	return string(s)
}

func (s Not) String() string {
	return fmt.Sprintf("Not(%v)", s.Operand)
}

func (s And) String() string {
	return fmt.Sprintf("And(%v)", joinOperands(s.Operands))
}

func (s Or) String() string {
	return fmt.Sprintf("Or(%v)", joinOperands(s.Operands))
}

// joinOperands yields a canonical operand listing, so String is usable as a
// structural identity key.
func joinOperands(operands []Sentence) string {
	rendered := lo.Map(operands, func(operand Sentence, _ int) string { return operand.String() })
	return strings.Join(rendered, ", ")
}

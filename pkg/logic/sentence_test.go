package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentenceString(t *testing.T) {
	scenarios := []struct {
		name     string
		sentence Sentence
		expected string
	}{
		{"symbol", Symbol("P"), "P"},
		{"negation", NewNot(Symbol("P")), "Not(P)"},
		{"conjunction", NewAnd(Symbol("P"), Symbol("Q")), "And(P, Q)"},
		{"disjunction", NewOr(Symbol("P"), Symbol("Q"), Symbol("R")), "Or(P, Q, R)"},
		{"empty conjunction", NewAnd(), "And()"},
		{"nested", NewNot(NewAnd(Symbol("P"), NewOr(Symbol("Q"), NewNot(Symbol("R"))))), "Not(And(P, Or(Q, Not(R))))"},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.name, func(t *testing.T) {
			assert.Equal(t, scenario.expected, scenario.sentence.String())
		})
	}
}

func TestSymbolIdentity(t *testing.T) {
	// Arrange
	first := Symbol("Lord Alaric")
	second := Symbol("Lord Alaric")

	// Act
	bindings := Model{first: true}

	// Assert
	assert.Equal(t, first, second)
	assert.True(t, bindings[second])
}

func TestStructurallyEqualSentencesShareCanonicalForm(t *testing.T) {
	first := NewAnd(NewNot(Symbol("P")), NewOr(Symbol("Q"), Symbol("R")))
	second := NewAnd(NewNot(Symbol("P")), NewOr(Symbol("Q"), Symbol("R")))

	assert.Equal(t, first.String(), second.String())
}

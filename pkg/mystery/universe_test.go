package mystery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wilfierd/whodunit/pkg/logic"
)

func TestNewUniverseRegistersEveryCandidate(t *testing.T) {
	universe, err := NewUniverse(DefaultCast())
	assert.Nil(t, err)

	symbols := universe.Symbols()
	assert.Len(t, symbols, 9)
	assert.Equal(t, logic.Symbol("S_Lord Alaric"), symbols[0])
	assert.Equal(t, logic.Symbol("W_Silver Dagger"), symbols[3])
	assert.Equal(t, logic.Symbol("R_Library"), symbols[6])
}

func TestNewUniverseRejectsInvalidCast(t *testing.T) {
	_, err := NewUniverse(Cast{Suspects: []string{"A"}})
	assert.NotNil(t, err)
}

func TestGroupPrefixesKeepEqualNamesApart(t *testing.T) {
	cast := Cast{
		Suspects: []string{"Rose"},
		Weapons:  []string{"Rose"},
		Rooms:    []string{"Rose"},
	}
	universe, err := NewUniverse(cast)
	assert.Nil(t, err)

	suspect, err := universe.SymbolFor(Suspects, "Rose")
	assert.Nil(t, err)
	weapon, err := universe.SymbolFor(Weapons, "Rose")
	assert.Nil(t, err)

	assert.NotEqual(t, suspect, weapon)
}

func TestSymbolAccessorsReturnCopies(t *testing.T) {
	universe, err := NewUniverse(DefaultCast())
	assert.Nil(t, err)

	// Act
	universe.Symbols()[0] = "tampered"
	universe.GroupSymbols(Suspects)[0] = "tampered"

	// Assert: the registry is immutable for the session's lifetime.
	assert.Equal(t, logic.Symbol("S_Lord Alaric"), universe.Symbols()[0])
	assert.Equal(t, logic.Symbol("S_Lord Alaric"), universe.GroupSymbols(Suspects)[0])
}

func TestSymbolForRequiresExactName(t *testing.T) {
	universe, err := NewUniverse(DefaultCast())
	assert.Nil(t, err)

	symbol, err := universe.SymbolFor(Weapons, "Piano Wire")
	assert.Nil(t, err)
	assert.Equal(t, logic.Symbol("W_Piano Wire"), symbol)

	_, err = universe.SymbolFor(Weapons, "piano wire")
	var unknown *UnknownNameError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, Weapons, unknown.Group)
}

func TestResolve(t *testing.T) {
	universe, err := NewUniverse(DefaultCast())
	assert.Nil(t, err)

	t.Run("exact match", func(t *testing.T) {
		name, err := universe.Resolve(Suspects, "Lord Alaric")
		assert.Nil(t, err)
		assert.Equal(t, "Lord Alaric", name)
	})

	t.Run("case-insensitive match", func(t *testing.T) {
		name, err := universe.Resolve(Suspects, "butler edwin")
		assert.Nil(t, err)
		assert.Equal(t, "Butler Edwin", name)
	})

	t.Run("substring match", func(t *testing.T) {
		name, err := universe.Resolve(Suspects, "morgana")
		assert.Nil(t, err)
		assert.Equal(t, "Lady Morgana", name)
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		name, err := universe.Resolve(Rooms, "  dining  ")
		assert.Nil(t, err)
		assert.Equal(t, "Dining Hall", name)
	})

	t.Run("ambiguous input lists the matches", func(t *testing.T) {
		_, err := universe.Resolve(Suspects, "la")

		var ambiguous *AmbiguousNameError
		assert.ErrorAs(t, err, &ambiguous)
		assert.ElementsMatch(t, []string{"Lord Alaric", "Lady Morgana"}, ambiguous.Matches)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := universe.Resolve(Suspects, "Professor Plum")

		var unknown *UnknownNameError
		assert.ErrorAs(t, err, &unknown)
		assert.Equal(t, "Professor Plum", unknown.Name)
	})

	t.Run("blank input", func(t *testing.T) {
		_, err := universe.Resolve(Suspects, "   ")

		var unknown *UnknownNameError
		assert.ErrorAs(t, err, &unknown)
	})
}

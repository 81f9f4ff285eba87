package mystery

import (
	"strings"

	"github.com/samber/lo"

	"github.com/wilfierd/whodunit/pkg/logic"
)

// groupPrefixes namespace the symbol names so that equal cast names in
// different groups stay distinct propositions.
var groupPrefixes = map[Group]string{
	Suspects: "S_",
	Weapons:  "W_",
	Rooms:    "R_",
}

// Universe is the fixed symbol registry of one puzzle: every candidate of
// every group bound to its propositional symbol. Built once per session and
// never extended afterwards.
type Universe struct {
	cast    Cast
	symbols map[Group][]logic.Symbol
}

// NewUniverse validates the cast and registers one symbol per candidate.
func NewUniverse(cast Cast) (*Universe, error) {
	if err := cast.Validate(); err != nil {
		return nil, err
	}

	symbols := make(map[Group][]logic.Symbol, len(AllGroups))
	for _, group := range AllGroups {
		symbols[group] = lo.Map(cast.Names(group), func(name string, _ int) logic.Symbol {
			return logic.Symbol(groupPrefixes[group] + name)
		})
	}
	return &Universe{cast: cast, symbols: symbols}, nil
}

// Cast returns the cast the universe was built from.
func (u *Universe) Cast() Cast {
	return u.cast
}

// Symbols returns the whole symbol universe: suspects, then weapons, then
// rooms, each in cast order.
func (u *Universe) Symbols() []logic.Symbol {
	all := make([]logic.Symbol, 0, len(u.symbols[Suspects])+len(u.symbols[Weapons])+len(u.symbols[Rooms]))
	for _, group := range AllGroups {
		all = append(all, u.symbols[group]...)
	}
	return all
}

// GroupSymbols returns the symbols of one group in cast order.
func (u *Universe) GroupSymbols(group Group) []logic.Symbol {
	symbols := make([]logic.Symbol, len(u.symbols[group]))
	copy(symbols, u.symbols[group])
	return symbols
}

// SymbolFor returns the symbol bound to the exact candidate name.
func (u *Universe) SymbolFor(group Group, name string) (logic.Symbol, error) {
	index := lo.IndexOf(u.cast.Names(group), name)
	if index < 0 {
		return "", &UnknownNameError{Group: group, Name: name}
	}
	return u.symbols[group][index], nil
}

// Resolve maps user input to a single candidate name of the group. An exact
// match wins, then a case-insensitive match, then a case-insensitive
// substring match. Several surviving matches are reported as ambiguity.
func (u *Universe) Resolve(group Group, input string) (string, error) {
	names := u.cast.Names(group)
	query := strings.TrimSpace(input)
	if query == "" {
		return "", &UnknownNameError{Group: group, Name: input}
	}
	if lo.Contains(names, query) {
		return query, nil
	}

	lowered := strings.ToLower(query)
	matches := lo.Filter(names, func(name string, _ int) bool {
		return strings.ToLower(name) == lowered
	})
	if len(matches) == 0 {
		matches = lo.Filter(names, func(name string, _ int) bool {
			return strings.Contains(strings.ToLower(name), lowered)
		})
	}

	switch len(matches) {
	case 0:
		return "", &UnknownNameError{Group: group, Name: query}
	case 1:
		return matches[0], nil
	default:
		return "", &AmbiguousNameError{Group: group, Name: query, Matches: matches}
	}
}

// Package mystery models one murder-mystery deduction puzzle: a fixed cast
// of suspect, weapon and room candidates, a knowledge base seeded with the
// rule that exactly one candidate per group is the answer, and a session
// object that records clues and derives verdicts by model checking.
package mystery

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Group identifies one of the three candidate categories of the puzzle.
type Group int

const (
	Suspects Group = iota
	Weapons
	Rooms
)

// AllGroups lists the groups in display order.
var AllGroups = []Group{Suspects, Weapons, Rooms}

func (g Group) String() string {
	switch g {
	case Suspects:
		return "suspect"
	case Weapons:
		return "weapon"
	case Rooms:
		return "room"
	}
	return "unknown group"
}

// Cast is the puzzle's cast: the candidate suspects, murder weapons and
// rooms. Exactly one name per group is the answer.
type Cast struct {
	Suspects []string
	Weapons  []string
	Rooms    []string
}

// DefaultCast returns the canonical manor cast.
func DefaultCast() Cast {
	return Cast{
		Suspects: []string{"Lord Alaric", "Lady Morgana", "Butler Edwin"},
		Weapons:  []string{"Silver Dagger", "Broken Wine Bottle", "Piano Wire"},
		Rooms:    []string{"Library", "Dining Hall", "Rose Garden"},
	}
}

// Names returns the candidate names of one group in cast order.
func (c Cast) Names(group Group) []string {
	switch group {
	case Suspects:
		return c.Suspects
	case Weapons:
		return c.Weapons
	case Rooms:
		return c.Rooms
	}
	return nil
}

// Validate checks that every group has at least one candidate and that
// names are non-blank and unique within their group. Names may repeat
// across groups; symbols are namespaced per group.
func (c Cast) Validate() error {
	for _, group := range AllGroups {
		names := c.Names(group)
		if len(names) == 0 {
			return fmt.Errorf("cast must include at least one %v", group)
		}
		if lo.SomeBy(names, func(name string) bool { return strings.TrimSpace(name) == "" }) {
			return fmt.Errorf("%v names must not be blank", group)
		}
		if duplicates := lo.FindDuplicates(names); len(duplicates) > 0 {
			return fmt.Errorf("%v names must be unique, got duplicates: %v", group, duplicates)
		}
	}
	return nil
}

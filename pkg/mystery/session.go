package mystery

import (
	"fmt"
	"log/slog"

	"github.com/wilfierd/whodunit/pkg/logic"
)

// Assertion reports the outcome of recording one clue.
type Assertion struct {
	Group      Group
	Name       string         // resolved display name
	Fact       logic.Sentence // the recorded sentence
	Duplicate  bool           // the fact was already known, nothing changed
	Consistent bool           // the knowledge base is still satisfiable
}

// Triple is one (suspect, weapon, room) candidate answer.
type Triple struct {
	Suspect string
	Weapon  string
	Room    string
}

// CandidateStatus pairs a candidate name with its current status.
type CandidateStatus struct {
	Name   string
	Status Status
}

// GroupReport carries the statuses of one group in cast order.
type GroupReport struct {
	Group      Group
	Candidates []CandidateStatus
}

// Report is the full status display: per-group candidate statuses plus the
// knowledge base's overall consistency.
type Report struct {
	Consistent bool
	Groups     []GroupReport
}

// Solution is the outcome of Solve. Suspect, Weapon and Room are set only
// when Verdict is VerdictSolved.
type Solution struct {
	Verdict Verdict
	Suspect string
	Weapon  string
	Room    string
}

// Session owns one puzzle: the symbol universe and a knowledge base seeded
// with one exactly-one constraint per group. Clues accumulate and are never
// retracted; a fresh puzzle means a fresh session. Sessions share no state
// and are not safe for concurrent use.
type Session interface {
	// Cast returns the candidate names the session was built over.
	Cast() Cast

	// Exclude records that the named candidate is ruled out. The name may
	// be partial; resolution failures are *UnknownNameError or
	// *AmbiguousNameError.
	Exclude(group Group, name string) (Assertion, error)

	// Confirm records that the named candidate is the answer for its group.
	Confirm(group Group, name string) (Assertion, error)

	// StatusOf reports the knowledge base's verdict on one candidate. The
	// name must be exact.
	StatusOf(group Group, name string) (Status, error)

	// Report collects the status of every candidate together with the
	// knowledge base's consistency.
	Report() (Report, error)

	// Candidates enumerates every triple consistent with the recorded
	// clues, in cast order.
	Candidates() ([]Triple, error)

	// Solve reports the fully determined triple when every group has an
	// entailed candidate. It never guesses.
	Solve() (Solution, error)

	// Consistent reports whether any model satisfies the knowledge base.
	Consistent() (bool, error)

	// Facts returns the recorded sentences, constraints included, in
	// assertion order.
	Facts() []logic.Sentence
}

// Option configures a session.
type Option func(*session)

// WithChecker replaces the default model checker.
func WithChecker(checker logic.Checker) Option {
	return func(s *session) { s.checker = checker }
}

// WithLogger attaches a logger for clue and query tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(s *session) { s.logger = logger }
}

type session struct {
	universe *Universe
	kb       *logic.KnowledgeBase
	checker  logic.Checker
	logger   *slog.Logger
}

// NewSession registers the cast's symbol universe and seeds the knowledge
// base with the three exactly-one constraints.
func NewSession(cast Cast, options ...Option) (Session, error) {
	universe, err := NewUniverse(cast)
	if err != nil {
		return nil, err
	}

	s := &session{
		universe: universe,
		kb:       logic.NewKnowledgeBase(),
		checker:  logic.NewModelChecker(),
		logger:   slog.Default(),
	}
	for _, option := range options {
		option(s)
	}

	for _, group := range AllGroups {
		constraint, err := logic.ExactlyOne(universe.GroupSymbols(group)...)
		if err != nil {
			return nil, fmt.Errorf("cannot constrain the %v group: %w", group, err)
		}
		s.kb.Add(constraint)
	}

	s.logger.Debug("session started",
		"suspects", len(cast.Suspects),
		"weapons", len(cast.Weapons),
		"rooms", len(cast.Rooms))
	return s, nil
}

func (s *session) Cast() Cast {
	return s.universe.Cast()
}

func (s *session) Facts() []logic.Sentence {
	return s.kb.Facts()
}

func (s *session) Exclude(group Group, name string) (Assertion, error) {
	return s.record(group, name, true)
}

func (s *session) Confirm(group Group, name string) (Assertion, error) {
	return s.record(group, name, false)
}

func (s *session) record(group Group, name string, negated bool) (Assertion, error) {
	resolved, err := s.universe.Resolve(group, name)
	if err != nil {
		return Assertion{}, err
	}
	symbol, err := s.universe.SymbolFor(group, resolved)
	if err != nil {
		return Assertion{}, err
	}

	var fact logic.Sentence = symbol
	if negated {
		fact = logic.NewNot(symbol)
	}

	assertion := Assertion{Group: group, Name: resolved, Fact: fact}
	assertion.Duplicate = !s.kb.Add(fact)

	// Clues stay recorded even when they break satisfiability; the caller
	// is told so it can warn instead of trusting further deductions.
	consistent, err := s.Consistent()
	if err != nil {
		return Assertion{}, err
	}
	assertion.Consistent = consistent

	s.logger.Debug("clue recorded",
		"fact", fact.String(),
		"duplicate", assertion.Duplicate,
		"consistent", assertion.Consistent)
	return assertion, nil
}

func (s *session) StatusOf(group Group, name string) (Status, error) {
	symbol, err := s.universe.SymbolFor(group, name)
	if err != nil {
		return StatusMaybe, err
	}
	return s.symbolStatus(symbol)
}

// symbolStatus asks the checker about the symbol and its negation and maps
// the pair of answers: {yes,no} YES, {no,yes} NO, {no,no} MAYBE, {yes,yes}
// CONTRADICTION.
func (s *session) symbolStatus(symbol logic.Symbol) (Status, error) {
	symbols := s.universe.Symbols()

	positive, err := s.checker.Entails(s.kb, symbol, symbols)
	if err != nil {
		return StatusMaybe, err
	}
	if !positive.Consistent {
		return StatusContradiction, nil
	}

	negative, err := s.checker.Entails(s.kb, logic.NewNot(symbol), symbols)
	if err != nil {
		return StatusMaybe, err
	}

	switch {
	case positive.Entailed && negative.Entailed:
		return StatusContradiction, nil
	case positive.Entailed:
		return StatusYes, nil
	case negative.Entailed:
		return StatusNo, nil
	default:
		return StatusMaybe, nil
	}
}

func (s *session) Report() (Report, error) {
	consistent, err := s.Consistent()
	if err != nil {
		return Report{}, err
	}

	report := Report{Consistent: consistent}
	for _, group := range AllGroups {
		groupReport := GroupReport{Group: group}
		for _, name := range s.universe.Cast().Names(group) {
			status, err := s.StatusOf(group, name)
			if err != nil {
				return Report{}, err
			}
			groupReport.Candidates = append(groupReport.Candidates, CandidateStatus{Name: name, Status: status})
		}
		report.Groups = append(report.Groups, groupReport)
	}
	return report, nil
}

func (s *session) Candidates() ([]Triple, error) {
	cast := s.universe.Cast()

	candidates := make([]Triple, 0)
	for _, suspect := range cast.Suspects {
		for _, weapon := range cast.Weapons {
			for _, room := range cast.Rooms {
				triple := Triple{Suspect: suspect, Weapon: weapon, Room: room}
				admitted, err := s.admits(triple)
				if err != nil {
					return nil, err
				}
				if admitted {
					candidates = append(candidates, triple)
				}
			}
		}
	}
	return candidates, nil
}

// admits reports whether the knowledge base is satisfied by the complete
// model that makes exactly the triple's symbols true.
func (s *session) admits(triple Triple) (bool, error) {
	model := make(logic.Model, len(s.universe.Symbols()))
	for _, symbol := range s.universe.Symbols() {
		model[symbol] = false
	}

	for group, name := range map[Group]string{Suspects: triple.Suspect, Weapons: triple.Weapon, Rooms: triple.Room} {
		symbol, err := s.universe.SymbolFor(group, name)
		if err != nil {
			return false, err
		}
		model[symbol] = true
	}

	return logic.Evaluate(s.kb.Conjunction(), model)
}

func (s *session) Solve() (Solution, error) {
	consistent, err := s.Consistent()
	if err != nil {
		return Solution{}, err
	}
	if !consistent {
		s.logger.Warn("solve attempted on a contradictory knowledge base")
		return Solution{Verdict: VerdictContradiction}, nil
	}

	determined := make(map[Group]string, len(AllGroups))
	for _, group := range AllGroups {
		for _, name := range s.universe.Cast().Names(group) {
			status, err := s.StatusOf(group, name)
			if err != nil {
				return Solution{}, err
			}
			if status == StatusYes {
				determined[group] = name
				break
			}
		}
	}

	if len(determined) < len(AllGroups) {
		s.logger.Debug("solve undetermined", "determined", len(determined))
		return Solution{Verdict: VerdictUndetermined}, nil
	}
	return Solution{
		Verdict: VerdictSolved,
		Suspect: determined[Suspects],
		Weapon:  determined[Weapons],
		Room:    determined[Rooms],
	}, nil
}

func (s *session) Consistent() (bool, error) {
	// The empty disjunction is false, so the first satisfying model ends
	// the enumeration with Consistent already settled.
	result, err := s.checker.Entails(s.kb, logic.NewOr(), s.universe.Symbols())
	if err != nil {
		return false, err
	}
	return result.Consistent, nil
}

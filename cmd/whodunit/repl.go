package main

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/kr/pretty"
	"github.com/samber/lo"

	"github.com/wilfierd/whodunit/pkg/mystery"
)

// clueVerb ties a shell verb to the clue it records.
type clueVerb struct {
	group   mystery.Group
	negated bool
}

var clueVerbs = map[string]clueVerb{
	"s.no":  {mystery.Suspects, true},
	"w.no":  {mystery.Weapons, true},
	"r.no":  {mystery.Rooms, true},
	"s.yes": {mystery.Suspects, false},
	"w.yes": {mystery.Weapons, false},
	"r.yes": {mystery.Rooms, false},
}

func verbFor(clue clueVerb) string {
	for verb, candidate := range clueVerbs {
		if candidate == clue {
			return verb
		}
	}
	return ""
}

type repl struct {
	session  mystery.Session
	reader   InputReader
	renderer *renderer
	logger   *slog.Logger
}

// run drives the read-dispatch loop until quit or end of input.
func (r *repl) run() error {
	r.renderer.intro(r.session.Cast())

	// An interactive reader draws its own prompt inside the editor.
	prompting, drawsPrompt := r.reader.(PromptingInputReader)
	if drawsPrompt {
		prompting.SetPrompt(r.renderer.promptString())
	}

	for {
		if !drawsPrompt {
			r.renderer.prompt()
		}
		line, err := r.reader.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				r.renderer.farewell()
				return nil
			}
			return err
		}
		if !r.dispatch(line) {
			r.renderer.farewell()
			return nil
		}
	}
}

// dispatch runs one command line. It reports false when the shell should
// exit.
func (r *repl) dispatch(line string) bool {
	verb, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	if verb == "" {
		return true
	}
	verb = strings.ToLower(verb)

	if clue, ok := clueVerbs[verb]; ok {
		r.applyClue(clue, rest)
		return true
	}

	switch verb {
	case "help":
		r.renderer.help()
	case "list":
		r.renderer.list(r.session.Cast())
	case "status":
		report, err := r.session.Report()
		if err != nil {
			r.fail(verb, err)
			return true
		}
		r.renderer.status(report)
	case "candidates":
		candidates, err := r.session.Candidates()
		if err != nil {
			r.fail(verb, err)
			return true
		}
		r.renderer.candidates(candidates)
	case "solve":
		solution, err := r.session.Solve()
		if err != nil {
			r.fail(verb, err)
			return true
		}
		r.renderer.solution(solution)
	case "dump":
		pretty.Fprintf(r.renderer.out, "%# v\n", r.session.Facts())
	case "quit", "exit":
		return false
	default:
		r.renderer.unknownVerb(verb)
	}
	return true
}

// applyClue records one clue per comma-separated name. Each name succeeds
// or fails on its own.
func (r *repl) applyClue(clue clueVerb, rest string) {
	names := lo.FilterMap(strings.Split(rest, ","), func(name string, _ int) (string, bool) {
		trimmed := strings.TrimSpace(name)
		return trimmed, trimmed != ""
	})
	if len(names) == 0 {
		r.renderer.usage(clue)
		return
	}

	for _, name := range names {
		var assertion mystery.Assertion
		var err error
		if clue.negated {
			assertion, err = r.session.Exclude(clue.group, name)
		} else {
			assertion, err = r.session.Confirm(clue.group, name)
		}
		if err != nil {
			r.renderer.clueError(err)
			continue
		}
		r.renderer.clue(assertion, clue.negated)
	}
}

func (r *repl) fail(verb string, err error) {
	r.logger.Error("command failed", "command", verb, "error", err)
	r.renderer.internalError(err)
}

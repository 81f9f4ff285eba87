package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wilfierd/whodunit/pkg/mystery"
)

// Palette: candlelit manor tones.
var (
	colorBrass  = lipgloss.Color("#C9A227") // titles, prompt
	colorBlood  = lipgloss.Color("#E74C3C") // contradictions, errors
	colorClue   = lipgloss.Color("#2ECC71") // confirmed findings
	colorCandle = lipgloss.Color("#F4D03F") // warnings, open questions
	colorFog    = lipgloss.Color("#7F8C8D") // secondary text
)

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	open    lipgloss.Style
	muted   lipgloss.Style
	prompt  lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{
			title:   plain,
			section: plain,
			good:    plain,
			bad:     plain,
			open:    plain,
			muted:   plain,
			prompt:  plain,
		}
	}
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(colorBrass),
		section: lipgloss.NewStyle().Bold(true),
		good:    lipgloss.NewStyle().Foreground(colorClue),
		bad:     lipgloss.NewStyle().Foreground(colorBlood),
		open:    lipgloss.NewStyle().Foreground(colorCandle),
		muted:   lipgloss.NewStyle().Foreground(colorFog),
		prompt:  lipgloss.NewStyle().Bold(true).Foreground(colorBrass),
	}
}

const (
	iconYes   = "✓"
	iconMaybe = "○"
	iconWarn  = "⚠"
	iconCross = "✗"
)

// groupTitles label the display sections for each candidate group.
var groupTitles = map[mystery.Group]string{
	mystery.Suspects: "Suspects",
	mystery.Weapons:  "Weapons",
	mystery.Rooms:    "Rooms",
}

// renderer writes the shell's output. All styling runs through it so tests
// can use a plain writer.
type renderer struct {
	out    io.Writer
	styles styles
}

func newRenderer(out io.Writer, color bool) *renderer {
	return &renderer{out: out, styles: newStyles(color)}
}

func (r *renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *renderer) intro(cast mystery.Cast) {
	r.printf("%s\n", r.styles.title.Render("WHODUNIT"))
	r.printf("%s\n", r.styles.muted.Render(fmt.Sprintf(
		"A murder at the manor. %d suspects, %d possible weapons, %d rooms.",
		len(cast.Suspects), len(cast.Weapons), len(cast.Rooms))))
	r.printf("%s\n\n", r.styles.muted.Render("Feed me clues and I will narrow it down. Type 'help' for commands."))
}

func (r *renderer) help() {
	r.printf("%s\n", r.styles.section.Render("Commands"))
	rows := [][2]string{
		{"list", "show every candidate"},
		{"status", "current verdict per candidate"},
		{"candidates", "combinations still possible"},
		{"solve", "name the culprit, weapon and room if settled"},
		{"s.no <name>", "rule a suspect out"},
		{"w.no <name>", "rule a weapon out"},
		{"r.no <name>", "rule a room out"},
		{"s.yes <name>", "confirm the culprit"},
		{"w.yes <name>", "confirm the weapon"},
		{"r.yes <name>", "confirm the room"},
		{"dump", "raw knowledge base, for debugging"},
		{"quit", "leave the investigation"},
	}
	for _, row := range rows {
		r.printf("  %-14s %s\n", row[0], r.styles.muted.Render(row[1]))
	}
	r.printf("%s\n", r.styles.muted.Render("Names may be partial (\"edwin\") and comma-separated (\"s.no alaric, morgana\")."))
}

func (r *renderer) list(cast mystery.Cast) {
	for _, group := range mystery.AllGroups {
		r.printf("%s\n", r.styles.section.Render(groupTitles[group]))
		for _, name := range cast.Names(group) {
			r.printf("  %s\n", name)
		}
	}
}

func (r *renderer) status(report mystery.Report) {
	if !report.Consistent {
		r.contradictionWarning()
		return
	}

	for _, group := range report.Groups {
		r.printf("%s\n", r.styles.section.Render(groupTitles[group.Group]))
		for _, candidate := range group.Candidates {
			switch candidate.Status {
			case mystery.StatusYes:
				r.printf("  %s %s\n", r.styles.good.Render(iconYes), r.styles.good.Render(candidate.Name+"  YES"))
			case mystery.StatusMaybe:
				r.printf("  %s %s  %s\n", r.styles.open.Render(iconMaybe), candidate.Name, r.styles.muted.Render("MAYBE"))
			}
			// Ruled-out candidates stay hidden; they are the user's own clues.
		}
	}
}

func (r *renderer) candidates(candidates []mystery.Triple) {
	if len(candidates) == 0 {
		r.contradictionWarning()
		return
	}
	r.printf("%s\n", r.styles.section.Render(fmt.Sprintf("%d possibilities remain", len(candidates))))
	for i, candidate := range candidates {
		r.printf("  %2d. %s with the %s in the %s\n", i+1, candidate.Suspect, candidate.Weapon, candidate.Room)
	}
}

func (r *renderer) solution(solution mystery.Solution) {
	switch solution.Verdict {
	case mystery.VerdictSolved:
		r.printf("%s %s\n",
			r.styles.good.Render(iconYes),
			r.styles.good.Render(fmt.Sprintf("It was %s with the %s in the %s.",
				solution.Suspect, solution.Weapon, solution.Room)))
	case mystery.VerdictContradiction:
		r.contradictionWarning()
	default:
		r.printf("%s %s\n",
			r.styles.open.Render(iconMaybe),
			"Not enough clues yet. Keep investigating.")
	}
}

func (r *renderer) clue(assertion mystery.Assertion, negated bool) {
	switch {
	case assertion.Duplicate:
		r.printf("%s\n", r.styles.muted.Render(fmt.Sprintf("Already noted: %s.", assertion.Name)))
	case negated:
		r.printf("Noted: %s is out.\n", assertion.Name)
	default:
		r.printf("%s %s\n", r.styles.good.Render(iconYes), fmt.Sprintf("Confirmed: %s.", assertion.Name))
	}
	if !assertion.Consistent {
		r.contradictionWarning()
	}
}

func (r *renderer) usage(clue clueVerb) {
	verb := verbFor(clue)
	r.printf("%s\n", r.styles.muted.Render(fmt.Sprintf("A name is required, e.g. %q.", verb+" name")))
}

func (r *renderer) clueError(err error) {
	var unknown *mystery.UnknownNameError
	var ambiguous *mystery.AmbiguousNameError
	switch {
	case errors.As(err, &unknown):
		r.printf("%s %s\n", r.styles.bad.Render(iconCross),
			fmt.Sprintf("No %v called %q here. Try 'list'.", unknown.Group, unknown.Name))
	case errors.As(err, &ambiguous):
		r.printf("%s %s\n", r.styles.open.Render(iconWarn),
			fmt.Sprintf("Which %v? %q matches: %s.", ambiguous.Group, ambiguous.Name, strings.Join(ambiguous.Matches, ", ")))
	default:
		r.internalError(err)
	}
}

func (r *renderer) internalError(err error) {
	r.printf("%s %s\n", r.styles.bad.Render(iconCross), r.styles.bad.Render(fmt.Sprintf("internal error: %v", err)))
}

func (r *renderer) unknownVerb(verb string) {
	r.printf("%s\n", r.styles.muted.Render(fmt.Sprintf("Unknown command %q. Type 'help'.", verb)))
}

func (r *renderer) contradictionWarning() {
	r.printf("%s %s\n",
		r.styles.bad.Render(iconWarn),
		r.styles.bad.Render("The clues contradict each other; no scenario fits. Deductions are unreliable until you start over."))
}

func (r *renderer) promptString() string {
	return r.styles.prompt.Render("> ")
}

func (r *renderer) prompt() {
	r.printf("%s", r.promptString())
}

func (r *renderer) farewell() {
	r.printf("%s\n", r.styles.muted.Render("Case closed. Goodbye."))
}

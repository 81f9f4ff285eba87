package mystery

import (
	"testing"

	"github.com/onsi/gomega"
)

// End-to-end deduction walkthroughs over a full session.

func TestEliminationLeavesTheLastSuspectStanding(t *testing.T) {
	g := gomega.NewWithT(t)

	session, err := NewSession(DefaultCast())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	_, err = session.Exclude(Suspects, "Lord Alaric")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	_, err = session.Exclude(Suspects, "Lady Morgana")
	g.Expect(err).NotTo(gomega.HaveOccurred())

	status, err := session.StatusOf(Suspects, "Butler Edwin")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(status).To(gomega.Equal(StatusYes))
}

func TestExcludingEveryCandidateBreaksTheKnowledgeBase(t *testing.T) {
	g := gomega.NewWithT(t)

	session, err := NewSession(DefaultCast())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	for _, suspect := range DefaultCast().Suspects {
		assertion, err := session.Exclude(Suspects, suspect)
		g.Expect(err).NotTo(gomega.HaveOccurred())
		if suspect == "Butler Edwin" {
			g.Expect(assertion.Consistent).To(gomega.BeFalse(), "third exclusion must break satisfiability")
		}
	}

	consistent, err := session.Consistent()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(consistent).To(gomega.BeFalse())

	// No candidate may be reported YES off the back of vacuous entailment.
	report, err := session.Report()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(report.Consistent).To(gomega.BeFalse())
	for _, group := range report.Groups {
		for _, candidate := range group.Candidates {
			g.Expect(candidate.Status).To(gomega.Equal(StatusContradiction))
		}
	}

	solution, err := session.Solve()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(solution.Verdict).To(gomega.Equal(VerdictContradiction))

	candidates, err := session.Candidates()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(candidates).To(gomega.BeEmpty())
}

func TestFreshPuzzleIsWideOpen(t *testing.T) {
	g := gomega.NewWithT(t)

	session, err := NewSession(DefaultCast())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	report, err := session.Report()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(report.Consistent).To(gomega.BeTrue())
	for _, group := range report.Groups {
		for _, candidate := range group.Candidates {
			g.Expect(candidate.Status).To(gomega.Equal(StatusMaybe))
		}
	}

	solution, err := session.Solve()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(solution.Verdict).To(gomega.Equal(VerdictUndetermined))

	candidates, err := session.Candidates()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(candidates).To(gomega.HaveLen(27))
}

func TestFullyConstrainedPuzzleSolves(t *testing.T) {
	g := gomega.NewWithT(t)

	session, err := NewSession(DefaultCast())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	exclusions := map[Group][]string{
		Suspects: {"Lord Alaric", "Butler Edwin"},
		Weapons:  {"Silver Dagger", "Broken Wine Bottle"},
		Rooms:    {"Library", "Rose Garden"},
	}
	for group, names := range exclusions {
		for _, name := range names {
			assertion, err := session.Exclude(group, name)
			g.Expect(err).NotTo(gomega.HaveOccurred())
			g.Expect(assertion.Consistent).To(gomega.BeTrue())
		}
	}

	solution, err := session.Solve()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(solution.Verdict).To(gomega.Equal(VerdictSolved))
	g.Expect(solution.Suspect).To(gomega.Equal("Lady Morgana"))
	g.Expect(solution.Weapon).To(gomega.Equal("Piano Wire"))
	g.Expect(solution.Room).To(gomega.Equal("Dining Hall"))

	candidates, err := session.Candidates()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(candidates).To(gomega.ConsistOf(Triple{
		Suspect: "Lady Morgana",
		Weapon:  "Piano Wire",
		Room:    "Dining Hall",
	}))
}

func TestCluesCanArriveAsConfirmations(t *testing.T) {
	g := gomega.NewWithT(t)

	session, err := NewSession(DefaultCast())
	g.Expect(err).NotTo(gomega.HaveOccurred())

	_, err = session.Confirm(Suspects, "Lady Morgana")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	_, err = session.Confirm(Weapons, "Piano Wire")
	g.Expect(err).NotTo(gomega.HaveOccurred())
	_, err = session.Confirm(Rooms, "Dining Hall")
	g.Expect(err).NotTo(gomega.HaveOccurred())

	solution, err := session.Solve()
	g.Expect(err).NotTo(gomega.HaveOccurred())
	g.Expect(solution).To(gomega.Equal(Solution{
		Verdict: VerdictSolved,
		Suspect: "Lady Morgana",
		Weapon:  "Piano Wire",
		Room:    "Dining Hall",
	}))
}

package mystery

// Status is the knowledge base's verdict on a single candidate.
type Status int

const (
	// StatusMaybe means neither the candidate nor its negation is entailed.
	StatusMaybe Status = iota
	// StatusYes means the knowledge base entails the candidate.
	StatusYes
	// StatusNo means the knowledge base entails the candidate's negation.
	StatusNo
	// StatusContradiction means the knowledge base entails both, so it is
	// unsatisfiable and none of its verdicts can be trusted.
	StatusContradiction
)

func (s Status) String() string {
	switch s {
	case StatusMaybe:
		return "MAYBE"
	case StatusYes:
		return "YES"
	case StatusNo:
		return "NO"
	case StatusContradiction:
		return "CONTRADICTION"
	}
	return "UNDEFINED"
}

// Verdict classifies the outcome of a solve attempt.
type Verdict int

const (
	VerdictUndetermined Verdict = iota
	VerdictSolved
	VerdictContradiction
)

func (v Verdict) String() string {
	switch v {
	case VerdictUndetermined:
		return "UNDETERMINED"
	case VerdictSolved:
		return "SOLVED"
	case VerdictContradiction:
		return "CONTRADICTION"
	}
	return "UNDEFINED"
}

package logic

// Result carries the two outcomes of one enumeration pass: whether the
// knowledge base entails the query, and whether any model satisfies the
// knowledge base at all. Entailed is vacuously true whenever Consistent is
// false; callers must surface that combination as a contradiction instead
// of reporting the entailment as a finding.
type Result struct {
	Entailed   bool
	Consistent bool
}

// Checker decides whether a knowledge base entails a query over a fixed
// symbol universe.
type Checker interface {
	Entails(kb *KnowledgeBase, query Sentence, symbols []Symbol) (Result, error)
}

// NewModelChecker returns a Checker that decides entailment by exhaustive
// enumeration of truth assignments: the query is entailed when every model
// satisfying the knowledge base also satisfies the query. Sound and
// complete with respect to truth-table semantics; the intended symbol
// universes are small enough that brute force is the design, not a
// fallback.
func NewModelChecker() Checker {
	return &modelChecker{}
}

type modelChecker struct{}

func (checker *modelChecker) Entails(kb *KnowledgeBase, query Sentence, symbols []Symbol) (Result, error) {
	knowledge := kb.Conjunction()
	result := Result{Entailed: true}

	iterator := NewModelIterator(symbols)
	for model, ok := iterator.Next(); ok; model, ok = iterator.Next() {
		satisfied, err := Evaluate(knowledge, model)
		if err != nil {
			return Result{}, err
		}
		if !satisfied {
			continue
		}
		result.Consistent = true

		holds, err := Evaluate(query, model)
		if err != nil {
			return Result{}, err
		}
		if !holds {
			// A countermodel settles both fields at once.
			return Result{Entailed: false, Consistent: true}, nil
		}
	}
	return result, nil
}

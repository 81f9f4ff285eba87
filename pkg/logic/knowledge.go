package logic

// KnowledgeBase is an ordered, append-only collection of asserted
// sentences, conceptually their conjunction. Re-asserting a sentence whose
// canonical form is already recorded leaves the collection unchanged. A
// knowledge base belongs to a single session and is not safe for concurrent
// use.
type KnowledgeBase struct {
	facts []Sentence
	seen  map[string]bool
}

func NewKnowledgeBase() *KnowledgeBase {
	return &KnowledgeBase{
		seen: make(map[string]bool),
	}
}

// Add appends a fact. It reports false when an identical fact is already
// recorded.
func (kb *KnowledgeBase) Add(fact Sentence) bool {
	key := fact.String()
	if kb.seen[key] {
		return false
	}
	kb.seen[key] = true
	kb.facts = append(kb.facts, fact)
	return true
}

// Facts returns the asserted sentences in assertion order.
func (kb *KnowledgeBase) Facts() []Sentence {
	facts := make([]Sentence, len(kb.facts))
	copy(facts, kb.facts)
	return facts
}

// Len returns the number of asserted facts.
func (kb *KnowledgeBase) Len() int {
	return len(kb.facts)
}

// Conjunction returns the asserted facts as a single sentence. With nothing
// asserted the conjunction is empty and evaluates to true, so an empty
// knowledge base is satisfied by every model.
func (kb *KnowledgeBase) Conjunction() Sentence {
	return NewAnd(kb.facts...)
}

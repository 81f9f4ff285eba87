package logic

// Model is a truth assignment mapping symbols to boolean values. Model
// checking always works over complete models, one entry per symbol in play;
// evaluating a sentence against a partial model fails with an
// *UnboundSymbolError.
type Model map[Symbol]bool

// ModelIterator enumerates every complete model over a fixed symbol list,
// lazily and in a deterministic order: bit j of a running counter fixes the
// value of symbol j. Memory use stays flat regardless of how many models
// the enumeration covers.
type ModelIterator struct {
	symbols []Symbol
	next    uint64
	count   uint64
}

// NewModelIterator starts a fresh enumeration of all 2^n complete models
// over symbols. The symbols must be distinct.
func NewModelIterator(symbols []Symbol) *ModelIterator {
	return &ModelIterator{
		symbols: symbols,
		count:   1 << uint64(len(symbols)),
	}
}

// Next returns the next model, or false once the enumeration is exhausted.
// Each returned model is a fresh map owned by the caller.
func (it *ModelIterator) Next() (Model, bool) {
	if it.next >= it.count {
		return nil, false
	}
	model := make(Model, len(it.symbols))
	for j, symbol := range it.symbols {
		model[symbol] = (it.next>>uint64(j))&1 == 1
	}
	it.next++
	return model, true
}

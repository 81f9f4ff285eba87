package logic

import "fmt"

// UnboundSymbolError reports an evaluation that reached a symbol the model
// carries no value for. A missing binding is an incomplete model, never an
// implicit false.
type UnboundSymbolError struct {
	Symbol Symbol
}

func (err *UnboundSymbolError) Error() string {
	return fmt.Sprintf("symbol %q is not bound in the model", string(err.Symbol))
}

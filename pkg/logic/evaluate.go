package logic

import "fmt"

// Evaluate computes the truth value of s under m. Pure function of its
// inputs. Every symbol reached during evaluation must be bound in m;
// otherwise the result is an *UnboundSymbolError. And and Or short-circuit,
// which only affects how much of the tree is visited, never the value.
func Evaluate(s Sentence, m Model) (bool, error) {
	switch v := s.(type) {
	case Symbol:
		value, ok := m[v]
		if !ok {
			return false, &UnboundSymbolError{Symbol: v}
		}
		return value, nil

	case Not:
		value, err := Evaluate(v.Operand, m)
		if err != nil {
			return false, err
		}
		return !value, nil

	case And:
		for _, operand := range v.Operands {
			value, err := Evaluate(operand, m)
			if err != nil {
				return false, err
			}
			if !value {
				return false, nil
			}
		}
		return true, nil

	case Or:
		for _, operand := range v.Operands {
			value, err := Evaluate(operand, m)
			if err != nil {
				return false, err
			}
			if value {
				return true, nil
			}
		}
		return false, nil

	default:
		return false, fmt.Errorf("unknown sentence variant %T", s)
	}
}

package predicate

import "github.com/dmitrymomot/inputguard/pkg/validator"

// All accepts a text when every predicate accepts it. Evaluation stops at
// the first rejection or error. Nil predicates are skipped; All of nothing
// returns nil so no external stage is installed.
func All(preds ...validator.Predicate) validator.Predicate {
	clean := compact(preds)
	switch len(clean) {
	case 0:
		return nil
	case 1:
		return clean[0]
	}
	return func(text string) (bool, error) {
		for _, p := range clean {
			ok, err := p(text)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}
}

// Any accepts a text when at least one predicate accepts it. Evaluation
// stops at the first acceptance or error.
func Any(preds ...validator.Predicate) validator.Predicate {
	clean := compact(preds)
	switch len(clean) {
	case 0:
		return nil
	case 1:
		return clean[0]
	}
	return func(text string) (bool, error) {
		for _, p := range clean {
			ok, err := p(text)
			if err != nil {
				return false, err
			}
			if ok {
				return true, nil
			}
		}
		return false, nil
	}
}

func compact(preds []validator.Predicate) []validator.Predicate {
	out := make([]validator.Predicate, 0, len(preds))
	for _, p := range preds {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

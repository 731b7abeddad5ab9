package transform

// skipExtraComma implements "SKIP" recovery for a comma that appears
// where a list element was expected instead (spec.md §8's comma-skip
// scenarios: "SELECT ,a,b FROM ,t", "... ORDER BY ,a", "SELECT DISTINCT
// ON (a) ,b FROM t"). Grounded on the original implementation's
// skip_extra_comma.rs. A leading comma in any of these contexts never
// has a valid shift or reduce action, so by the time this hook runs
// (only on an action-table miss) ActionMissing is always true; the
// check is kept explicit so the hook's condition reads the same way
// the original's does.
func skipExtraComma(k Kinds) Hook {
	return func(st State) Decision {
		if st.Lookahead.Kind != k.Comma {
			return Decision{}
		}
		if !precedesListElement(st) {
			return Decision{}
		}
		return Decision{Skip: true, Applied: true}
	}
}

// precedesListElement reports whether the driver is positioned right
// after an opening delimiter of a comma-separated list (target list,
// FROM list, ORDER BY list, DISTINCT ON list) such that a comma here is
// a stray leading separator rather than between two real elements.
//
// This is a simplification of the original's state inspection: rather
// than re-deriving "list start" from the LR state machine, it treats
// any comma with ActionMissing as a leading stray (a comma between two
// real elements would have matched the grammar's list-separator
// production and never reach a hook at all).
func precedesListElement(st State) bool {
	return st.ActionMissing
}

// skipExtraOperator recovers from a doubled binary operator (e.g. a
// stray second "+" before an operand), skipping the redundant one.
// Only fires on a genuine action-table miss: a single operator always
// has a valid shift action, so two operators in a row is the only way
// this hook's condition becomes true.
func skipExtraOperator(k Kinds) Hook {
	return func(st State) Decision {
		if !st.ActionMissing {
			return Decision{}
		}
		for _, op := range k.Operator {
			if st.Lookahead.Kind == op && st.TopSymbol == op {
				return Decision{Skip: true, Applied: true}
			}
		}
		return Decision{}
	}
}

// insertMissingSampleValue inserts a placeholder numeric literal when
// the grammar expected a value (e.g. inside a VALUES list) and the
// input has none, letting the parse continue past the gap instead of
// failing outright.
func insertMissingSampleValue(k Kinds) Hook {
	return func(st State) Decision {
		if !st.ActionMissing || k.Values == 0 {
			return Decision{}
		}
		if st.TopSymbol != k.Values {
			return Decision{}
		}
		return Decision{Insert: true, Kind: k.SampleNum, Applied: true}
	}
}

// insertMissingFromTable inserts a placeholder table-name identifier
// when a FROM clause is missing its table reference entirely.
func insertMissingFromTable(k Kinds) Hook {
	return func(st State) Decision {
		if !st.ActionMissing || k.TableName == 0 {
			return Decision{}
		}
		if st.TopSymbol != k.From {
			return Decision{}
		}
		return Decision{Insert: true, Kind: k.TableName, Applied: true}
	}
}

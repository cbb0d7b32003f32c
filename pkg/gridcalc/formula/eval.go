// Package formula evaluates spreadsheet cell text: plain numeric literals or
// "="-prefixed expressions over numbers, cell references, + - * / and
// parentheses. Cell references are resolved recursively with depth-first
// cycle detection along the evaluation path.
package formula

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/gridcalc-go/pkg/gridcalc/cellref"
)

// Grid is the read boundary through which the evaluator resolves cell
// references. RawValue returns the raw stored text of a cell; an empty
// string for cells that do not exist.
type Grid interface {
	RawValue(row, col int) string
}

// Evaluate computes the numeric value of raw cell text against a grid.
// Text without a leading "=" must be a finite numeric literal. Formula text
// is tokenized, reordered to RPN, and reduced; every cell reference is
// resolved by recursively evaluating the referenced cell's raw content.
// A reference that re-enters a cell already on the current evaluation path
// fails with ErrCycle.
func Evaluate(g Grid, raw string) (float64, error) {
	resolving := make(map[cellref.Ref]struct{})
	return evalCell(g, raw, resolving)
}

func evalCell(g Grid, raw string, resolving map[cellref.Ref]struct{}) (float64, error) {
	body, ok := formulaBody(raw)
	if !ok {
		return parseLiteral(raw)
	}

	tokens, err := tokenize(body)
	if err != nil {
		return 0, err
	}

	return evalRPN(toRPN(tokens), func(label string) (float64, error) {
		ref, ok := cellref.Decode(label)
		if !ok {
			return 0, evalErr(ErrBadReference, label)
		}
		if _, active := resolving[ref]; active {
			return 0, evalErr(ErrCycle, label)
		}
		resolving[ref] = struct{}{}
		defer delete(resolving, ref)
		return evalCell(g, g.RawValue(ref.Row, ref.Col), resolving)
	})
}

// EvaluateFunc evaluates an expression against an arbitrary label-to-text
// source instead of a grid. It shares the grammar, RPN reduction, and error
// taxonomy of Evaluate but carries no cycle protection: a self-referential
// source recurses until the stack is exhausted. Callers owning cyclic data
// must use the grid-backed Evaluate.
func EvaluateFunc(raw string, get func(label string) string) (float64, error) {
	body, ok := formulaBody(raw)
	if !ok {
		return parseLiteral(raw)
	}

	tokens, err := tokenize(body)
	if err != nil {
		return 0, err
	}

	return evalRPN(toRPN(tokens), func(label string) (float64, error) {
		if _, ok := cellref.Decode(label); !ok {
			return 0, evalErr(ErrBadReference, label)
		}
		return EvaluateFunc(get(label), get)
	})
}

// formulaBody strips the leading "=" and reports whether raw is a formula.
func formulaBody(raw string) (string, bool) {
	if strings.HasPrefix(raw, "=") {
		return raw[1:], true
	}
	return "", false
}

// parseLiteral parses non-formula cell text as a plain number, rejecting
// non-finite results.
func parseLiteral(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, evalErr(ErrNotANumber, raw)
	}
	return v, nil
}

package main

import "errors"

// applyCommon implements the part of the apply() table from spec §4.1
// that is identical, word for word, across all three evaluators: the
// combinator bookkeeping cases (K, K1, S, S1), Print, I, V, and the
// abortive E. Each evaluator calls this first and only falls through to
// its own switch for the cases whose control-flow differs (S2, Promise,
// Read, CompareRead, Reprint, C, ReifiedCont) because those require
// further evaluation threaded in that evaluator's own style (direct
// recursion, CPS, or the explicit continuation stack).
//
// f and x are preconditions-checked by each caller to never be Apply.
func applyCommon(f, x Term, ctx *Context) (result Term, handled, aborted bool) {
	switch fv := f.(type) {
	case K:
		return K1{X: x}, true, false
	case K1:
		return fv.X, true, false
	case S:
		return S1{X: x}, true, false
	case S1:
		return S2{Y: fv.X, Z: x}, true, false
	case Print:
		ctx.emit(fv.Ch)
		return x, true, false
	case I:
		return x, true, false
	case V:
		return V{}, true, false
	case E:
		return x, true, true
	}
	return nil, false, false
}

// notApply reports a fatal invariant violation if t is an Apply node
// appearing where only fully-reduced values are allowed (spec §4.1's
// preconditions on apply(), and §7 class 4 "fatal invariants").
func notApply(t Term) {
	if _, isApply := t.(Apply); isApply {
		panic(fatalError{errApplyEscaped})
	}
}

var (
	errApplyEscaped    = errors.New("Apply term escaped into apply()'s operand position")
	errUnappliableTerm = errors.New("apply() reached a term with no applicable shape")
	errCInRecursive    = errors.New("program uses `c`, which the recursive evaluator cannot run")
)

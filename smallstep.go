package main

import (
	"github.com/Vlad-Shcherbina/unlambda/internal/panicerr"
	"github.com/Vlad-Shcherbina/unlambda/internal/pstack"
)

// frameKind tags a ContEntry as one of the two half-evaluated-application
// shapes the small-step evaluator ever needs to remember (spec §4.4).
type frameKind uint8

const (
	// frameArg means: the function side of an Apply has not been
	// evaluated yet; once the value currently being computed settles,
	// remember it and go evaluate Term (the argument).
	frameArg frameKind = iota
	// frameFunc means: Term already IS an evaluated function value;
	// once the value currently being computed settles, apply Term to
	// it.
	frameFunc
)

// ContEntry is one frame of a small-step continuation: either "evaluate
// this argument next" or "apply this function next" (C6). A contStack is
// a persistent, shareable sequence of these, which is exactly what a
// captured ReifiedCont snapshots.
type ContEntry struct {
	kind frameKind
	term Term
}

// contStack is the small-step evaluator's explicit, reified continuation:
// a persistent stack of ContEntry so that capturing "the rest of the
// computation" for `c` is an O(1) clone rather than a host-stack copy.
type contStack = pstack.Stack[ContEntry]

// RunSmallStep evaluates t to a final value using the small-step state
// machine with an explicit continuation stack (C6). Like RunCPS, and
// unlike RunRecursive, it can run programs that use `c`.
// Deep Apply spines and deep continuation chains are both walked without
// recursing through the host stack; only panicerr.Recover's goroutine
// frame and this function's own small, bounded set of local frames are
// ever on the host stack while it runs.
func RunSmallStep(t Term, ctx *Context) (result Term, err error) {
	err = panicerr.Recover("smallstep", func() (reterr error) {
		defer func() {
			if r := recover(); r != nil {
				if ab, ok := r.(abortSignal); ok {
					result = ab.value
					return
				}
				panic(r)
			}
		}()
		result = runSmallStep(t, ctx)
		return nil
	})
	return result, err
}

func runSmallStep(t Term, ctx *Context) Term {
	var stack contStack
outer:
	for {
		// Drive t down to a value, pushing one frame per nested Apply.
		for {
			app, ok := t.(Apply)
			if !ok {
				break
			}
			stack.Push(ContEntry{kind: frameArg, term: app.X})
			t = app.F
		}
		// t is now a value. Resume the continuation with it, possibly
		// producing a new (still unevaluated) term to drive down again.
		for {
			entry, ok := stack.TryPopUnique()
			if !ok {
				entry, ok = stack.PopClone()
			}
			if !ok {
				return t
			}
			switch entry.kind {
			case frameArg:
				if _, isD := t.(D); isD {
					t = Promise{T: entry.term}
					continue
				}
				stack.Push(ContEntry{kind: frameFunc, term: t})
				t = entry.term
				continue outer
			case frameFunc:
				next, isNewTerm := applySmallStep(entry.term, t, ctx, &stack)
				if isNewTerm {
					t = next
					continue outer
				}
				t = next
			}
		}
	}
}

// applySmallStep applies f to x in the small-step evaluator's style: it
// handles every case applyCommon does not, plus the two cases unique to
// this evaluator (C and ReifiedCont), each of which manipulates stack
// directly instead of threading a return continuation through Go's call
// stack. isNewTerm tells the caller whether the result still needs to be
// driven down (an unevaluated Apply, or a jump to a captured
// continuation) or is already a settled value.
func applySmallStep(f, x Term, ctx *Context, stack *contStack) (result Term, isNewTerm bool) {
	notApply(f)
	notApply(x)

	if v, handled, aborted := applyCommon(f, x, ctx); handled {
		if aborted {
			panic(abortSignal{v})
		}
		return v, false
	}

	switch fv := f.(type) {
	case S2:
		return Apply{F: Apply{F: fv.Y, X: x}, X: Apply{F: fv.Z, X: x}}, true

	case D:
		return Promise{T: x}, false

	case Promise:
		return Apply{F: fv.T, X: x}, true

	case Read:
		ch, ok := ctx.readByte()
		if !ok {
			return Apply{F: x, X: V{}}, true
		}
		return applySmallStep(CompareRead{Ch: ch}, x, ctx, stack)

	case CompareRead:
		if ctx.compareCur(fv.Ch) {
			return Apply{F: x, X: I{}}, true
		}
		return Apply{F: x, X: V{}}, true

	case Reprint:
		return Apply{F: x, X: ctx.reprintTerm()}, true

	case C:
		// Capture the continuation now, before evaluating x's call:
		// `c x` reduces to `x <captured>` evaluated in the *current*
		// stack, exactly like any other application.
		captured := ReifiedCont{Cont: stack.Clone()}
		return Apply{F: x, X: captured}, true

	case ReifiedCont:
		// Invoking a captured continuation abandons the current stack
		// in favor of the one captured at `c`-time, and resumes it with
		// x. The clone is O(1); the abandoned stack is released the
		// normal way, through Go's garbage collector, once nothing
		// else references it.
		*stack = fv.Cont.Clone()
		return x, true

	default:
		panic(fatalError{errUnappliableTerm})
	}
}

// abortSignal unwinds whichever evaluator is running when `e` is applied,
// carrying the value it was applied to as the program's final result
// (spec §4.1, the "e" row). It is recovered locally by RunRecursive,
// RunCPS and RunSmallStep and never escapes as an error.
type abortSignal struct{ value Term }

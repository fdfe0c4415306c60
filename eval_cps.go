package main

import "github.com/Vlad-Shcherbina/unlambda/internal/panicerr"

// cpsCont is the CPS evaluator's representation of "the rest of the
// computation": a Go closure from a value to the next step to run. This
// is the idiomatic Go rendition of the trampoline's continuation
// argument (spec §4.3) — closures over *Context instead of an explicit
// threaded environment, which is the one deliberate deviation from the
// original's plumbing that SPEC_FULL.md calls out as a Go-idiom
// substitution rather than a semantic change.
type cpsCont func(Term) step

// step is either "done" (a final value, bottoming out the trampoline) or
// "more work" (a thunk to run next). Driving a computation to completion
// is a plain loop over step values, so neither deep Apply spines nor deep
// combinator chains recurse through the host stack; only the thunk
// closures themselves live on the heap.
type step struct {
	done  bool
	value Term
	next  func() step
}

func finished(v Term) step       { return step{done: true, value: v} }
func more(next func() step) step { return step{next: next} }

// RunCPS evaluates t to a final value using the continuation-passing,
// trampolined evaluator (C5). Like RunSmallStep it supports `c`, but
// represents captured continuations as opaque closures (Cont) rather
// than the small-step evaluator's inspectable persistent stack.
func RunCPS(t Term, ctx *Context) (result Term, err error) {
	err = panicerr.Recover("cps", func() (reterr error) {
		defer func() {
			if r := recover(); r != nil {
				if ab, ok := r.(abortSignal); ok {
					result = ab.value
					return
				}
				panic(r)
			}
		}()
		result = trampoline(evalCPS(t, ctx, finished))
		return nil
	})
	return result, err
}

// trampoline drives a chain of step values to completion without
// growing the host stack: each iteration calls at most one thunk.
func trampoline(s step) Term {
	for !s.done {
		s = s.next()
	}
	return s.value
}

// evalCPS evaluates t and, once it has a value, invokes k with it. It
// returns a step rather than calling k directly so that the trampoline
// — not evalCPS's own Go call stack — absorbs the depth of a long Apply
// spine or a long chain of dependent continuations.
func evalCPS(t Term, ctx *Context, k cpsCont) step {
	if app, ok := t.(Apply); ok {
		return more(func() step {
			return evalCPS(app.F, ctx, func(f Term) step {
				if _, isD := f.(D); isD {
					return more(func() step { return k(Promise{T: app.X}) })
				}
				return more(func() step {
					return evalCPS(app.X, ctx, func(x Term) step {
						return more(func() step { return applyCPS(f, x, ctx, k) })
					})
				})
			})
		})
	}
	return more(func() step { return k(t) })
}

// applyCPS applies f to x in the CPS evaluator's style: applyCommon
// handles the cases shared with the other two evaluators, and the
// switch below handles the cases whose continuation needs the
// trampoline, including C and Cont.
func applyCPS(f, x Term, ctx *Context, k cpsCont) step {
	notApply(f)
	notApply(x)

	if v, handled, aborted := applyCommon(f, x, ctx); handled {
		if aborted {
			panic(abortSignal{v})
		}
		return k(v)
	}

	switch fv := f.(type) {
	case S2:
		return evalCPS(Apply{F: Apply{F: fv.Y, X: x}, X: Apply{F: fv.Z, X: x}}, ctx, k)

	case D:
		return k(Promise{T: x})

	case Promise:
		return evalCPS(Apply{F: fv.T, X: x}, ctx, k)

	case Read:
		ch, ok := ctx.readByte()
		if !ok {
			return evalCPS(Apply{F: x, X: V{}}, ctx, k)
		}
		return applyCPS(CompareRead{Ch: ch}, x, ctx, k)

	case CompareRead:
		if ctx.compareCur(fv.Ch) {
			return evalCPS(Apply{F: x, X: I{}}, ctx, k)
		}
		return evalCPS(Apply{F: x, X: V{}}, ctx, k)

	case Reprint:
		return evalCPS(Apply{F: x, X: ctx.reprintTerm()}, ctx, k)

	case C:
		// `c x` calls x with a value representing "everything this
		// evaluation would otherwise do with the result" — here, simply
		// k itself, wrapped as a first-class Term.
		return evalCPS(Apply{F: x, X: Cont{k: k}}, ctx, k)

	case Cont:
		// Invoking a captured continuation discards k (the caller's own
		// "what happens next") in favor of the continuation captured at
		// `c`-time: an escape, never a return.
		return fv.k(x)

	default:
		panic(fatalError{errUnappliableTerm})
	}
}

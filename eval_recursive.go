package main

import "github.com/Vlad-Shcherbina/unlambda/internal/panicerr"

// RunRecursive evaluates t to a final value using a direct, host-stack
// recursive evaluator (C4) — the simplest and most directly "what the
// combinators mean" of the three, and accordingly the reference the
// other two are checked against in the differential tests. It refuses,
// up front, any program that uses `c`: without an explicit continuation
// representation there is nothing for call/cc to capture (spec §4.2,
// §7 class 3), so containsC is checked once before evaluation starts
// rather than discovered mid-run as a panic.
func RunRecursive(t Term, ctx *Context) (result Term, err error) {
	if containsC(t) {
		return nil, errCInRecursive
	}
	err = panicerr.Recover("recursive", func() (reterr error) {
		defer func() {
			if r := recover(); r != nil {
				if ab, ok := r.(abortSignal); ok {
					result = ab.value
					return
				}
				panic(r)
			}
		}()
		result = evalRecursive(t, ctx)
		return nil
	})
	return result, err
}

// evalRecursive reduces t to a value, recursing directly through Go's
// call stack for both the Apply spine and any chain of dependent
// applications. A program guaranteed not to contain `c` still may nest a
// million Apply deep; unlike the other two evaluators this one is not
// immune to that, which is exactly the tradeoff spec §4.2 documents it
// making in exchange for being the simplest of the three to read.
func evalRecursive(t Term, ctx *Context) Term {
	app, ok := t.(Apply)
	if !ok {
		return t
	}
	f := evalRecursive(app.F, ctx)
	if _, isD := f.(D); isD {
		return Promise{T: app.X}
	}
	x := evalRecursive(app.X, ctx)
	return applyRecursive(f, x, ctx)
}

// applyRecursive applies f to x in the recursive evaluator's style:
// applyCommon handles the shared cases, and recursive calls back into
// evalRecursive stand in for what the other two evaluators do via an
// explicit continuation.
func applyRecursive(f, x Term, ctx *Context) Term {
	notApply(f)
	notApply(x)

	if v, handled, aborted := applyCommon(f, x, ctx); handled {
		if aborted {
			panic(abortSignal{v})
		}
		return v
	}

	switch fv := f.(type) {
	case S2:
		return evalRecursive(Apply{F: Apply{F: fv.Y, X: x}, X: Apply{F: fv.Z, X: x}}, ctx)

	case D:
		return Promise{T: x}

	case Promise:
		return evalRecursive(Apply{F: fv.T, X: x}, ctx)

	case Read:
		ch, ok := ctx.readByte()
		if !ok {
			return evalRecursive(Apply{F: x, X: V{}}, ctx)
		}
		return applyRecursive(CompareRead{Ch: ch}, x, ctx)

	case CompareRead:
		if ctx.compareCur(fv.Ch) {
			return evalRecursive(Apply{F: x, X: I{}}, ctx)
		}
		return evalRecursive(Apply{F: x, X: V{}}, ctx)

	case Reprint:
		return evalRecursive(Apply{F: x, X: ctx.reprintTerm()}, ctx)

	case C, ReifiedCont, Cont:
		panic(fatalError{errCInRecursive})

	default:
		panic(fatalError{errUnappliableTerm})
	}
}

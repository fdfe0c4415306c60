package main

// ReleaseTerm iteratively tears down a term tree, the root-package half
// of the module's non-recursive destructor contract (C3), grounded on
// deconstruct_term in the original source. Nothing here is reachable by
// Go's garbage collector failing to free memory — the GC already walks
// arbitrarily deep graphs without recursing through the host stack — but
// code *we* write to walk a Term tree (this function, and printTerm) has
// no such guarantee unless it is written this way on purpose. ReleaseTerm
// exists for callers that want deterministic, immediate teardown of a
// huge discarded term (e.g. between differential-test iterations) rather
// than waiting on GC timing, and for draining a ReifiedCont's captured
// stack the same way.
func ReleaseTerm(t Term) {
	work := []Term{t}
	for len(work) > 0 {
		n := len(work) - 1
		t, work = work[n], work[:n]
		switch v := t.(type) {
		case Apply:
			work = append(work, v.F, v.X)
		case K1:
			work = append(work, v.X)
		case S1:
			work = append(work, v.X)
		case S2:
			work = append(work, v.Y, v.Z)
		case Promise:
			work = append(work, v.T)
		case ReifiedCont:
			v.Cont.Release(func(e ContEntry) {
				work = append(work, e.term)
			})
		}
	}
}

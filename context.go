package main

import (
	"io"

	"github.com/Vlad-Shcherbina/unlambda/internal/flushio"
	"github.com/Vlad-Shcherbina/unlambda/internal/runeio"
)

// Context is the evaluation context shared by whichever evaluator is
// currently running (C7): an output byte sink, an input character source,
// and the single-character "last read" slot that CompareRead and Reprint
// observe. Only one evaluator ever borrows a Context at a time (§5);
// there is no synchronization here because there is no concurrent access.
type Context struct {
	Out flushio.WriteFlusher
	in  runeio.Reader

	curChar    byte
	hasCurChar bool
}

// NewContext builds a Context around the given output writer and ASCII
// input source, matching the teacher's flush-before-read discipline
// (core.go's Core.readRune flushes output before blocking on input).
func NewContext(out io.Writer, in io.Reader) *Context {
	return &Context{
		Out: flushio.NewWriteFlusher(out),
		in:  runeio.NewReader(in),
	}
}

// emit writes a single ASCII byte to the output sink, halting the
// evaluator (via a fatal panic recovered at the top level) on I/O error.
func (ctx *Context) emit(ch byte) {
	if _, err := ctx.Out.Write([]byte{ch}); err != nil {
		panic(fatalError{err})
	}
}

// readByte pulls one ASCII byte from the input source into cur_char,
// flushing pending output first so that interactive programs see their
// prompts before blocking on input. It reports whether a character was
// available.
func (ctx *Context) readByte() (ch byte, ok bool) {
	if err := ctx.Out.Flush(); err != nil {
		panic(fatalError{err})
	}
	r, _, err := ctx.in.ReadRune()
	if err == io.EOF {
		ctx.hasCurChar = false
		return 0, false
	}
	if err != nil {
		panic(fatalError{err})
	}
	ctx.curChar = byte(r)
	ctx.hasCurChar = true
	return ctx.curChar, true
}

// compareCur reports whether cur_char is set and equals ch.
func (ctx *Context) compareCur(ch byte) bool {
	return ctx.hasCurChar && ctx.curChar == ch
}

// reprintTerm returns the Print term for cur_char, or V{} if no character
// has ever been read.
func (ctx *Context) reprintTerm() Term {
	if !ctx.hasCurChar {
		return V{}
	}
	return Print{Ch: ctx.curChar}
}

// fatalError wraps an I/O error surfaced from inside an evaluator so the
// top-level Run recovers it as a class-4 fatal invariant violation (§7)
// rather than unwinding bare.
type fatalError struct{ error }

func (err fatalError) Unwrap() error { return err.error }

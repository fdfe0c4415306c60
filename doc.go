/*
Package main implements an interpreter for unlambda, a minimal,
point-free combinator language in the spirit of Unlambda: the only
sentence structure is prefix application (written `fx for "apply f to
x"), and everything else is built out of a handful of atomic
combinators.

	k         the K combinator: `kx reduces to a value that, applied to
	          anything, returns x
	s         the S combinator: ```sxyz reduces to ``xz`yz
	i         the identity combinator: `ix reduces to x
	v         the "void" value: applying v to anything returns v
	d         delay: `dx does not evaluate x yet; applying the result to
	          y evaluates `xy
	c         call/cc: `cx applies x to a first-class value representing
	          the rest of the program's computation; applying that value
	          to anything abandons whatever it was doing and resumes the
	          captured point instead
	e         `ex aborts evaluation immediately, yielding x as the
	          program's final result
	.x        prints the character x, then acts like i
	r         shorthand for .<newline>
	@         `@y reads one character of input, then evaluates `yi if it
	          got one, or `yv at end of input
	?x        `?xy reads no input; it evaluates `yi if the last character
	          read is x, otherwise `yv
	|         `|y evaluates `y.c where c is the last character read, or
	          `yv if nothing has been read

A # starts a comment running to end of line. Whitespace between tokens
is ignored; any other character is a parse error.

Three evaluators implement the same reduction rules with different
tradeoffs:

  - RunRecursive walks the term tree with ordinary recursive Go function
    calls. It is the simplest of the three to read, and correspondingly
    the one the other two are checked against, but it cannot run a
    program that uses `c` (there is nothing for call/cc to capture), and
    it can overflow the host stack on sufficiently deep input.

  - RunCPS evaluates in continuation-passing style, trampolined so that
    neither a deep Apply spine nor a long chain of captured
    continuations ever recurses through the host stack. It supports `c`.

  - RunSmallStep evaluates via an explicit state machine over a
    persistent, reified continuation stack (see internal/pstack), making
    a captured continuation an ordinary, inspectable value rather than an
    opaque closure. It also supports `c`.

See parser.go for the concrete syntax, term.go for the term
representation shared by all three evaluators, and printer.go for
rendering terms back to source-like text.
*/
package main

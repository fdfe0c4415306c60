package main

import (
	"errors"
	"fmt"
	"unicode"
)

// ParseString parses Unlambda source text into a Term (C8), grounded
// directly on the original parser.rs: a single consume-only rune
// iterator plus an explicit "path" stack standing in for the call stack
// a naive recursive-descent backtick parser would use. Each backtick
// pushes an empty slot; each completed leaf or subtree pops slots,
// filling an empty one (this subtree becomes the left operand of its
// enclosing backtick) or combining with a filled one (Apply(left,
// subtree)) and continuing to pop, so a term like `` `kv `kv`` closes
// out multiple pending applications in a single step without recursing.
func ParseString(s string) (Term, error) {
	runes := []rune(s)
	pos := 0
	readRune := func() (rune, bool) {
		if pos >= len(runes) {
			return 0, false
		}
		c := runes[pos]
		pos++
		return c, true
	}

	type slot struct {
		left    Term
		hasLeft bool
	}
	var path []slot
	var result Term

outer:
	for {
		var leaf Term
		c, ok := readRune()
		if !ok {
			return nil, errors.New("unexpected EOF")
		}
		switch c {
		case '`':
			path = append(path, slot{})
			continue outer
		case 'k':
			leaf = K{}
		case 's':
			leaf = S{}
		case 'i':
			leaf = I{}
		case 'v':
			leaf = V{}
		case 'd':
			leaf = D{}
		case 'e':
			leaf = E{}
		case 'c':
			leaf = C{}
		case '.':
			ch, ok := readRune()
			if !ok {
				return nil, errors.New("unexpected EOF after '.'")
			}
			leaf = Print{Ch: byte(ch)}
		case 'r':
			leaf = Print{Ch: '\n'}
		case '@':
			leaf = Read{}
		case '?':
			ch, ok := readRune()
			if !ok {
				return nil, errors.New("unexpected EOF after '?'")
			}
			leaf = CompareRead{Ch: byte(ch)}
		case '|':
			leaf = Reprint{}
		case '#':
			skipComment(runes, &pos)
			continue outer
		default:
			if unicode.IsSpace(c) {
				continue outer
			}
			return nil, fmt.Errorf("unrecognized %q", c)
		}

		subtree := leaf
		for {
			if len(path) == 0 {
				result = subtree
				break outer
			}
			top := path[len(path)-1]
			path = path[:len(path)-1]
			if !top.hasLeft {
				path = append(path, slot{left: subtree, hasLeft: true})
				break
			}
			subtree = Apply{F: top.left, X: subtree}
		}
	}

	for {
		c, ok := readRune()
		if !ok {
			break
		}
		switch {
		case c == '#':
			skipComment(runes, &pos)
		case unicode.IsSpace(c):
		default:
			return nil, fmt.Errorf("unexpected %q", c)
		}
	}

	return result, nil
}

// skipComment consumes runes through and including the next newline, or
// through EOF if none remains — matching parser.rs's skip_comment, which
// treats EOF as an implicit trailing newline.
func skipComment(runes []rune, pos *int) {
	for {
		if *pos >= len(runes) {
			return
		}
		c := runes[*pos]
		*pos++
		if c == '\n' {
			return
		}
	}
}

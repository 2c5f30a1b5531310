package aspath

import (
	"fmt"
	"strings"
)

// ToString returns p's printable form under the subsystem's current
// display mode, computing and caching it on first use (or recomputing it
// if the display mode has changed since it was last cached). The empty
// path renders as "".
//
// Format (spec §4.5): segments are space-separated; within a segment,
// members are space-separated for ordered segments and comma-separated
// for unordered ones; every segment type except AS_SEQUENCE is bracketed
// ({...} AS_SET, [...] AS_CONFED_SET, (...) AS_CONFED_SEQUENCE);
// AS_SEQUENCE has no brackets.
func (s *Subsystem) ToString(p *Path) string {
	if p.IsEmpty() {
		return ""
	}

	mode := s.DisplayMode()

	s.store.mu.Lock()
	if p.cachedString != nil && p.cachedMode == mode {
		str := *p.cachedString
		s.store.mu.Unlock()
		return str
	}
	s.store.mu.Unlock()

	str := renderChain(p.body, mode)

	s.store.mu.Lock()
	p.cachedString = &str
	p.cachedMode = mode
	s.store.mu.Unlock()

	return str
}

func renderChain(head *segment, mode DisplayMode) string {
	var segs []string
	for s := head; s != nil; s = s.next {
		parts := make([]string, len(s.members))
		sep := " "
		if !s.typ.ordered() {
			sep = ","
		}
		for i, a := range s.members {
			parts[i] = a.render(mode)
		}
		body := strings.Join(parts, sep)
		switch s.typ {
		case AS_SET:
			segs = append(segs, "{"+body+"}")
		case AS_CONFED_SET:
			segs = append(segs, "["+body+"]")
		case AS_CONFED_SEQUENCE:
			segs = append(segs, "("+body+")")
		default: // AS_SEQUENCE
			segs = append(segs, body)
		}
	}
	return strings.Join(segs, " ")
}

// FromString tokenizes text by whitespace and commas, recognizing {...},
// [...] and (...) to open and close AS_SET, AS_CONFED_SET and
// AS_CONFED_SEQUENCE segments respectively; unbracketed numbers form an
// AS_SEQUENCE. Numbers accept any of the four asn display forms (spec
// §6). The result is normalized; it is returned uninterned, matching
// spec §4.5's "from_string(text) -> path (uninterned)".
func FromString(text string) (*Path, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}

	var head, last *segment
	appendSeg := func(s *segment) {
		if head == nil {
			head = s
		} else {
			last.next = s
		}
		last = s
	}

	var seqBuf []ASN
	flushSeq := func() {
		if len(seqBuf) > 0 {
			appendSeg(&segment{typ: AS_SEQUENCE, members: seqBuf})
			seqBuf = nil
		}
	}

	var openType SegmentType
	var open bool
	var setBuf []ASN

	for _, t := range toks {
		switch t {
		case "{", "[", "(":
			if open {
				return nil, fmt.Errorf("%w: nested bracket", ErrMalformedInputString)
			}
			flushSeq()
			open = true
			setBuf = nil
			switch t {
			case "{":
				openType = AS_SET
			case "[":
				openType = AS_CONFED_SET
			case "(":
				openType = AS_CONFED_SEQUENCE
			}
		case "}", "]", ")":
			if !open {
				return nil, fmt.Errorf("%w: unbalanced closing bracket %q", ErrMalformedInputString, t)
			}
			want := map[string]SegmentType{"}": AS_SET, "]": AS_CONFED_SET, ")": AS_CONFED_SEQUENCE}[t]
			if want != openType {
				return nil, fmt.Errorf("%w: mismatched bracket %q", ErrMalformedInputString, t)
			}
			appendSeg(&segment{typ: openType, members: setBuf})
			open = false
			setBuf = nil
		default:
			a, err := parseASN(t)
			if err != nil {
				return nil, err
			}
			if open {
				setBuf = append(setBuf, a)
			} else {
				seqBuf = append(seqBuf, a)
			}
		}
	}

	if open {
		return nil, fmt.Errorf("%w: unterminated bracket", ErrMalformedInputString)
	}
	flushSeq()

	return newDraft(normalize(head)), nil
}

// tokenize splits text into bracket tokens, comma/whitespace separators
// (dropped), and numeric tokens (digits and dots only).
func tokenize(text string) ([]string, error) {
	var toks []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}

	for _, r := range text {
		switch {
		case r == '{' || r == '}' || r == '[' || r == ']' || r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		case (r >= '0' && r <= '9') || r == '.':
			cur.WriteRune(r)
		default:
			return nil, fmt.Errorf("%w: unrecognized character %q", ErrMalformedInputString, r)
		}
	}
	flush()
	return toks, nil
}

package machine

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// A ParseError describes a malformed machine description.
type ParseError struct {
	Line int // 1-based line number in the input stream, 0 if unknown.
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

// Parse reads one machine description per line until EOF.
// Blank lines and lines starting with '#' are skipped.
// Parsing fails fast: the first malformed line aborts the whole parse and is
// reported with its line number.
func Parse(r io.Reader) ([]Machine, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var machines []Machine
	num := 0
	for sc.Scan() {
		num++
		m, ok, err := ParseLine(sc.Text())
		if err != nil {
			if pe, isParse := err.(*ParseError); isParse {
				pe.Line = num
			}
			return nil, err
		}
		if ok {
			machines = append(machines, *m)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read machine descriptions: %v", err)
	}
	return machines, nil
}

// ParseLine parses a single machine description.
// ok is false when the line is blank or a comment.
func ParseLine(line string) (m *Machine, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, false, nil
	}
	start := strings.IndexByte(line, '[')
	if start < 0 {
		return nil, false, &ParseError{Msg: "missing '[' in machine description"}
	}
	endRel := strings.IndexByte(line[start+1:], ']')
	if endRel < 0 {
		return nil, false, &ParseError{Msg: "missing ']' in machine description"}
	}
	pattern := line[start+1 : start+1+endRel]
	target, err := parsePattern(pattern)
	if err != nil {
		return nil, false, err
	}
	lights := len(pattern)

	rest := strings.TrimSpace(line[start+2+endRel:])
	var buttons []Mask
	for rest != "" && rest[0] != '{' {
		if rest[0] != '(' {
			return nil, false, &ParseError{Msg: fmt.Sprintf("expected '(' at %q in button list", rest)}
		}
		stop := strings.IndexByte(rest, ')')
		if stop < 0 {
			return nil, false, &ParseError{Msg: "missing ')' in button definition"}
		}
		mask, err := parseButton(rest[1:stop], lights)
		if err != nil {
			return nil, false, err
		}
		if !mask.IsZero() {
			buttons = append(buttons, mask)
		}
		rest = strings.TrimSpace(rest[stop+1:])
	}
	// Buttons with the same effect set are interchangeable for any minimum
	// press count, so duplicates collapse to one.
	sort.Slice(buttons, func(i, j int) bool { return buttons[i].Less(buttons[j]) })
	buttons = dedupMasks(buttons)

	var joltage []uint64
	if rest != "" {
		stop := strings.IndexByte(rest, '}')
		if stop < 0 {
			return nil, false, &ParseError{Msg: "missing '}' in joltage targets"}
		}
		if joltage, err = parseJoltage(rest[1:stop]); err != nil {
			return nil, false, err
		}
		if tail := strings.TrimSpace(rest[stop+1:]); tail != "" {
			return nil, false, &ParseError{Msg: fmt.Sprintf("unexpected trailing content %q", tail)}
		}
	}
	if len(joltage) != 0 && len(joltage) != lights {
		return nil, false, &ParseError{
			Msg: fmt.Sprintf("got %d joltage targets for %d indicator lights", len(joltage), lights),
		}
	}
	return &Machine{Lights: lights, Target: target, Buttons: buttons, Joltage: joltage}, true, nil
}

func parsePattern(pattern string) (Mask, error) {
	if pattern == "" {
		return Mask{}, &ParseError{Msg: "indicator diagram must not be empty"}
	}
	if len(pattern) > MaxCounters {
		return Mask{}, &ParseError{
			Msg: fmt.Sprintf("indicator diagram has %d lights, max is %d", len(pattern), MaxCounters),
		}
	}
	var target Mask
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '#':
			target = target.With(i)
		case '.':
		default:
			return Mask{}, &ParseError{Msg: fmt.Sprintf("invalid character %q in indicator diagram", pattern[i])}
		}
	}
	return target, nil
}

// parseButton converts a comma-separated list of counter indices into a Mask.
// Duplicate indices within one button are idempotent.
func parseButton(spec string, lights int) (Mask, error) {
	var mask Mask
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		idx, err := strconv.Atoi(field)
		if err != nil {
			return Mask{}, &ParseError{Msg: fmt.Sprintf("invalid counter index %q in button definition", field)}
		}
		if idx < 0 || idx >= lights {
			return Mask{}, &ParseError{
				Msg: fmt.Sprintf("counter index %d out of range for machine with %d counters", idx, lights),
			}
		}
		mask = mask.With(idx)
	}
	return mask, nil
}

func parseJoltage(spec string) ([]uint64, error) {
	var targets []uint64
	for _, field := range strings.Split(spec, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		val, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("invalid joltage target %q", field)}
		}
		targets = append(targets, val)
	}
	return targets, nil
}

// dedupMasks removes consecutive duplicates from a sorted slice.
func dedupMasks(masks []Mask) []Mask {
	if len(masks) < 2 {
		return masks
	}
	res := masks[:1]
	for _, m := range masks[1:] {
		if m != res[len(res)-1] {
			res = append(res, m)
		}
	}
	return res
}

package zonefile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ExpandGenerate rewrites every BIND $GENERATE line in text into its
// literal, iterated RR lines, leaving everything else untouched. The
// core zone package has no notion of $GENERATE (RFC 1035's directive
// set is exhaustive and does not include it; spec.md's grammar
// correctly rejects it as an unknown directive) — this pre-pass is
// where the teacher's convenience feature lives instead, one layer
// above the tokenizer.
//
// Accepted form: "$GENERATE range lhs [ttl] [class] type rhs", where
// range is "start-stop" or "start-stop/step" and lhs/rhs may use BIND's
// $ and ${offset,width,base} iterator placeholders.
func ExpandGenerate(text string) (string, error) {
	lines := strings.Split(text, "\n")
	var out []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "$GENERATE") {
			out = append(out, line)
			continue
		}

		fields := strings.Fields(trimmed)
		if len(fields) < 4 {
			return "", fmt.Errorf("invalid $GENERATE directive: %q", line)
		}

		start, stop, step, err := parseGenerateRange(fields[1])
		if err != nil {
			return "", fmt.Errorf("$GENERATE: %w", err)
		}

		lhs := fields[2]
		rest := fields[3:]
		rhs := strings.Join(rest, " ")

		for iter := start; stepDirectionOK(iter, stop, step); iter += step {
			owner := expandPlaceholders(lhs, iter)
			rdata := expandPlaceholders(rhs, iter)
			out = append(out, owner+" "+rdata)
		}
	}

	return strings.Join(out, "\n"), nil
}

func stepDirectionOK(iter, stop, step int) bool {
	if step >= 0 {
		return iter <= stop
	}
	return iter >= stop
}

// parseGenerateRange parses BIND's "start-stop" or "start-stop/step"
// range syntax.
func parseGenerateRange(s string) (start, stop, step int, err error) {
	step = 1
	parts := strings.SplitN(s, "/", 2)
	if len(parts) == 2 {
		step, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, 0, fmt.Errorf("invalid step %q", parts[1])
		}
		if step == 0 {
			return 0, 0, 0, fmt.Errorf("step cannot be zero")
		}
	}

	bounds := strings.SplitN(parts[0], "-", 2)
	if len(bounds) != 2 {
		return 0, 0, 0, fmt.Errorf("invalid range %q", s)
	}
	start, err = strconv.Atoi(bounds[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid range start %q", bounds[0])
	}
	stop, err = strconv.Atoi(bounds[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid range stop %q", bounds[1])
	}
	if stop < start && step > 0 {
		step = -step
	}
	return start, stop, step, nil
}

var generateOffsetRE = regexp.MustCompile(`\$\{(-?\d+)(?:,(\d+)(?:,([doxX]))?)?\}`)

// expandPlaceholders substitutes BIND's bare "$" and "${offset,width,base}"
// iterator placeholders with iter's value, the way the teacher's
// replacePlaceholders does (zoneparser/utils.go).
func expandPlaceholders(s string, iter int) string {
	result := generateOffsetRE.ReplaceAllStringFunc(s, func(m string) string {
		sub := generateOffsetRE.FindStringSubmatch(m)
		offset, _ := strconv.Atoi(sub[1])
		value := iter + offset
		width := 0
		if sub[2] != "" {
			width, _ = strconv.Atoi(sub[2])
		}
		base := "d"
		if sub[3] != "" {
			base = sub[3]
		}
		switch base {
		case "x":
			if width > 0 {
				return fmt.Sprintf("%0*x", width, value)
			}
			return fmt.Sprintf("%x", value)
		case "X":
			if width > 0 {
				return fmt.Sprintf("%0*X", width, value)
			}
			return fmt.Sprintf("%X", value)
		case "o":
			if width > 0 {
				return fmt.Sprintf("%0*o", width, value)
			}
			return fmt.Sprintf("%o", value)
		default:
			if width > 0 {
				return fmt.Sprintf("%0*d", width, value)
			}
			return strconv.Itoa(value)
		}
	})
	return strings.ReplaceAll(result, "$", strconv.Itoa(iter))
}

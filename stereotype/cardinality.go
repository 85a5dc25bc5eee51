package stereotype

import (
	"strconv"
	"strings"
)

// RelaxCardinality lowers a cardinality string's lower bound to 0, used when
// a part is migrated onto a new whole during abstract_parthood: the former
// lower bound can no longer be guaranteed since the part's old context is
// gone.
//
// A bare "*" or an upper bound of "*" has no lower bound to relax and
// returns ok=false (the caller should drop the cardinality rather than
// fabricate one). A malformed value is returned unchanged.
func RelaxCardinality(original string) (relaxed string, ok bool) {
	if original == "*" {
		return "", false
	}
	parts := strings.SplitN(original, "..", 2)
	if len(parts) > 1 {
		if parts[1] == "*" {
			return "", false
		}
		return "0.." + parts[1], true
	}
	upper, err := strconv.Atoi(original)
	if err != nil {
		return original, true
	}
	if upper <= 0 {
		return "", false
	}
	return "0.." + strconv.Itoa(upper), true
}

// MinimalCardinality returns the broadest cardinality spanning both fst and
// snd: the lower of the two lower bounds and the higher of the two upper
// bounds. Used when two relations merge into one (move_relation) and the
// merged relation must tolerate either original multiplicity.
//
// Either input being a bare "*" makes broadening meaningless and returns
// ok=false, as does a result whose lower bound is 0 with an unbounded upper
// (the degenerate "0..*" is reported as "no constraint" rather than spelled out).
func MinimalCardinality(fst, snd string) (broadened string, ok bool) {
	if fst == "*" || snd == "*" {
		return "", false
	}

	fstLo, fstHi, err := splitBound(fst)
	if err != nil {
		return "", false
	}
	sndLo, sndHi, err := splitBound(snd)
	if err != nil {
		return "", false
	}

	lower := min(fstLo, sndLo)

	var upper string
	if fstHi == "*" || sndHi == "*" {
		if lower == 0 {
			return "", false
		}
		upper = "*"
	} else {
		fstHiN, err := strconv.Atoi(fstHi)
		if err != nil {
			return "", false
		}
		sndHiN, err := strconv.Atoi(sndHi)
		if err != nil {
			return "", false
		}
		upper = strconv.Itoa(max(fstHiN, sndHiN))
	}

	lowerStr := strconv.Itoa(lower)
	if lowerStr == upper {
		return upper, true
	}
	return lowerStr + ".." + upper, true
}

// splitBound parses a cardinality string ("N" or "N..M") into an integer
// lower bound and a string upper bound ("*" or a digit string).
func splitBound(c string) (lower int, upper string, err error) {
	parts := strings.SplitN(c, "..", 2)
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	lower, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", err
	}
	return lower, parts[1], nil
}

package search

import (
	"math"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// TokenSetRatio scores how similar a and b are on a 0-100 scale, comparing
// their sets of unique words.
//
// Both strings are processed (lowercased, punctuation turned into spaces,
// diacritics folded) and split on whitespace. The intersection of the two
// token sets is compared with each side's full token set, and the two
// remainders with each other; the best of the three ratios wins. Word order
// and repetition do not matter, and a query whose words all appear in the
// other string scores 100.
func TokenSetRatio(a, b string) int {
	return tokenSetRatio(tokenSet(process(a)), tokenSet(process(b)))
}

func tokenSetRatio(tokensA, tokensB []string) int {
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	var sect, diffAB, diffBA []string
	for _, tok := range tokensA {
		if _, found := slices.BinarySearch(tokensB, tok); found {
			sect = append(sect, tok)
		} else {
			diffAB = append(diffAB, tok)
		}
	}
	for _, tok := range tokensB {
		if _, found := slices.BinarySearch(tokensA, tok); !found {
			diffBA = append(diffBA, tok)
		}
	}

	sorted := strings.Join(sect, " ")
	combinedAB := strings.TrimSpace(sorted + " " + strings.Join(diffAB, " "))
	combinedBA := strings.TrimSpace(sorted + " " + strings.Join(diffBA, " "))

	best := max(
		ratio(sorted, combinedAB),
		ratio(sorted, combinedBA),
		ratio(combinedAB, combinedBA),
	)
	return int(math.RoundToEven(best))
}

// ratio is the indel similarity of a and b in percent:
// twice the longest common subsequence over the total length.
func ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 || len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return 100 * float64(2*lcsLength(ra, rb)) / float64(total)
}

// lcsLength returns the length of the longest common subsequence.
func lcsLength(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// process lowercases s, folds diacritics and replaces every character that is
// not a letter or digit with a space.
func process(s string) string {
	if folded, _, err := transform.String(foldDiacritics, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// tokenSet returns the sorted unique whitespace-separated words of s.
func tokenSet(s string) []string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return slices.Compact(tokens)
}

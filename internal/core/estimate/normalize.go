package estimate

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// fractionLiterals simple fraction substitutions applied before word replacement.
var fractionLiterals = map[string]string{
	"1/2": "0.5",
	"1/3": "0.33",
	"2/3": "0.67",
	"1/4": "0.25",
	"3/4": "0.75",
	"1/8": "0.125",
}

// cardinalWords number words replaced in the first pass.
var cardinalWords = map[string]float64{
	"a couple of":  2,
	"couple of":    2,
	"a couple":     2,
	"a few":        3,
	"half a dozen": 6,
	"a dozen":      12,
	"dozen":        12,
	"one":          1,
	"two":          2,
	"three":        3,
	"four":         4,
	"five":         5,
	"six":          6,
	"seven":        7,
	"eight":        8,
	"nine":         9,
	"ten":          10,
	"eleven":       11,
	"twelve":       12,
	"twenty":       20,
}

// fractionWords fraction words replaced after compound forms are resolved.
var fractionWords = map[string]float64{
	"a quarter of an": 0.25,
	"a quarter of a":  0.25,
	"quarter of an":   0.25,
	"quarter of a":    0.25,
	"a third of an":   0.33,
	"a third of a":    0.33,
	"third of an":     0.33,
	"third of a":      0.33,
	"half of an":      0.5,
	"half of a":       0.5,
	"half an":         0.5,
	"half a":          0.5,
	"a quarter":       0.25,
	"a third":         0.33,
	"a half":          0.5,
	"quarter":         0.25,
	"third":           0.33,
	"half":            0.5,
}

type wordSub struct {
	re    *regexp.Regexp
	value float64
}

var (
	cardinalSubs []wordSub
	fractionSubs []wordSub

	// "N and a half" and friends, resolved by arithmetic once cardinals are digits.
	compoundHalfRe    = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+and\s+a\s+half\b`)
	compoundQuarterRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+and\s+a\s+quarter\b`)
	compoundThirdRe   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s+and\s+a\s+third\b`)
)

func init() {
	cardinalSubs = compileWordSubs(cardinalWords)
	fractionSubs = compileWordSubs(fractionWords)
}

// compileWordSubs builds word-boundary substitutions ordered longest phrase first,
// so "a" inside "a couple" is never replaced prematurely. The ordering is an
// invariant, not an accident of map iteration.
func compileWordSubs(table map[string]float64) []wordSub {
	phrases := make([]string, 0, len(table))
	for p := range table {
		phrases = append(phrases, p)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})

	subs := make([]wordSub, 0, len(phrases))
	for _, p := range phrases {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(p) + `\b`)
		subs = append(subs, wordSub{re: re, value: table[p]})
	}
	return subs
}

// normalizeQuantities rewrites number words, fractions and compound quantities in
// text into numeric literals. Pure and case-insensitive; callers pass lowercased
// input.
func normalizeQuantities(text string) string {
	for literal, digits := range fractionLiterals {
		text = strings.ReplaceAll(text, literal, digits)
	}

	for _, sub := range cardinalSubs {
		text = sub.re.ReplaceAllString(text, formatNumber(sub.value))
	}

	text = replaceCompound(compoundHalfRe, text, 0.5)
	text = replaceCompound(compoundQuarterRe, text, 0.25)
	text = replaceCompound(compoundThirdRe, text, 0.33)

	for _, sub := range fractionSubs {
		text = sub.re.ReplaceAllString(text, formatNumber(sub.value))
	}

	return text
}

// replaceCompound resolves "N and a half" style forms by adding the fraction to N.
func replaceCompound(re *regexp.Regexp, text string, fraction float64) string {
	return re.ReplaceAllStringFunc(text, func(m string) string {
		parts := re.FindStringSubmatch(m)
		n, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return m
		}
		return formatNumber(n + fraction)
	})
}

// formatNumber renders a quantity without trailing zeros.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

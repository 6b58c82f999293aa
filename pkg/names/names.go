// Package names provides name normalization for author matching and
// deduplication. Normalized keys are lowercase, diacritic-free and
// whitespace-collapsed so that "José García" and "Jose  Garcia" compare equal.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// specialChars maps letters that are distinct characters rather than
// accented variants, so NFD decomposition alone does not reduce them.
var specialChars = map[rune]rune{
	// Polish
	'Ł': 'L', 'ł': 'l',
	// Nordic
	'Ø': 'O', 'ø': 'o',
	'Æ': 'A', 'æ': 'a',
	'Å': 'A', 'å': 'a',
	// German eszett to single s
	'ß': 's',
	// Icelandic
	'Ð': 'D', 'ð': 'd',
	'Þ': 'T', 'þ': 't',
	// Croatian/Serbian
	'Đ': 'D', 'đ': 'd',
	// Turkish
	'İ': 'I', 'ı': 'i',
	'Ğ': 'G', 'ğ': 'g',
	'Ş': 'S', 'ş': 's',
}

// stripMarks decomposes to NFD and removes combining diacritical marks
// (Unicode category Mn), so "é" becomes "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize produces the canonical matching key for a display name:
// special-character replacement, NFD decomposition with combining marks
// removed, lowercase, internal whitespace collapsed to single spaces, trimmed.
// Total for any input; an empty or whitespace-only name normalizes to "".
func Normalize(name string) string {
	replaced := replaceSpecialChars(name)

	stripped, _, err := transform.String(stripMarks, replaced)
	if err != nil {
		// transform only fails on malformed UTF-8; fall back to the
		// replaced input rather than dropping the name entirely
		stripped = replaced
	}

	lower := strings.ToLower(stripped)

	return strings.Join(strings.Fields(lower), " ")
}

// NormalizeLoose applies Normalize and additionally drops punctuation
// (hyphens, periods, apostrophes), so "O'Brien" and "OBrien" share a key.
// Word boundaries are kept; Similarity additionally ignores them, which is
// what matches "Jean-Pierre" ("jeanpierre") with "Jean Pierre"
// ("jean pierre"). Loose keys can collide across distinct people; use them
// for fuzzy suggestions only, never for exact lookups.
func NormalizeLoose(name string) string {
	normalized := Normalize(name)

	var b strings.Builder
	for _, r := range normalized {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

func replaceSpecialChars(s string) string {
	result := make([]rune, 0, len(s))
	for _, r := range s {
		if replacement, ok := specialChars[r]; ok {
			result = append(result, replacement)
		} else {
			result = append(result, r)
		}
	}
	return string(result)
}

// ExtractInitials returns the uppercase initials of each word in the name,
// e.g. "John von Neumann" -> "JVN".
func ExtractInitials(name string) string {
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			b.WriteString(strings.ToUpper(string(r)))
			break
		}
	}
	return b.String()
}

// Similarity scores how likely two display names denote the same person,
// in [0, 1]. Equal normalized keys short-circuit to 1.0 and equal loose keys
// to 0.95; otherwise the score blends token overlap (Jaccard) on the
// normalized forms with edit-distance similarity on the loose forms.
// Reflexive and symmetric.
func Similarity(name1, name2 string) float64 {
	norm1 := Normalize(name1)
	norm2 := Normalize(name2)

	if norm1 == norm2 {
		return 1.0
	}

	loose1 := NormalizeLoose(name1)
	loose2 := NormalizeLoose(name2)

	// Compare loose forms with word boundaries stripped too, so hyphenated
	// and spaced renderings of the same name ("Jean-Pierre" / "Jean Pierre")
	// land in the loose band.
	if strings.ReplaceAll(loose1, " ", "") == strings.ReplaceAll(loose2, " ", "") {
		return 0.95
	}

	// Jaccard similarity on words of the normalized forms
	words1 := strings.Fields(norm1)
	words2 := strings.Fields(norm2)

	set1 := make(map[string]struct{}, len(words1))
	for _, w := range words1 {
		set1[w] = struct{}{}
	}
	set2 := make(map[string]struct{}, len(words2))
	for _, w := range words2 {
		set2[w] = struct{}{}
	}

	intersection := 0
	for w := range set1 {
		if _, ok := set2[w]; ok {
			intersection++
		}
	}
	union := len(set1) + len(set2) - intersection
	if union == 0 {
		return 0.0
	}
	jaccard := float64(intersection) / float64(union)

	// Edit-distance similarity on the loose forms catches near-miss
	// spellings that share no whole token
	editSim := 0.0
	if maxLen := max(len([]rune(loose1)), len([]rune(loose2))); maxLen > 0 {
		dist := levenshtein(loose1, loose2)
		editSim = 1.0 - float64(dist)/float64(maxLen)
	}

	score := 0.7*jaccard + 0.3*editSim
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// levenshtein computes the edit distance between two strings over runes.
func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, min(curr[j-1]+1, prev[j-1]+cost))
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}

// familyPrefixes are nobiliary particles treated as part of the family name,
// so "Ludwig van Beethoven" splits into ("Ludwig", "van Beethoven").
var familyPrefixes = map[string]bool{
	"van": true, "von": true, "de": true, "del": true, "della": true,
	"di": true, "da": true, "la": true, "le": true, "du": true,
	"des": true, "ten": true, "ter": true, "vander": true,
}

// SplitName splits a full name into given and family components using the
// last-word-is-family-name heuristic. Single-word names are treated as a
// family name with no given name. Both results are empty for blank input.
func SplitName(fullName string) (given, family string) {
	parts := strings.Fields(fullName)

	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return "", parts[0]
	}

	// Walk backwards over nobiliary prefixes preceding the last word
	familyStart := len(parts) - 1
	for i := len(parts) - 2; i >= 0; i-- {
		if familyPrefixes[strings.ToLower(parts[i])] {
			familyStart = i
		} else {
			break
		}
	}

	if familyStart > 0 {
		given = strings.Join(parts[:familyStart], " ")
	}
	family = strings.Join(parts[familyStart:], " ")
	return given, family
}

// GenerateVariants produces plausible normalized renderings of a name for
// pre-populating name-variant suggestions: the normalized form, the loose
// form, the family name alone, and initials + family name ("a einstein").
// Purely heuristic, never authoritative.
func GenerateVariants(fullName string) []string {
	var variants []string
	seen := make(map[string]bool)

	add := func(v string) {
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	add(Normalize(fullName))
	add(NormalizeLoose(fullName))

	given, family := SplitName(fullName)
	if family != "" {
		add(Normalize(family))
	}
	if given != "" && family != "" {
		initials := strings.ToLower(ExtractInitials(given))
		add(initials + " " + Normalize(family))
	}

	return variants
}

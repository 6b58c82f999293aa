package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeBasic(t *testing.T) {
	assert.Equal(t, "alice", Normalize("Alice"))
	assert.Equal(t, "alice", Normalize("ALICE"))
	assert.Equal(t, "alice", Normalize("  alice  "))
	assert.Equal(t, "", Normalize(""))
	assert.Equal(t, "", Normalize("   \t  "))
}

func TestNormalizeAccents(t *testing.T) {
	assert.Equal(t, "jose", Normalize("José"))
	assert.Equal(t, "garcia", Normalize("García"))
	assert.Equal(t, "muller", Normalize("Müller"))
	assert.Equal(t, "schrodinger", Normalize("Schrödinger"))
	assert.Equal(t, "canon", Normalize("Cañón"))
	assert.Equal(t, "naive", Normalize("naïve"))
	assert.Equal(t, "zurich", Normalize("Zürich"))
	assert.Equal(t, "cech", Normalize("Čech"))
	assert.Equal(t, "lukasz", Normalize("Łukasz"))
	assert.Equal(t, "nguyen", Normalize("Nguyễn"))
}

func TestNormalizeNordicCharacters(t *testing.T) {
	assert.Equal(t, "asa", Normalize("Åsa"))
	assert.Equal(t, "oresund", Normalize("Øresund"))
	assert.Equal(t, "bjork", Normalize("Björk"))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "alice bob", Normalize("  Alice   Bob  "))
	assert.Equal(t, "alice bob", Normalize("Alice\t\nBob"))
	assert.Equal(t, "alice bob carol", Normalize("Alice  Bob  Carol"))
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"José García", "Müller", "  Alice   Bob  ", "Jean-François",
		"O'Brien", "Łukasz", "", "Nguyễn Nhật Ánh",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestNormalizeLoose(t *testing.T) {
	assert.Equal(t, "obrien", NormalizeLoose("O'Brien"))
	assert.Equal(t, "jeanpierre", NormalizeLoose("Jean-Pierre"))
	assert.Equal(t, "dr smith", NormalizeLoose("Dr. Smith"))
	assert.Equal(t, "smith jr", NormalizeLoose("Smith, Jr."))
	assert.Equal(t, "jeanfrancois", NormalizeLoose("Jean-François"))
}

func TestNormalizeKeepsHyphens(t *testing.T) {
	// strict form keeps punctuation, only the loose form drops it
	assert.Equal(t, "jean-francois", Normalize("Jean-François"))
}

func TestExtractInitials(t *testing.T) {
	assert.Equal(t, "AB", ExtractInitials("Alice Bob"))
	assert.Equal(t, "JVN", ExtractInitials("John von Neumann"))
	assert.Equal(t, "A", ExtractInitials("Alice"))
	assert.Equal(t, "", ExtractInitials(""))
}

func TestSimilarityExactAfterNormalization(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("José García", "Jose Garcia"))
	assert.Equal(t, 1.0, Similarity("Müller", "Muller"))
}

func TestSimilarityReflexive(t *testing.T) {
	for _, name := range []string{"Alice Quantum", "José García", "", "O'Brien"} {
		assert.Equal(t, 1.0, Similarity(name, name), "name %q", name)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"Alice Smith", "Bob Smith"},
		{"José García", "J. Garcia"},
		{"John Doe", "Alice Smith"},
		{"O'Brien", "OBrien"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "pair %v", p)
	}
}

func TestSimilarityLooseMatch(t *testing.T) {
	assert.Equal(t, 0.95, Similarity("O'Brien", "OBrien"))
	assert.Equal(t, 0.95, Similarity("Jean-Pierre", "Jean Pierre"))
	assert.Equal(t, 0.95, Similarity("Mary-Jane Watson", "Mary Jane Watson"))
	assert.Equal(t, 0.95, Similarity("Jean-Pierre Dupont", "Jean Pierre Dupont"))
}

func TestSimilarityPartialOverlap(t *testing.T) {
	sim := Similarity("Alice Smith", "Bob Smith")
	assert.Greater(t, sim, 0.3)
	assert.Less(t, sim, 0.7)
}

func TestSimilarityNoMatch(t *testing.T) {
	assert.Less(t, Similarity("Alice", "Bob"), 0.1)
}

func TestSplitName(t *testing.T) {
	given, family := SplitName("John Smith")
	assert.Equal(t, "John", given)
	assert.Equal(t, "Smith", family)

	given, family = SplitName("Ludwig van Beethoven")
	assert.Equal(t, "Ludwig", given)
	assert.Equal(t, "van Beethoven", family)

	given, family = SplitName("Leonardo da Vinci")
	assert.Equal(t, "Leonardo", given)
	assert.Equal(t, "da Vinci", family)

	given, family = SplitName("Galileo")
	assert.Equal(t, "", given)
	assert.Equal(t, "Galileo", family)

	given, family = SplitName("")
	assert.Equal(t, "", given)
	assert.Equal(t, "", family)
}

func TestGenerateVariants(t *testing.T) {
	variants := GenerateVariants("Albert Einstein")
	assert.Contains(t, variants, "albert einstein")
	assert.Contains(t, variants, "einstein")
	assert.Contains(t, variants, "a einstein")
}

func TestGenerateVariantsNoDuplicates(t *testing.T) {
	variants := GenerateVariants("Alice")
	seen := make(map[string]bool)
	for _, v := range variants {
		assert.False(t, seen[v], "duplicate variant %q", v)
		seen[v] = true
	}
}

func TestLevenshtein(t *testing.T) {
	assert.Equal(t, 0, levenshtein("abc", "abc"))
	assert.Equal(t, 3, levenshtein("", "abc"))
	assert.Equal(t, 3, levenshtein("kitten", "sitting"))
	assert.Equal(t, 1, levenshtein("smith", "smyth"))
}

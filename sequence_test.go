package ruler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeq_Simplest(t *testing.T) {
	r := Seq("a").Named("r1")
	assert.Equal(t, "r1", r.Name())

	m, mm := r.Match("a")
	require.Nil(t, mm)
	assert.Equal(t, "a", m.Text())

	m, mm = r.Match("b")
	require.Nil(t, m)
	assert.Equal(t, 0, mm.Position())
}

func TestSeq_Chained(t *testing.T) {
	r := Seq("a", "b", "c")

	m, mm := r.Match("abcdefg")
	require.Nil(t, mm)
	assert.Equal(t, "abc", m.Text())

	m, mm = r.Match("abdefg")
	require.Nil(t, m)
	assert.Equal(t, 2, mm.Position(), "position must point at the failing part")
}

func TestSeq_RegexParts(t *testing.T) {
	r := Seq("A number: ", `\d+`, ` \[(x\w*x)\]`)

	m, mm := r.Match("A number: 12345 [xx]")
	require.Nil(t, mm)
	assert.Equal(t, "A number: 12345 [xx]", m.Text())
}

func TestSeq_Nested(t *testing.T) {
	cd := Seq("c", "d").Named("cd")
	bcd := Seq("b", cd).Named("bcd")
	e := Seq("e").Named("e")
	r := Seq("a", bcd, e)

	m, mm := r.Match("abcde")
	require.Nil(t, mm)
	assert.Equal(t, "abcde", m.Text())

	sub, ok := m.Get("bcd")
	require.True(t, ok)
	assert.Equal(t, "bcd", sub.Text())

	cdMatch, ok := sub.Get("cd")
	require.True(t, ok)
	assert.Equal(t, "cd", cdMatch.Text())

	eMatch, ok := m.Get("e")
	require.True(t, ok)
	assert.Equal(t, "e", eMatch.Text())

	// Positions of nested failures are rebased onto the original input.
	m, mm = r.Match("abcef")
	require.Nil(t, m)
	assert.Equal(t, 3, mm.Position())
}

// An anonymous sequence dissolves: its named parts become the parent's
// own named submatches.
func TestSeq_Flattening(t *testing.T) {
	inner := Seq("b", Seq("c").Named("c"))
	r := Seq(Seq("a").Named("a"), inner)

	m, mm := r.Match("abc")
	require.Nil(t, mm)

	aMatch, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", aMatch.Text())

	cMatch, ok := m.Get("c")
	require.True(t, ok)
	assert.Equal(t, "c", cMatch.Text())
}

func TestSeq_RuleReuse(t *testing.T) {
	reused := Seq("..").Named("reused")
	a := Seq("a", reused).Named("a")
	b := Seq("b", reused).Named("b")
	c := Seq("c", reused).Named("c")
	r := Seq(a, b, c)

	m, mm := r.Match("a11b22c33")
	require.Nil(t, mm)

	testCases := []struct {
		token string
		text  string
		inner string
	}{
		{"a", "a11", "11"},
		{"b", "b22", "22"},
		{"c", "c33", "33"},
	}
	for _, tc := range testCases {
		t.Run(tc.token, func(t *testing.T) {
			sub, ok := m.Get(tc.token)
			require.True(t, ok)
			assert.Equal(t, tc.text, sub.Text())

			reusedMatch, ok := sub.Get("reused")
			require.True(t, ok)
			assert.Equal(t, tc.inner, reusedMatch.Text())
		})
	}
}

// Consumed text composes associatively regardless of how sequences nest.
func TestSeq_AssociativeConsumption(t *testing.T) {
	inputs := []string{"abc", "abcde", "ab", ""}

	for _, input := range inputs {
		flat := Seq("a", "b", "c")
		nested := Seq(Seq("a", "b"), "c")

		flatMatch, flatMismatch := flat.Match(input)
		nestedMatch, nestedMismatch := nested.Match(input)

		if flatMismatch != nil {
			require.NotNil(t, nestedMismatch, "input %q", input)
			assert.Equal(t, flatMismatch.Position(), nestedMismatch.Position(), "input %q", input)
			continue
		}
		require.Nil(t, nestedMismatch, "input %q", input)
		assert.Equal(t, flatMatch.Text(), nestedMatch.Text(), "input %q", input)
	}
}

func TestSeq_ZeroWidthParts(t *testing.T) {
	r := Seq("", "a?", "")

	m, mm := r.Match("b")
	require.Nil(t, mm)
	assert.Equal(t, "", m.Text())

	m, mm = r.Match("ab")
	require.Nil(t, mm)
	assert.Equal(t, "a", m.Text())
}

func TestSeq_SiblingRedefinitionPanicsWithoutValidation(t *testing.T) {
	r := Seq(Seq("a").Named("x"), Seq("b").Named("x"))

	defer func() {
		err, ok := recover().(error)
		require.True(t, ok, "expected a panic carrying an error")
		assert.True(t, IsTokenRedefinition(err))
	}()
	r.Match("ab")
	t.Fatal("expected panic")
}

package judges

import (
	"math"
	"testing"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

var alphabet = []grammar.Category{"A", "B", "C"}

func statsFor(lines ...string) *exposure.Stats {
	seqs := make([]grammar.Sequence, len(lines))
	for i, l := range lines {
		seqs[i] = grammar.ParseSequence(l)
	}
	return exposure.NewStats(seqs)
}

func approx(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestTransitional_ObservedBeatsUnobserved(t *testing.T) {
	stats := statsFor("A B C", "A B C", "A B C")
	j := NewTransitional()

	observed := j.Score(grammar.ParseSequence("A B C"), stats)
	unobserved := j.Score(grammar.ParseSequence("A C B"), stats)
	if observed <= unobserved {
		t.Errorf("observed %v should beat unobserved %v", observed, unobserved)
	}
	// A -> C was never observed, so the whole score collapses to 0.
	if unobserved != 0 {
		t.Errorf("never-observed transition should score 0, got %v", unobserved)
	}
}

func TestTransitional_GeometricMean(t *testing.T) {
	// A -> B in 1 of 2 As; B -> C in every B.
	stats := statsFor("A B C", "A C")
	score := NewTransitional().Score(grammar.ParseSequence("A B C"), stats)
	approx(t, "transitional", score, math.Sqrt(0.5*1.0))
}

func TestTransitional_ShortAndUnknown(t *testing.T) {
	stats := statsFor("A B C")
	j := NewTransitional()
	if got := j.Score(grammar.ParseSequence("A"), stats); got != 0 {
		t.Errorf("single-symbol score = %v, want 0", got)
	}
	if got := j.Score(nil, stats); got != 0 {
		t.Errorf("empty-sequence score = %v, want 0", got)
	}
	if got := j.Score(grammar.ParseSequence("A Z"), stats); got != 0 {
		t.Errorf("out-of-alphabet score = %v, want 0", got)
	}
}

func TestPositional_MeanOfPositionFrequencies(t *testing.T) {
	// Position 0 is always A; position 1 is B half the time.
	stats := statsFor("A B C", "A C B")
	score := NewPositional().Score(grammar.ParseSequence("A B"), stats)
	approx(t, "positional", score, (1.0+0.5)/2)
}

func TestPositional_IgnoresTransitions(t *testing.T) {
	// B never follows C in exposure, but positionally "A C B" matches
	// the second line exactly.
	stats := statsFor("A B C", "A C B")
	j := NewPositional()
	legalish := j.Score(grammar.ParseSequence("A C B"), stats)
	if legalish == 0 {
		t.Error("positional judge should not care about unseen transitions")
	}
}

func TestPositional_Degrades(t *testing.T) {
	stats := statsFor("A B C")
	j := NewPositional()
	if got := j.Score(nil, stats); got != 0 {
		t.Errorf("empty-sequence score = %v, want 0", got)
	}
	// One familiar position out of two still earns partial credit.
	approx(t, "positional with unknown", j.Score(grammar.ParseSequence("A Z"), stats), 0.5)
}

func TestChunk_FractionOfSeenWindows(t *testing.T) {
	stats := statsFor("A B C")
	j := NewChunk()

	// All windows of the exposed string were seen.
	approx(t, "chunk exact", j.Score(grammar.ParseSequence("A B C"), stats), 1.0)

	// "C A" and "B C A" and "A B C A" were never seen; windows of
	// "A B C A": AB BC CA / ABC BCA / ABCA = 3 seen of 6.
	approx(t, "chunk partial", j.Score(grammar.ParseSequence("A B C A"), stats), 0.5)

	if got := j.Score(grammar.ParseSequence("C A"), stats); got != 0 {
		t.Errorf("unseen bigram chunk score = %v, want 0", got)
	}
	if got := j.Score(grammar.ParseSequence("A"), stats); got != 0 {
		t.Errorf("single-symbol chunk score = %v, want 0", got)
	}
}

func TestCooccurrence_ScoresRuleSatisfaction(t *testing.T) {
	// A always with B, never with C.
	stats := statsFor("A B", "A B", "B C")
	j := NewCooccurrence(alphabet)

	// "A B": rules applying: A requires B (sat), A excludes C (sat),
	// B has no rules (appears with both A and C at different rates? B
	// count=3, cooccurs B,A=2, B,C=1 -> no rule). Score 1.
	approx(t, "cooccurrence consistent", j.Score(grammar.ParseSequence("A B"), stats), 1.0)

	// "A C": A requires B violated, A excludes C violated, C rules:
	// C requires B (sat? B absent -> violated), C excludes A
	// (violated). 0 of 4.
	approx(t, "cooccurrence inconsistent", j.Score(grammar.ParseSequence("A C"), stats), 0.0)

	if got := j.Score(grammar.ParseSequence("Z"), stats); got != 0 {
		t.Errorf("no applicable rules should score 0, got %v", got)
	}
}

func TestJudges_PureFunctions(t *testing.T) {
	stats := statsFor("A B C", "A C B", "A B C")
	seqs := []grammar.Sequence{
		grammar.ParseSequence("A B C"),
		grammar.ParseSequence("A C B"),
		grammar.ParseSequence("C B A"),
	}
	for _, j := range All(alphabet) {
		for _, seq := range seqs {
			first := j.Score(seq, stats)
			for i := 0; i < 3; i++ {
				if again := j.Score(seq, stats); again != first {
					t.Errorf("%s: Score(%q) changed between calls: %v vs %v", j.Name(), seq, first, again)
				}
			}
		}
	}
}

func TestScoreAll_PreservesOrder(t *testing.T) {
	stats := statsFor("A B C")
	testSet := []grammar.Sequence{
		grammar.ParseSequence("C B A"),
		grammar.ParseSequence("A B C"),
	}
	judgments := ScoreAll(NewTransitional(), testSet, stats)
	if len(judgments) != 2 {
		t.Fatalf("got %d judgments, want 2", len(judgments))
	}
	if !judgments[0].Sequence.Equal(testSet[0]) || !judgments[1].Sequence.Equal(testSet[1]) {
		t.Error("ScoreAll should preserve test-set order")
	}
}

func TestRank_ScoreThenSequenceOrder(t *testing.T) {
	judgments := []Judgment{
		{Sequence: grammar.ParseSequence("A C"), Score: 0.5},
		{Sequence: grammar.ParseSequence("A B C"), Score: 0.9},
		{Sequence: grammar.ParseSequence("A B"), Score: 0.5},
	}
	ranked := Rank(judgments)

	if ranked[0].Score != 0.9 {
		t.Errorf("highest score should rank first, got %v", ranked[0])
	}
	// Tie at 0.5: "A B" sorts before "A C".
	if !ranked[1].Sequence.Equal(grammar.ParseSequence("A B")) {
		t.Errorf("tie-break should put A B before A C, got %q", ranked[1].Sequence)
	}
	// Input untouched.
	if !judgments[0].Sequence.Equal(grammar.ParseSequence("A C")) {
		t.Error("Rank must not mutate its input")
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"transitional", "positional", "chunk", "cooccurrence"} {
		j, err := ByName(name, alphabet)
		if err != nil {
			t.Errorf("ByName(%q): %v", name, err)
			continue
		}
		if j.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, j.Name())
		}
	}
	if _, err := ByName("oracle", alphabet); err == nil {
		t.Error("ByName should reject unknown judges")
	}
}

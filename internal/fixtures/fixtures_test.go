package fixtures

import (
	"errors"
	"strings"
	"testing"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/enumerate"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

func TestGrammar_AcceptsOracleSequences(t *testing.T) {
	g := Grammar()
	for _, line := range FullSequences() {
		seq := grammar.ParseSequence(line)
		if !g.IsGrammatical(seq) {
			t.Errorf("oracle sequence %q rejected by the study grammar", line)
		}
	}
}

func TestVerifyAll_OracleMatchesEnumerator(t *testing.T) {
	if err := VerifyAll(enumerate.New(Grammar())); err != nil {
		t.Fatalf("enumerator diverged from oracle fixtures: %v", err)
	}
}

func TestShortOracle_IsTruncationOfFull(t *testing.T) {
	full := make(map[string]bool)
	for _, line := range FullSequences() {
		full[line] = true
	}
	for _, line := range ShortSequences() {
		if !full[line] {
			t.Errorf("short-oracle sequence %q missing from full oracle", line)
		}
		if n := len(grammar.ParseSequence(line)); n > ShortLength {
			t.Errorf("short-oracle sequence %q has length %d > %d", line, n, ShortLength)
		}
	}
	for _, line := range FullSequences() {
		if len(grammar.ParseSequence(line)) <= ShortLength {
			found := false
			for _, s := range ShortSequences() {
				if s == line {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("full-oracle sequence %q (length <= %d) missing from short oracle", line, ShortLength)
			}
		}
	}
}

func TestVerify_ReportsMismatchLoudly(t *testing.T) {
	set := enumerate.New(Grammar()).All(FullLength)

	oracle := append([]string{}, FullSequences()...)
	oracle[0] = "a a a" // corrupt one entry

	err := Verify(set, oracle)
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if !errors.Is(err, ErrOracleMismatch) {
		t.Errorf("error should wrap ErrOracleMismatch, got %v", err)
	}
	if !strings.Contains(err.Error(), "a a a") {
		t.Errorf("error %q should name the missing sequence", err)
	}
}

func TestVerify_OrderIndependent(t *testing.T) {
	set := enumerate.New(Grammar()).All(FullLength)
	reversed := make([]string, 0, len(FullSequences()))
	for i := len(FullSequences()) - 1; i >= 0; i-- {
		reversed = append(reversed, FullSequences()[i])
	}
	if err := Verify(set, reversed); err != nil {
		t.Errorf("Verify should normalize order, got %v", err)
	}
}

func TestExposureSequences_AllGrammatical(t *testing.T) {
	g := Grammar()
	seqs, err := ExposureSequences(g)
	if err != nil {
		t.Fatalf("ExposureSequences: %v", err)
	}
	if len(seqs) == 0 {
		t.Fatal("exposure stream is empty")
	}
	for _, seq := range seqs {
		if !g.IsGrammatical(seq) {
			t.Errorf("exposure sequence %q is not grammatical", seq)
		}
	}
}

func TestReferenceAccuracy(t *testing.T) {
	table, err := ReferenceAccuracy()
	if err != nil {
		t.Fatalf("ReferenceAccuracy: %v", err)
	}
	if len(table) == 0 {
		t.Fatal("accuracy table is empty")
	}
	for item, acc := range table {
		if acc < 0 || acc > 1 {
			t.Errorf("accuracy[%q] = %v, outside [0, 1]", item, acc)
		}
	}
}

func TestTestItems_CoverBothClassesAndOneExclusion(t *testing.T) {
	g := Grammar()
	items := TestItems()
	table, err := ReferenceAccuracy()
	if err != nil {
		t.Fatalf("ReferenceAccuracy: %v", err)
	}

	var gram, ungram, excluded int
	for _, seq := range items {
		if g.IsGrammatical(seq) {
			gram++
		} else {
			ungram++
		}
		if _, ok := table[seq.String()]; !ok {
			excluded++
		}
	}
	if gram == 0 || ungram == 0 {
		t.Errorf("test items should cover both classes, got %d grammatical / %d ungrammatical", gram, ungram)
	}
	if excluded != 1 {
		t.Errorf("exactly one test item should be missing from the accuracy table, got %d", excluded)
	}
}

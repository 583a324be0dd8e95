package exposure

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// ParseStream reads one sequence per line from r, validating every
// symbol against g's alphabet. A symbol outside the alphabet is a data
// problem, not a runtime condition: parsing stops with an error naming
// the line and symbol. Blank lines and lines starting with '#' are
// skipped.
func ParseStream(r io.Reader, g *grammar.Grammar) ([]grammar.Sequence, error) {
	var seqs []grammar.Sequence
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		seq := grammar.ParseSequence(line)
		if err := g.ValidateSequence(seq); err != nil {
			return nil, fmt.Errorf("exposure: line %d: %w", lineNo, err)
		}
		seqs = append(seqs, seq)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("exposure: read: %w", err)
	}
	return seqs, nil
}

// LoadFile reads and validates an exposure stream from path.
func LoadFile(path string, g *grammar.Grammar) ([]grammar.Sequence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("exposure: open %s: %w", path, err)
	}
	defer f.Close()

	seqs, err := ParseStream(f, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return seqs, nil
}

package compiler

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"

	"github.com/aretw0/pulsenet/pkg/domain"
)

const arrow = "->"

// Parser is responsible for converting a textual module list into declarations.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads lines of the form "<prefix><name> -> <dest>, <dest>".
// Blank lines and lines starting with '#' are skipped.
func (p *Parser) Parse(text string) ([]domain.Declaration, error) {
	var decls []domain.Declaration

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		d, err := p.parseLine(line)
		if err != nil {
			return nil, &domain.ConfigError{Line: lineNo, Reason: err.Error()}
		}
		d.Line = lineNo
		decls = append(decls, d)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read network description: %w", err)
	}
	return decls, nil
}

func (p *Parser) parseLine(line string) (domain.Declaration, error) {
	left, right, ok := strings.Cut(line, arrow)
	if !ok {
		return domain.Declaration{}, fmt.Errorf("missing %q in %q", arrow, line)
	}

	left = strings.TrimSpace(left)
	kind := domain.Broadcaster
	switch {
	case strings.HasPrefix(left, domain.PrefixFlipFlop):
		kind = domain.FlipFlop
		left = left[len(domain.PrefixFlipFlop):]
	case strings.HasPrefix(left, domain.PrefixConjunction):
		kind = domain.Conjunction
		left = left[len(domain.PrefixConjunction):]
	}
	if err := checkName(left); err != nil {
		return domain.Declaration{}, err
	}

	var dests []string
	for _, raw := range strings.Split(right, ",") {
		name := strings.TrimSpace(raw)
		if err := checkName(name); err != nil {
			return domain.Declaration{}, fmt.Errorf("destination of %q: %w", left, err)
		}
		dests = append(dests, name)
	}

	return domain.Declaration{Name: left, Kind: kind, Destinations: dests}, nil
}

// checkName accepts letters, digits and underscores.
func checkName(name string) error {
	if name == "" {
		return fmt.Errorf("empty module name")
	}
	for _, r := range name {
		if r != '_' && !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return fmt.Errorf("invalid character %q in module name %q", r, name)
		}
	}
	return nil
}

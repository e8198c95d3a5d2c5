package query

import (
	"fmt"
	"slices"
	"strings"

	"github.com/nourabosen/USearch/core"
)

const (
	// DefaultHardwarePrefix selects hardware-only mode.
	DefaultHardwarePrefix = "hw"
	// DefaultRawPrefix selects raw pass-through mode.
	DefaultRawPrefix = "r"
)

// Parser turns raw strings into core.Query values.
// The zero value uses the default prefixes.
type Parser struct {
	HardwarePrefix string
	RawPrefix      string
}

// NewParser creates a parser with the given prefixes.
// Surrounding whitespace is dropped and empty prefixes fall back to the defaults.
func NewParser(hardwarePrefix, rawPrefix string) Parser {
	p := Parser{HardwarePrefix: strings.TrimSpace(hardwarePrefix), RawPrefix: strings.TrimSpace(rawPrefix)}
	return Parser{HardwarePrefix: p.hardwarePrefix(), RawPrefix: p.rawPrefix()}
}

// Parse classifies raw. The hardware prefix is checked before the raw prefix,
// so identical prefixes always resolve to hardware-only mode.
func (p Parser) Parse(raw string) (core.Query, error) {
	trimmed := strings.TrimSpace(raw)
	q, err := p.parse(strings.Fields(trimmed), trimmed)
	if err != nil {
		return core.Query{}, err
	}
	q.Raw = raw
	return q, nil
}

// ParseArgs classifies an already split argument list, such as a command line.
// Argument boundaries are kept, so a raw argument containing spaces reaches
// the index tool as one argument. Blank arguments are dropped.
func (p Parser) ParseArgs(args []string) (core.Query, error) {
	tokens := slices.DeleteFunc(slices.Clone(args), func(arg string) bool {
		return strings.TrimSpace(arg) == ""
	})
	q, err := p.parse(tokens, strings.TrimSpace(strings.Join(tokens, " ")))
	if err != nil {
		return core.Query{}, err
	}
	q.Raw = strings.Join(args, " ")
	return q, nil
}

// parse dispatches on the first token. term is the Normal mode search term.
func (p Parser) parse(tokens []string, term string) (core.Query, error) {
	if len(tokens) == 0 {
		return core.Query{}, fmt.Errorf("%w: no search pattern provided", core.ErrInvalidQuery)
	}
	first, rest := tokens[0], tokens[1:]

	q := core.Query{Mode: core.SearchModeNormal, Term: term}
	switch {
	case strings.EqualFold(first, p.hardwarePrefix()):
		q.Mode = core.SearchModeHardwareOnly
		q.Term = strings.Join(rest, " ")
	case strings.EqualFold(first, p.rawPrefix()):
		q.Mode = core.SearchModeRaw
		q.Term = ""
		q.RawArgs = rest
	}
	if err := core.ValidateQuery(q); err != nil {
		return core.Query{}, fmt.Errorf("%w (query %q)", err, strings.Join(tokens, " "))
	}
	return q, nil
}

func (p Parser) hardwarePrefix() string {
	if p.HardwarePrefix == "" {
		return DefaultHardwarePrefix
	}
	return p.HardwarePrefix
}

func (p Parser) rawPrefix() string {
	if p.RawPrefix == "" {
		return DefaultRawPrefix
	}
	return p.RawPrefix
}

// Parse classifies raw using the default prefixes.
func Parse(raw string) (core.Query, error) {
	return Parser{}.Parse(raw)
}

// Package parsegraph parses the engine's single-token graph text format
// ("a--b,c--d,e--f,…") into a graph.Graph, per spec.md §6.
package parsegraph

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tuttengine/tuttengine/graph"
)

// Sentinel errors surfaced at the driver boundary as InvalidArgument /
// ParseError, per spec.md §7.
var (
	// ErrEmpty indicates the input held no edge tokens at all.
	ErrEmpty = errors.New("parsegraph: empty graph")

	// ErrMalformed indicates a token was not of the "id--id" shape.
	ErrMalformed = errors.New("parsegraph: malformed graph token")
)

// Parse reads the graph text format and returns the resulting graph, whose
// vertex count is N = max(id)+1 across every token. Whitespace
// inside the token, a missing "--" separator, or a non-integer endpoint
// all yield ErrMalformed; an input with no tokens yields ErrEmpty.
func Parse(input string) (*graph.Graph, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, ErrEmpty
	}
	if strings.ContainsAny(trimmed, " \t\n\r") {
		return nil, fmt.Errorf("%w: contains whitespace", ErrMalformed)
	}

	tokens := strings.Split(trimmed, ",")
	pairs := make([][2]int, 0, len(tokens))
	maxID := -1
	for _, tok := range tokens {
		u, v, err := parsePair(tok)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, [2]int{u, v})
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	}
	if len(pairs) == 0 {
		return nil, ErrEmpty
	}
	return graph.NewFromPairs(maxID+1, pairs), nil
}

// parsePair splits one "id--id" token into its two endpoints.
func parsePair(tok string) (int, int, error) {
	parts := strings.SplitN(tok, "--", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformed, tok)
	}
	u, err := strconv.Atoi(parts[0])
	if err != nil || u < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformed, tok)
	}
	v, err := strconv.Atoi(parts[1])
	if err != nil || v < 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformed, tok)
	}
	return u, v, nil
}

// File: tokenize.go
// Title: Parameter Value Tokenizer
// Description: Splits one parameter value on top-level commas. Commas
//              inside a brace group such as {"a":1,"b":2} do not split.
// Author: hrimthurs
// Version: v0.2.0
// Created: 2026-09-02
// Modified: 2026-10-14
//
// Change History:
// - 2026-09-02 v0.1.0: Initial implementation
// - 2026-10-14 v0.2.0: Tokens carried as Values

package urlx

import (
	"strings"
)

// tokenize splits src into top-level tokens and runs each through the
// JSON step. A comma piece starting with '{', and every piece after it
// until the braces balance again, is collected into one group; only
// grouped pieces have their braces and quotes counted. A group is closed
// by a piece ending in '}' once the brace count is back to zero.
//
// When the braces never balance or the group quote count is odd, the
// input is returned whole as a single raw string token and ok is false.
func tokenize(src string) (tokens []Value, ok bool) {
	var (
		plain   []string
		pending []string
		braces  int
		quotes  int
	)

	for _, piece := range strings.Split(src, ",") {
		if braces <= 0 && !strings.HasPrefix(piece, "{") {
			plain = append(plain, piece)
			continue
		}

		pending = append(pending, piece)
		for _, ch := range piece {
			switch ch {
			case '{':
				braces++
			case '}':
				braces--
			case '"', '\'':
				quotes++
			}
		}

		if braces == 0 && strings.HasSuffix(piece, "}") {
			plain = append(plain, strings.Join(pending, ","))
			pending = pending[:0]
		}
	}

	if braces != 0 || quotes%2 != 0 {
		return []Value{String(src)}, false
	}

	// an unterminated group that still balances is emitted piece by piece
	raw := append(plain, pending...)
	tokens = make([]Value, len(raw))
	for i, token := range raw {
		if token == "" {
			tokens[i] = String("")
			continue
		}
		tokens[i] = tryJSON(token)
	}
	return tokens, true
}

// Package diagfmt renders tokens, import declarations and diagnostics for
// the CLI, in both human-readable and JSON forms.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"jsfront/internal/source"
	"jsfront/internal/token"
)

// TokenOutput is the JSON shape of one token. Type and loc field names are
// part of the output contract.
type TokenOutput struct {
	Type   string          `json:"type"`
	Lexeme string          `json:"lexeme"`
	Loc    source.Location `json:"loc"`
}

// FormatTokensPretty writes one line per token.
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		loc := tok.Loc()
		_, err := fmt.Fprintf(w, "%3d: %-12s %q at %s-%s\n",
			i+1, token.TypeName(tok), tok.Lexeme(), loc.Start, loc.End)
		if err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes the token list as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Type:   token.TypeName(tok),
			Lexeme: tok.Lexeme(),
			Loc:    tok.Loc(),
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// Package token defines the lexical token variants and the static token
// tables consumed by the lexer and parser.
// Invariants:
//   - Every token's lexeme is exactly reconstructible from the source via
//     its Location (string literals span only their body; the delimiters
//     are excluded).
//   - Operator and Keyword carry a pointer into the Vocabulary tables,
//     never a copy, so identity comparisons against the tables are stable.
//   - Strict-mode-only and contextual keywords still classify as Keyword in
//     the lexer; reinterpretation as identifier happens in the parser,
//     which knows the surrounding production.
package token

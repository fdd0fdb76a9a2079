// Package token defines lexical token kinds and trivia for the reshape engine.
// Invariants:
//   - Tokens are values: construction never copies trivia slices, and the
//     With* helpers return modified copies instead of mutating in place.
//   - Same-line whitespace after a token belongs to that token's trailing
//     trivia; leading trivia holds the newline(s), indentation and comments
//     that precede the token on its own line.
//   - A leading trivia sequence for a token that starts a new line contains
//     at least one Newline piece before any indentation Space pieces.
//   - Comment trivia text includes the comment markers verbatim, so rendering
//     a trivia sequence reproduces the original source bytes exactly.
package token

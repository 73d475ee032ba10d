// Package vocab provides the bounded, deterministic token-to-id vocabulary
// used by the text encoder.
package vocab

import (
	"fmt"
	"regexp"
	"strings"
)

// Reserved control-token ids. These occupy the first ids of every vocabulary
// and are never produced by encoding user text, except UnkID for
// out-of-vocabulary tokens.
const (
	PadID   = 0
	UnkID   = 1
	StartID = 2
	EndID   = 3
	MaskID  = 4
)

// Control-token markers as rendered by Decode.
const (
	PadToken   = "<PAD>"
	UnkToken   = "<UNK>"
	StartToken = "<START>"
	EndToken   = "<END>"
	MaskToken  = "<MASK>"
)

// DefaultCapacity is the default maximum vocabulary size.
const DefaultCapacity = 5000

var reservedTokens = []string{PadToken, UnkToken, StartToken, EndToken, MaskToken}

// nonTokenChars matches everything that is stripped during normalization.
// Letters, digits, spaces, and the symbol characters that appear in skill
// names (c++, c#, ci/cd) survive.
var nonTokenChars = regexp.MustCompile(`[^a-z0-9+#/\s]`)

var whitespace = regexp.MustCompile(`\s+`)

// Normalize case-folds text, strips non-token characters, and collapses
// whitespace. Normalization is idempotent.
func Normalize(text string) string {
	cleaned := nonTokenChars.ReplaceAllString(strings.ToLower(text), "")
	return strings.TrimSpace(whitespace.ReplaceAllString(cleaned, " "))
}

// Tokenize splits normalized text into tokens. Empty input yields no tokens.
func Tokenize(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// Vocabulary is an immutable bidirectional mapping between normalized tokens
// and bounded integer ids. Unknown tokens map to UnkID; known ids are a
// bijection onto their tokens.
type Vocabulary struct {
	capacity int
	idOf     map[string]int
	tokenOf  []string
}

// New builds a vocabulary from the given terms with the given capacity.
// Terms are normalized, deduplicated, and assigned ids in order after the
// reserved control tokens; terms beyond capacity are dropped.
func New(terms []string, capacity int) (*Vocabulary, error) {
	if capacity <= len(reservedTokens) {
		return nil, fmt.Errorf("vocabulary capacity %d must exceed the %d reserved tokens", capacity, len(reservedTokens))
	}

	v := &Vocabulary{
		capacity: capacity,
		idOf:     make(map[string]int, len(reservedTokens)+len(terms)),
		tokenOf:  make([]string, 0, len(reservedTokens)+len(terms)),
	}

	for id, token := range reservedTokens {
		v.idOf[token] = id
		v.tokenOf = append(v.tokenOf, token)
	}

	for _, term := range terms {
		normalized := Normalize(term)
		if normalized == "" {
			continue
		}
		if _, exists := v.idOf[normalized]; exists {
			continue
		}
		if len(v.tokenOf) >= capacity {
			break
		}
		v.idOf[normalized] = len(v.tokenOf)
		v.tokenOf = append(v.tokenOf, normalized)
	}

	return v, nil
}

// NewSeeded builds a vocabulary pre-populated with common resume and job
// posting terms.
func NewSeeded(capacity int) (*Vocabulary, error) {
	return New(commonTerms, capacity)
}

// Size returns the number of known tokens, reserved tokens included.
func (v *Vocabulary) Size() int {
	return len(v.tokenOf)
}

// Capacity returns the maximum vocabulary size.
func (v *Vocabulary) Capacity() int {
	return v.capacity
}

// ID returns the id for a normalized token, or UnkID if unknown.
func (v *Vocabulary) ID(token string) int {
	if id, ok := v.idOf[token]; ok {
		return id
	}
	return UnkID
}

// Token returns the token for an id, or the UNK marker for ids outside the
// known range.
func (v *Vocabulary) Token(id int) string {
	if id < 0 || id >= len(v.tokenOf) {
		return UnkToken
	}
	return v.tokenOf[id]
}

// InvalidLengthError reports a caller-supplied maximum sequence length that
// cannot produce a valid token sequence.
type InvalidLengthError struct {
	MaxLen int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid max sequence length %d: must be positive", e.MaxLen)
}

// Encode tokenizes text and maps it to a TokenSequence of exactly maxLen ids:
// sequences longer than maxLen are truncated from the tail, shorter sequences
// are padded with PadID at the tail. Unknown tokens map to UnkID. Encode
// never fails on unseen input; only a non-positive maxLen is an error.
func (v *Vocabulary) Encode(text string, maxLen int) (TokenSequence, error) {
	if maxLen <= 0 {
		return nil, &InvalidLengthError{MaxLen: maxLen}
	}

	tokens := Tokenize(text)
	if len(tokens) > maxLen {
		tokens = tokens[:maxLen]
	}

	seq := make(TokenSequence, maxLen)
	for i, token := range tokens {
		seq[i] = v.ID(token)
	}
	for i := len(tokens); i < maxLen; i++ {
		seq[i] = PadID
	}

	return seq, nil
}

// Decode renders a token sequence back to text. Padding is dropped, decoding
// stops at the first END marker, and out-of-vocabulary ids render as the UNK
// marker. START and MASK markers are dropped.
func (v *Vocabulary) Decode(seq TokenSequence) string {
	words := make([]string, 0, len(seq))
	for _, id := range seq {
		switch id {
		case PadID, StartID, MaskID:
			continue
		case EndID:
			return strings.Join(words, " ")
		default:
			words = append(words, v.Token(id))
		}
	}
	return strings.Join(words, " ")
}

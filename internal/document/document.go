// Package document defines the annotated token stream contract shared with
// the external annotation component. Tokens arrive fully annotated and are
// never mutated afterwards; the correction pipeline only reads them.
package document

import "strings"

// Token is one annotated token of the source text. Whitespace holds the
// trailing whitespace exactly as it appears after the token, so concatenating
// Text+Whitespace over all tokens reproduces the source string.
type Token struct {
	Index      int    `json:"index"`
	Text       string `json:"text"`
	Whitespace string `json:"whitespace"`
	EntType    string `json:"ent_type,omitempty"`
	LikeNum    bool   `json:"like_num,omitempty"`
	LikeEmail  bool   `json:"like_email,omitempty"`
	LikeURL    bool   `json:"like_url,omitempty"`
}

// TextWithWS returns the token's surface text with its trailing whitespace.
func (t Token) TextWithWS() string { return t.Text + t.Whitespace }

// Doc is an ordered token sequence.
type Doc struct {
	Tokens []Token
}

// New builds a Doc from annotated tokens. Indexes are reassigned to the
// document order so positions stay unique regardless of what the annotation
// payload carried.
func New(tokens []Token) Doc {
	for i := range tokens {
		tokens[i].Index = i
	}
	return Doc{Tokens: tokens}
}

// Len returns the number of tokens.
func (d Doc) Len() int { return len(d.Tokens) }

// Text reconstructs the exact source string.
func (d Doc) Text() string {
	var b strings.Builder
	for _, tok := range d.Tokens {
		b.WriteString(tok.Text)
		b.WriteString(tok.Whitespace)
	}
	return b.String()
}

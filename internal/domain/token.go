package domain

// Token is a single word or punctuation unit produced by the tokenizer.
// Index is the token's 0-based position in the sentence.
type Token struct {
	Text  string
	Index int
}

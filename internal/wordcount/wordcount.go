package wordcount

import "regexp"

// wordRun matches one maximal run of word characters (letters, digits,
// underscore). Contiguous non-word characters are separators; this is
// deliberately not linguistic tokenization.
var wordRun = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Count returns the number of word-tokens in text.
func Count(text string) int {
	return len(wordRun.FindAllStringIndex(text, -1))
}

// Validate reports whether text carries at least min word-tokens, together
// with the observed count. Pure; callers must not issue any external call
// when accepted is false.
func Validate(text string, min int) (accepted bool, count int) {
	count = Count(text)
	return count >= min, count
}

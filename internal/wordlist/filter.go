package wordlist

import "unicode"

// Playable reports whether every character of word can be guessed.
func Playable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

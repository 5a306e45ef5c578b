// Package letterset encodes the distinct letters of a word as a bit mask.
package letterset

import (
	"math/bits"
	"strings"
)

// A LetterSet is a bit mask of the letters a-z, with 'a' at bit 0. The
// alphabet has 26 letters, so a uint64 is plenty of room.
type LetterSet uint64

// Vowels is the letter set {a, e, i, o, u}.
const Vowels = LetterSet(1<<('a'-'a') | 1<<('e'-'a') | 1<<('i'-'a') |
	1<<('o'-'a') | 1<<('u'-'a'))

// MakeLetterSet converts a word into its letter set, lowercasing first.
// The second return value is false if the word repeats a letter or
// contains anything outside a-z; such words can never join a clique.
func MakeLetterSet(word string) (LetterSet, bool) {
	var ls LetterSet
	for _, r := range strings.ToLower(word) {
		if r < 'a' || r > 'z' {
			return 0, false
		}
		bit := LetterSet(1) << (r - 'a')
		if ls&bit != 0 {
			return ls, false
		}
		ls |= bit
	}
	return ls, true
}

// Intersect returns the letters present in both sets.
func (ls LetterSet) Intersect(other LetterSet) LetterSet {
	return ls & other
}

// Count returns the number of letters in the set.
func (ls LetterSet) Count() int {
	return bits.OnesCount64(uint64(ls))
}

// Contains reports whether the lowercase letter r is in the set.
func (ls LetterSet) Contains(r rune) bool {
	if r < 'a' || r > 'z' {
		return false
	}
	return ls&(1<<(r-'a')) != 0
}

// Letters expands the set back into its letters, in alphabetical order.
func (ls LetterSet) Letters() []rune {
	letters := make([]rune, 0, ls.Count())
	for r := 'a'; r <= 'z'; r++ {
		if ls.Contains(r) {
			letters = append(letters, r)
		}
	}
	return letters
}

func (ls LetterSet) String() string {
	return string(ls.Letters())
}

package wordgraph

import "errors"

var (
	// ErrBadLength indicates a word length outside [1, 26].
	ErrBadLength = errors.New("wordgraph: word length must be between 1 and 26")
	// ErrNoWords indicates an empty word list.
	ErrNoWords = errors.New("wordgraph: no words supplied")
)

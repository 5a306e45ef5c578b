package cliquer

import "errors"

// ErrCliqueTooSmall indicates a word length whose clique would have fewer
// than two words (any length above 13 for a 26-letter alphabet).
var ErrCliqueTooSmall = errors.New("cliquer: clique size must be at least 2")

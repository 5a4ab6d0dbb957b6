// Package wordlist loads word lists from files and selects secret words.
package wordlist

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

var (
	// ErrResourceNotFound is returned when the word list cannot be opened or read.
	ErrResourceNotFound = errors.New("word list not found")
	// ErrEmptyWordList is returned when the word list holds no words.
	ErrEmptyWordList = errors.New("word list is empty")
)

// maxWordSize bounds a single token so a file without whitespace cannot grow
// the read buffer without limit.
const maxWordSize = 64 << 20

// Load reads whitespace-separated words from the provided file path.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrResourceNotFound, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	if info, err := file.Stat(); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrResourceNotFound, path)
	}

	var words []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(nil, maxWordSize)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrResourceNotFound, path, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyWordList, path)
	}
	return words, nil
}

// Choose returns the word at the 1-based index, wrapping around the list in
// both directions. Index 0 selects the last word. The word is returned as
// written in the file.
func Choose(words []string, index int) (string, error) {
	if len(words) == 0 {
		return "", ErrEmptyWordList
	}
	pos := (index - 1) % len(words)
	if pos < 0 {
		pos += len(words)
	}
	return words[pos], nil
}

// ChooseWord loads the word list at path and selects the word at index.
func ChooseWord(path string, index int) (string, error) {
	words, err := Load(path)
	if err != nil {
		return "", err
	}
	return Choose(words, index)
}

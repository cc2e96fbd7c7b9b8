// Package transcript turns a provider's text into clickable words and
// keeps the manual accuracy bookkeeping for one transcription result.
package transcript

import (
	"fmt"
	"strings"
)

// Tokenize splits a transcript into display words on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(text)
}

// Annotations tracks which words of one transcript the user has marked
// inaccurate. A fresh set is created for every transcription result, so
// no marks survive a re-recording. Not safe for concurrent use; all
// access happens on the UI event loop.
type Annotations struct {
	words  []string
	marked []bool
}

func NewAnnotations(words []string) *Annotations {
	return &Annotations{
		words:  words,
		marked: make([]bool, len(words)),
	}
}

func (a *Annotations) Len() int {
	return len(a.words)
}

func (a *Annotations) Word(i int) string {
	if i < 0 || i >= len(a.words) {
		return ""
	}
	return a.words[i]
}

// Toggle flips the marked-inaccurate flag of word i and returns the new
// state. Out-of-range indices are ignored.
func (a *Annotations) Toggle(i int) bool {
	if i < 0 || i >= len(a.marked) {
		return false
	}
	a.marked[i] = !a.marked[i]
	return a.marked[i]
}

func (a *Annotations) Marked(i int) bool {
	if i < 0 || i >= len(a.marked) {
		return false
	}
	return a.marked[i]
}

// Reset clears every mark.
func (a *Annotations) Reset() {
	for i := range a.marked {
		a.marked[i] = false
	}
}

// Accuracy reports the percentage of words not marked inaccurate. ok is
// false when the transcript has no words.
func (a *Annotations) Accuracy() (percent float64, correct, total int, ok bool) {
	total = len(a.marked)
	if total == 0 {
		return 0, 0, 0, false
	}
	for _, m := range a.marked {
		if !m {
			correct++
		}
	}
	return float64(correct) / float64(total) * 100, correct, total, true
}

// Summary renders the accuracy the way the result panel displays it,
// e.g. "75.0% (3/4 correct)", or "N/A" for an empty transcript.
func (a *Annotations) Summary() string {
	percent, correct, total, ok := a.Accuracy()
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%% (%d/%d correct)", percent, correct, total)
}

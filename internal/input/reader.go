package input

import (
	"bufio"
	"io"
	"os"
)

// Reader abstracts line-oriented user input so the interactive install
// flow can be driven by scripted answers in tests.
type Reader interface {
	ReadString(delim byte) (string, error)
}

// StdinReader reads prompt answers from os.Stdin.
type StdinReader struct {
	reader *bufio.Reader
}

// NewStdinReader creates a new StdinReader
func NewStdinReader() *StdinReader {
	return &StdinReader{
		reader: bufio.NewReader(os.Stdin),
	}
}

// ReadString reads until delimiter
func (r *StdinReader) ReadString(delim byte) (string, error) {
	return r.reader.ReadString(delim)
}

// StringReader feeds pre-scripted answers to prompts in tests. Each
// input must already include its delimiter (e.g. "yes\n").
type StringReader struct {
	inputs []string
	index  int
}

// NewStringReader creates a reader over the given answers.
func NewStringReader(inputs ...string) *StringReader {
	return &StringReader{inputs: inputs}
}

// ReadString returns the next scripted answer, or io.EOF once all
// answers are consumed. The delim parameter is ignored.
func (r *StringReader) ReadString(delim byte) (string, error) {
	if r.index >= len(r.inputs) {
		return "", io.EOF
	}
	result := r.inputs[r.index]
	r.index++
	return result, nil
}

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixLines(t *testing.T) {
	for _, tc := range []struct {
		name   string
		prefix string
		in     string
		out    string
	}{
		{"trailing newline", "> ", "one\ntwo\nthree\n", "> one\n> two\n> three\n"},
		{"no trailing newline", "> ", "one\ntwo", "> one\n> two"},
		{"empty", "> ", "", ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, prefixLines(tc.prefix, tc.in))
		})
	}
}

func TestErrWriter_StopsAfterFirstError(t *testing.T) {
	ew := &errWriter{Writer: failingWriter{}}
	n, err := ew.Write([]byte("a"))
	assert.Zero(t, n)
	assert.Error(t, err)

	n, err = ew.Write([]byte("b"))
	assert.Zero(t, n)
	assert.Equal(t, ew.err, err)
}

func TestErrWriter_PassesThroughUntilError(t *testing.T) {
	var buf bytes.Buffer
	ew := &errWriter{Writer: &buf}
	_, err := ew.Write([]byte("hi"))
	assert.NoError(t, err)
	assert.Equal(t, "hi", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, assert.AnError }

// Command piece is a thin boundary around the piece-table document core: it
// loads each file argument into a buffer, and renders it back to stdout
// (-render, on by default), writes it back in place (-write), or both. It
// implements no terminal UI
// (alternate screen, key reading, cursor drawing) -- that is a separate,
// out-of-scope collaborator.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/google/renameio"

	"github.com/jcorbin/piece/internal/registry"
)

func main() {
	var (
		write  bool
		render = true
	)
	flag.BoolVar(&write, "write", false, "write the (possibly round-tripped) content back to each file in place")
	flag.BoolVar(&render, "render", true, "render each loaded buffer's content to stdout")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		log.Fatalf("usage: %s [-write] [-render] file [file...]", os.Args[0])
	}

	reg := registry.New()
	out := &errWriter{Writer: os.Stdout}
	multi := len(args) > 1

	for _, path := range args {
		id, err := reg.Open(path)
		if err != nil {
			log.Fatalf("unable to open %v: %v", path, err)
		}
		if err := serveBuffer(reg, id, path, render, write, multi, out); err != nil {
			log.Fatalf("unable to serve %v: %v", path, err)
		}
	}
	if out.err != nil {
		log.Fatalf("unable to write output: %v", out.err)
	}
}

func serveBuffer(reg *registry.Registry, id int, path string, render, write, multi bool, out io.Writer) error {
	doc, err := reg.Get(id)
	if err != nil {
		return err
	}

	if render {
		text := doc.String()
		if multi {
			text = prefixLines(fmt.Sprintf("%s: ", path), text)
		}
		if _, err := io.WriteString(out, text); err != nil {
			return err
		}
	}

	if write {
		path, err := reg.Path(id)
		if err != nil {
			return err
		}
		if path == "" {
			return nil // buffer has no backing file to write to
		}
		return writeBack(path, doc.Render())
	}
	return nil
}

// prefixLines prepends prefix to every line of s, including a final
// unterminated line if s does not end in "\n". Used to label each buffer's
// rendered output with its source path when more than one file is given.
func prefixLines(prefix, s string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		if line == "" {
			continue
		}
		b.WriteString(prefix)
		b.WriteString(line)
	}
	return b.String()
}

// errWriter wraps a writer, tracking its first error and refusing further
// writes once one occurs, so a run of writes can be error-checked once at
// the end instead of after every call.
type errWriter struct {
	io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (n int, err error) {
	if ew.err == nil {
		n, ew.err = ew.Writer.Write(p)
	}
	return n, ew.err
}

func writeBack(path string, content []byte) (rerr error) {
	pf, err := renameio.TempFile("", path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := pf.Cleanup(); rerr == nil {
			rerr = cerr
		}
	}()

	if _, err := io.Copy(pf, bytes.NewReader(content)); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}

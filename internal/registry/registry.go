// Package registry implements the buffer registry named, but left
// unspecified, by the piece-table core: it assigns small integer buffer IDs
// to Documents loaded from files, mirroring the role cmd/soc's fsStore plays
// for its own single stream file, generalised to many. Like the core it
// wraps, it is single-threaded; external serialisation is expected of any
// caller sharing a Registry across goroutines.
package registry

import (
	"errors"
	"io/ioutil"
	"sort"

	"github.com/jcorbin/piece/piece"
)

// Errors returned by Registry operations. These are recoverable boundary
// errors -- never panics -- since a missing buffer ID or unreadable file is
// a caller/filesystem condition, not a broken core invariant.
var (
	ErrBufferNotFound = errors.New("registry: buffer not found")
)

// Registry owns a set of in-memory Documents, keyed by a small integer
// buffer ID. It is a thin wrapper: it never touches fragment-index
// internals, only calls exported Document operations.
type Registry struct {
	buffers map[int]*entry
	nextID  int
}

type entry struct {
	path string // empty for buffers not backed by a file
	doc  *piece.Document
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{buffers: make(map[int]*entry)}
}

// NewBuffer registers a new empty Document and returns its assigned ID.
func (r *Registry) NewBuffer() int {
	id := r.nextID
	r.nextID++
	r.buffers[id] = &entry{doc: piece.New()}
	return id
}

// Open reads the file at path in full and registers a Document over its
// contents, returning the assigned buffer ID.
func (r *Registry) Open(path string) (int, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return 0, err
	}

	id := r.nextID
	r.nextID++
	r.buffers[id] = &entry{path: path, doc: piece.From(string(b))}
	return id, nil
}

// Get returns the Document registered under id.
func (r *Registry) Get(id int) (*piece.Document, error) {
	e, ok := r.buffers[id]
	if !ok {
		return nil, ErrBufferNotFound
	}
	return e.doc, nil
}

// Path returns the source file path a buffer was opened from, or "" if it
// was created fresh via NewBuffer.
func (r *Registry) Path(id int) (string, error) {
	e, ok := r.buffers[id]
	if !ok {
		return "", ErrBufferNotFound
	}
	return e.path, nil
}

// Close discards the buffer registered under id.
func (r *Registry) Close(id int) error {
	if _, ok := r.buffers[id]; !ok {
		return ErrBufferNotFound
	}
	delete(r.buffers, id)
	return nil
}

// IDs returns every currently registered buffer ID in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.buffers))
	for id := range r.buffers {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

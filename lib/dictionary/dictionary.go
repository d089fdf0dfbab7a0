// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package dictionary

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"
)

//go:embed data/*.zst
var embedded embed.FS

// Reader exposes read-to-end access to a named dictionary resource.
// The two resource names consumed by this module are
// "botw_hashed_names.txt" and "botw_numbered_names.txt".
type Reader interface {
	ReadAll(name string) ([]byte, error)
}

// Default is the production [Reader], backed by the embedded,
// zstd-compressed dictionaries shipped with this module.
var Default Reader = &embeddedDictionary{}

// embeddedDictionary decompresses data/<name>.zst lazily, once per
// resource name, the same package-level-reused-decoder pattern as a
// zstd decode path that is called repeatedly over the life of a
// process: one *zstd.Decoder, created once, used for every resource.
type embeddedDictionary struct {
	mu      sync.Mutex
	decoder *zstd.Decoder
	cache   map[string][]byte
}

// ReadAll returns the full decompressed contents of the named
// resource. Initialization is crash-safe: if zstd decoder setup fails
// on one call, a subsequent call retries rather than being permanently
// wedged by a one-time failure.
func (d *embeddedDictionary) ReadAll(name string) ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if data, ok := d.cache[name]; ok {
		return data, nil
	}

	if d.decoder == nil {
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("initializing dictionary decoder: %w", err)
		}
		d.decoder = decoder
		d.cache = make(map[string][]byte)
	}

	compressed, err := embedded.ReadFile("data/" + name + ".zst")
	if err != nil {
		return nil, fmt.Errorf("reading embedded dictionary %s: %w", name, err)
	}

	data, err := d.decoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing dictionary %s: %w", name, err)
	}

	d.cache[name] = data
	return data, nil
}

// DirReader is a [Reader] backed by plain, uncompressed files in a
// directory on disk: ReadAll(name) reads dir/name. Used in place of
// [Default] when a caller's [Config] names a DictionaryOverride
// directory, for development against a modified dictionary without
// re-embedding and recompressing it.
type DirReader struct {
	dir string
}

// NewDirReader returns a DirReader rooted at dir.
func NewDirReader(dir string) *DirReader {
	return &DirReader{dir: dir}
}

// ReadAll reads dir/name in full.
func (d *DirReader) ReadAll(name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(d.dir, name))
	if err != nil {
		return nil, fmt.Errorf("reading dictionary override %s: %w", name, err)
	}
	return data, nil
}

// Map is an in-memory [Reader] for tests: a plain name-to-contents
// map with no compression.
type Map map[string][]byte

// ReadAll returns m[name], or an error if name is absent.
func (m Map) ReadAll(name string) ([]byte, error) {
	data, ok := m[name]
	if !ok {
		return nil, fmt.Errorf("dictionary resource %q not found", name)
	}
	return data, nil
}

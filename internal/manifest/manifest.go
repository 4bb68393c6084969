// Package manifest reads project.json, the one configuration surface the
// plume toolchain defines (mirroring Project in
// _examples/original_source/src/project.rs). The core only ever needs the
// entry source path, so fields are pulled out with gjson path queries
// instead of an encoding/json struct that would have to declare every field
// up front.
package manifest

import (
	"os"

	"github.com/plume-lang/plumec/internal/errors"
	"github.com/tidwall/gjson"
)

// Manifest is the parsed content of a project.json file. Entry is the only
// field the core compiler consumes; the rest are exposed for tooling that
// wants to describe a project (e.g. a future "plumec info" subcommand)
// without the core depending on them.
type Manifest struct {
	Path        string
	Name        string
	Version     string
	Authors     []string
	Description string
	Kind        string
	Entry       string
}

// Load reads and parses path as a project.json manifest. A missing "entry"
// field is a ManifestError, since every other operation in the core depends
// on it; the remaining fields are optional exactly as project.rs declares
// them (authors/description are Option<...> there).
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewManifestError(path, err.Error())
	}

	if !gjson.ValidBytes(data) {
		return nil, errors.NewManifestError(path, "not valid JSON")
	}

	root := gjson.ParseBytes(data)
	entry := root.Get("entry")
	if !entry.Exists() || entry.String() == "" {
		return nil, errors.NewManifestError(path, "missing required field \"entry\"")
	}

	m := &Manifest{
		Path:        path,
		Name:        root.Get("name").String(),
		Version:     root.Get("version").String(),
		Description: root.Get("description").String(),
		Kind:        root.Get("kind").String(),
		Entry:       entry.String(),
	}

	if authors := root.Get("authors"); authors.IsArray() {
		for _, a := range authors.Array() {
			m.Authors = append(m.Authors, a.String())
		}
	}

	return m, nil
}

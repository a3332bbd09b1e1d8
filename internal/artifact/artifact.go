// Package artifact names the project files the audit inspects and loads
// their contents. Artifacts are plain text, read whole, exactly once per
// run: both the content and a failed read are cached, so two checks bound
// to the same artifact share a single read and a single outcome.
package artifact

import (
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

// Canonical artifact paths, relative to the audit root. The built-in
// checklist is defined against these and they are not configurable.
const (
	Dockerfile     = "Dockerfile"
	NginxConf      = "nginx.conf"
	SupabaseClient = "src/supabaseClient.ts"
	EntryPoint     = "index.tsx"
)

type entry struct {
	content string
	err     error
}

// Loader reads artifacts beneath a root directory and memoizes the result
// per relative path.
type Loader struct {
	root  string
	cache map[string]entry
}

// NewLoader returns a Loader rooted at dir. An empty dir means the current
// working directory.
func NewLoader(dir string) *Loader {
	if dir == "" {
		dir = "."
	}
	return &Loader{root: dir, cache: make(map[string]entry)}
}

// Root returns the directory the loader resolves relative paths against.
func (l *Loader) Root() string {
	return l.root
}

// Load returns the full text of the artifact at the given relative path.
// The first call reads the file; later calls return the cached content or
// the cached read error without touching the filesystem again.
func (l *Loader) Load(rel string) (string, error) {
	if e, ok := l.cache[rel]; ok {
		return e.content, e.err
	}

	data, err := os.ReadFile(filepath.Join(l.root, rel))
	if err != nil {
		l.cache[rel] = entry{err: err}
		log.Debugf("artifact %s: %v", rel, err)
		return "", err
	}

	e := entry{content: string(data)}
	l.cache[rel] = e
	log.Debugf("artifact %s: loaded %d bytes", rel, len(data))
	return e.content, nil
}

package assets

import (
	"bytes"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"strings"
)

const cacheControl = "public, max-age=3600"

// LocalSource serves files from a directory tree. Directories are only served
// through their index.html and dot-files are never served.
type LocalSource struct {
	fsys fs.FS
}

func NewLocalSource(dir string) *LocalSource {
	return newFSSource(os.DirFS(dir))
}

func newFSSource(fsys fs.FS) *LocalSource {
	return &LocalSource{fsys: fsys}
}

func (s *LocalSource) Serve(w http.ResponseWriter, r *http.Request, name string) bool {
	file, ok := s.resolve(name)
	if !ok {
		return false
	}
	f, err := s.fsys.Open(file)
	if err != nil {
		return false
	}
	defer f.Close()
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	// r.URL.Path may still hold ".." segments; serve the resolved file as is.
	rs, ok := f.(io.ReadSeeker)
	if !ok {
		b, err := io.ReadAll(f)
		if err != nil {
			return false
		}
		rs = bytes.NewReader(b)
	}
	w.Header().Set("Cache-Control", cacheControl)
	http.ServeContent(w, r, fi.Name(), fi.ModTime(), rs)
	return true
}

func (s *LocalSource) resolve(name string) (string, bool) {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" {
		name = "."
	}
	for _, part := range strings.Split(name, "/") {
		if part != "." && strings.HasPrefix(part, ".") {
			return "", false
		}
	}

	fi, err := fs.Stat(s.fsys, name)
	if err != nil {
		return "", false
	}
	if fi.IsDir() {
		name = path.Join(name, "index.html")
		fi, err = fs.Stat(s.fsys, name)
		if err != nil || fi.IsDir() {
			return "", false
		}
	}
	return name, true
}

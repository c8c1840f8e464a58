package catalog

import (
	"context"
	"embed"
	"io/fs"
	"os"
	"path"

	"github.com/kerbaras/lectures/pkg/utils"
)

//go:embed sample
var sampleFS embed.FS

// Source reads catalog files by name.
type Source interface {
	ReadFile(ctx context.Context, name string) ([]byte, error)
	String() string
}

type FSSource struct {
	fsys fs.FS
	name string
}

func NewFSSource(fsys fs.FS, name string) *FSSource {
	return &FSSource{fsys: fsys, name: name}
}

// NewDirSource reads the catalog from a directory on disk.
func NewDirSource(dir string) *FSSource {
	return &FSSource{fsys: os.DirFS(dir), name: dir}
}

// Sample is the catalog built into the binary.
func Sample() *FSSource {
	sub, err := fs.Sub(sampleFS, "sample")
	if err != nil {
		panic(err)
	}
	return &FSSource{fsys: sub, name: "embedded"}
}

func (s *FSSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(s.fsys, path.Clean(name))
}

func (s *FSSource) String() string {
	return s.name
}

// HTTPSource reads the catalog from a static file server.
type HTTPSource struct {
	api *utils.API
}

func NewHTTPSource(api *utils.API) *HTTPSource {
	return &HTTPSource{api: api}
}

func (s *HTTPSource) ReadFile(ctx context.Context, name string) ([]byte, error) {
	return s.api.GetRaw(ctx, "/"+path.Clean(name))
}

func (s *HTTPSource) String() string {
	return s.api.BaseURL()
}

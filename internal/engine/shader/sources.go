package shader

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// Program names with embedded sources.
const (
	Entity   = "entity"
	Animated = "animated"
	Terrain  = "terrain"
)

//go:embed glsl/*.vert glsl/*.frag
var embedded embed.FS

// Source is a vertex/fragment pair.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Embedded returns the built-in GLSL sources as a filesystem rooted at the
// directory holding the <name>.vert and <name>.frag files.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "glsl")
	if err != nil {
		panic(err)
	}
	return sub
}

// Sources returns the shader filesystem for dir: the embedded sources when
// dir is empty, otherwise the directory on disk.
func Sources(dir string) fs.FS {
	if dir == "" {
		return Embedded()
	}
	return os.DirFS(dir)
}

// LoadSource reads <name>.vert and <name>.frag from fsys.
func LoadSource(fsys fs.FS, name string) (Source, error) {
	vert, err := fs.ReadFile(fsys, name+".vert")
	if err != nil {
		return Source{}, fmt.Errorf("reading %s vertex shader: %w", name, err)
	}
	frag, err := fs.ReadFile(fsys, name+".frag")
	if err != nil {
		return Source{}, fmt.Errorf("reading %s fragment shader: %w", name, err)
	}
	return Source{Name: name, Vertex: string(vert), Fragment: string(frag)}, nil
}

// Attributes returns the attribute bindings a named program expects.
func Attributes(name string) []string {
	if name == Animated {
		return SkinnedAttributes
	}
	return StaticAttributes
}

// Build loads and compiles the named program from fsys.
func Build(fsys fs.FS, name string) (*Program, error) {
	src, err := LoadSource(fsys, name)
	if err != nil {
		return nil, err
	}
	return Compile(name, src.Vertex, src.Fragment, Attributes(name))
}

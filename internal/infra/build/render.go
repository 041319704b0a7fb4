// Where: internal/infra/build/render.go
// What: Dockerfile rendering into the build-output tree.
// Why: Resolve the template source, substitute tokens, and write the file at its fixed path.
package build

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru-code/jarbox/internal/domain/template"
	"github.com/poruru-code/jarbox/internal/meta"
)

// DockerfilePath returns the absolute location of the rendered Dockerfile:
// <projectDir>/<buildDir>/layers/Dockerfile.
func DockerfilePath(projectDir, buildDir string) (string, error) {
	buildDir = strings.TrimSpace(buildDir)
	if buildDir == "" {
		buildDir = meta.DefaultBuildDir
	}
	if !filepath.IsAbs(buildDir) {
		buildDir = filepath.Join(projectDir, buildDir)
	}
	abs, err := filepath.Abs(filepath.Join(buildDir, meta.LayersDir, meta.DockerfileName))
	if err != nil {
		return "", fmt.Errorf("resolve dockerfile path: %w", err)
	}
	return abs, nil
}

// templateSource picks the filesystem and file name for the request. An
// explicit TemplatePath wins over the embedded template of the requested kind.
func templateSource(embedded fs.FS, req Request) (fs.FS, string, error) {
	if path := strings.TrimSpace(req.TemplatePath); path != "" {
		if !filepath.IsAbs(path) {
			path = filepath.Join(req.ProjectDir, path)
		}
		return os.DirFS(filepath.Dir(path)), filepath.Base(path), nil
	}
	def, ok := template.Lookup(req.Kind)
	if !ok {
		return nil, "", fmt.Errorf("unknown template kind %q", req.Kind)
	}
	return embedded, def.File, nil
}

type rendered struct {
	path       string
	content    string
	unresolved []string
}

func renderDockerfile(embedded fs.FS, req Request) (rendered, error) {
	kind := req.Kind
	if kind == "" {
		kind = template.KindJVM
	}
	req.Kind = kind

	fsys, name, err := templateSource(embedded, req)
	if err != nil {
		return rendered{}, configError(err)
	}
	lines, err := template.Load(fsys, name)
	if err != nil {
		if errors.Is(err, template.ErrTemplateNotFound) {
			return rendered{}, configError(err)
		}
		return rendered{}, ioError("load template", err)
	}
	tokens, err := template.Tokens(kind, req.Parameters, req.Native)
	if err != nil {
		return rendered{}, configError(err)
	}

	unresolved := template.UnresolvedTokens(lines, tokens)
	if req.Strict && len(unresolved) > 0 {
		return rendered{}, configError(fmt.Errorf("%w: %s", errUnresolvedTokens, strings.Join(unresolved, ", ")))
	}

	path, err := DockerfilePath(req.ProjectDir, req.BuildDir)
	if err != nil {
		return rendered{}, ioError("resolve output path", err)
	}
	content := template.Content(template.Render(lines, tokens))
	if err := writeFile(path, content); err != nil {
		return rendered{}, ioError("write "+path, err)
	}
	return rendered{path: path, content: content, unresolved: unresolved}, nil
}

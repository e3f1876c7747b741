package eventregistry

import (
	"fmt"
	"io/fs"
	stdpath "path"
	"strings"

	domain "github.com/zjrosen/eventregistry/internal/domain/eventregistry"
)

// LoadDeploymentFromFS reads every file below root into req.Resources.
// Resource names are slash-separated paths relative to root and resources are
// added in lexical path order, so the same tree always yields the same
// deployment. Hidden files and directories are skipped.
func LoadDeploymentFromFS(fsys fs.FS, root string, req domain.DeploymentRequest) (domain.DeploymentRequest, error) {
	root = stdpath.Clean(root)

	err := fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		content, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		name := path
		if root != "." {
			name = strings.TrimPrefix(path, root+"/")
		}
		req.Resources = append(req.Resources, domain.NewResource(name, content))
		return nil
	})
	if err != nil {
		return req, fmt.Errorf("load deployment from %s: %w", root, err)
	}
	return req, nil
}

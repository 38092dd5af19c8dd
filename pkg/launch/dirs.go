package launch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DataDirMode is the permission of created data directories before umask.
const DataDirMode fs.FileMode = 0o755

// FileSystem abstracts the directory operations needed while still root.
type FileSystem interface {
	MkdirAll(path string, perm fs.FileMode) error
	WalkDir(root string, fn fs.WalkDirFunc) error
	Lchown(name string, uid, gid int) error
}

// RealFileSystem implements FileSystem on the host.
type RealFileSystem struct{}

// MkdirAll creates path and any missing parents.
func (r *RealFileSystem) MkdirAll(path string, perm fs.FileMode) error {
	return os.MkdirAll(path, perm)
}

// WalkDir walks the tree rooted at root without following symlinks.
func (r *RealFileSystem) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}

// Lchown changes the owner of name, not of a symlink target.
func (r *RealFileSystem) Lchown(name string, uid, gid int) error {
	return lchown(name, uid, gid)
}

// PrepareDataDir creates path if needed and hands the whole tree to id.
// Both steps are idempotent, so a failure later in the startup can leave
// them in place.
func PrepareDataDir(fsys FileSystem, path string, id Identity) error {
	if err := fsys.MkdirAll(path, DataDirMode); err != nil {
		return fmt.Errorf("create data directory %s: %w", path, err)
	}

	err := fsys.WalkDir(path, func(name string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		return fsys.Lchown(name, id.UID, id.GID)
	})
	if err != nil {
		return fmt.Errorf("chown data directory %s to %s: %w", path, id.Name, err)
	}
	return nil
}

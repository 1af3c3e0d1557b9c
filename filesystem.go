package main

import (
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// splitConfigPath returns a filesystem rooted at the directory of path and
// the file name relative to it.
func splitConfigPath(path string) (billy.Filesystem, string) {
	return newDiskFs(filepath.Dir(path)), filepath.Base(path)
}

func newDiskFs(root string) billy.Filesystem {
	return osfs.New(root)
}

func newMemFs() billy.Filesystem {
	return memfs.New()
}

package core

import (
	"io/fs"
	"path"
	"strings"
)

// CopyFrom copies every regular file under srcRoot in src into dst at dstRoot,
// preserving the directory structure and permission bits.
//
// Use "." as srcRoot to copy the whole source. It is typically used to seed
// an in-memory filesystem from an embed.FS or a testing/fstest.MapFS:
//
//	mem := billy.NewMemory()
//	err := core.CopyFrom(fstest.MapFS{"a.txt": {Data: []byte("a")}}, mem, ".", "src")
func CopyFrom(src fs.FS, dst FS, srcRoot, dstRoot string) error {
	return fs.WalkDir(src, srcRoot, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(src, filePath)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		rel := filePath
		if srcRoot != "." && srcRoot != "" {
			rel = strings.TrimPrefix(strings.TrimPrefix(filePath, srcRoot), "/")
		}
		dstPath := path.Join(dstRoot, rel)

		if dir := path.Dir(dstPath); dir != "." && dir != "" {
			if err := dst.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}

		return dst.WriteFile(dstPath, data, info.Mode().Perm())
	})
}

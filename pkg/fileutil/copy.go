package fileutil

import (
	"io"
	"os"
	"path/filepath"

	"github.com/TriNgo0108/z-command/internal/errors"
)

// CopyFile copies a single file byte-for-byte, preserving the source mode.
// An existing destination file is truncated; callers that must not clobber
// user files use CopyFileIfAbsent instead.
func CopyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return errors.Wrapf(err, "opening source file %s", src)
	}
	defer srcFile.Close()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return errors.Wrapf(err, "stating source file %s", src)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return errors.Wrapf(err, "creating destination file %s", dst)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return errors.Wrapf(err, "copying %s to %s", src, dst)
	}

	return nil
}

// CopyFileIfAbsent copies src to dst unless dst already exists.
// Returns true when a copy was written, false when the destination was
// preserved. Existing files are never touched.
func CopyFileIfAbsent(src, dst string) (bool, error) {
	if _, err := os.Lstat(dst); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "stating destination %s", dst)
	}
	if err := CopyFile(src, dst); err != nil {
		return false, err
	}
	return true, nil
}

// WriteFileIfAbsent writes data to path unless the file already exists.
// Returns true when the file was written.
func WriteFileIfAbsent(path string, data []byte, perm os.FileMode) (bool, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, perm)
	if err != nil {
		if os.IsExist(err) {
			return false, nil
		}
		return false, errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return false, errors.Wrapf(err, "writing %s", path)
	}
	return true, nil
}

// CopyTree recursively copies the directory tree rooted at src into dst,
// creating directories as needed. Files already present under dst are
// preserved rather than overwritten.
func CopyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return errors.Wrapf(err, "reading directory %s", src)
	}

	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.Wrapf(err, "creating directory %s", dst)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyTree(srcPath, dstPath); err != nil {
				return err
			}
			continue
		}
		if _, err := CopyFileIfAbsent(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

// CopyTreeIfAbsent copies the whole tree from src to dst only when dst does
// not exist yet. Returns true when a copy was performed. Partial overlap is
// not merged: an existing destination directory is left untouched.
func CopyTreeIfAbsent(src, dst string) (bool, error) {
	if _, err := os.Stat(dst); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, errors.Wrapf(err, "stating destination %s", dst)
	}
	if err := CopyTree(src, dst); err != nil {
		return false, err
	}
	return true, nil
}

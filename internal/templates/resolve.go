// Package templates locates the template library on disk.
//
// A development checkout keeps a templates/ directory next to the binary
// (or in the working directory); an installed package ships templates.zip
// instead, which is extracted once per distinct archive content into a
// temp directory named after the MD5 of the zip bytes. The hash makes the
// cache content-addressed: changing the archive changes its path, so stale
// extractions are structurally impossible.
package templates

import (
	"archive/zip"
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"

	zcerrors "github.com/TriNgo0108/z-command/internal/errors"
)

// Names within the distribution and the extraction cache.
const (
	// DirName is the template library directory name.
	DirName = "templates"

	// ZipName is the packaged archive name shipped next to the binary.
	ZipName = "templates.zip"

	// cacheDirName is the subdirectory of the temp dir holding extractions.
	cacheDirName = "z-command-templates"
)

// Source holds the directories a resolution run consults. All fields are
// explicit so tests never need process-global mocking.
type Source struct {
	// ExecDir is the directory containing the installed binary.
	ExecDir string

	// WorkDir is the current working directory, consulted as a
	// development-checkout fallback.
	WorkDir string

	// TempDir hosts the zip extraction cache. Defaults to os.TempDir().
	TempDir string
}

// DefaultSource builds a Source from the running process: the executable's
// directory, the working directory, and the system temp directory.
func DefaultSource() (Source, error) {
	exe, err := os.Executable()
	if err != nil {
		return Source{}, errors.Wrap(err, "locating executable")
	}
	wd, err := os.Getwd()
	if err != nil {
		return Source{}, errors.Wrap(err, "locating working directory")
	}
	return Source{
		ExecDir: filepath.Dir(exe),
		WorkDir: wd,
		TempDir: os.TempDir(),
	}, nil
}

// Resolve returns a directory containing skills/ and agents/ subtrees.
//
// Lookup order:
//  1. <ExecDir>/templates, then <WorkDir>/templates (development mode)
//  2. <ExecDir>/templates.zip, extracted once to
//     <TempDir>/z-command-templates/<md5(zip bytes)>/templates
//  3. ErrTemplatesNotFound
func (s Source) Resolve() (string, error) {
	for _, base := range []string{s.ExecDir, s.WorkDir} {
		if base == "" {
			continue
		}
		dir := filepath.Join(base, DirName)
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, nil
		}
	}

	if s.ExecDir != "" {
		zipPath := filepath.Join(s.ExecDir, ZipName)
		if _, err := os.Stat(zipPath); err == nil {
			return s.extract(zipPath)
		}
	}

	return "", errors.Wrapf(zcerrors.ErrTemplatesNotFound,
		"no %s directory or %s archive near %s", DirName, ZipName, s.ExecDir)
}

// extract unpacks zipPath into the content-addressed cache and returns the
// templates directory inside it. When the cache entry already exists the
// extraction is skipped entirely. Concurrent invocations racing on the same
// hash at worst write the same bytes.
func (s Source) extract(zipPath string) (string, error) {
	data, err := os.ReadFile(zipPath)
	if err != nil {
		return "", errors.Wrap(err, "reading templates archive")
	}

	sum := md5.Sum(data)
	tempDir := s.TempDir
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	cacheDir := filepath.Join(tempDir, cacheDirName, hex.EncodeToString(sum[:]))
	templatesDir := filepath.Join(cacheDir, DirName)

	if info, err := os.Stat(cacheDir); err == nil && info.IsDir() {
		return templatesDir, nil
	}

	if err := unzip(data, cacheDir); err != nil {
		return "", errors.Wrap(err, "extracting templates archive")
	}

	return templatesDir, nil
}

// unzip extracts an in-memory zip archive under dest.
func unzip(data []byte, dest string) error {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errors.Wrap(err, "opening archive")
	}

	for _, f := range r.File {
		target, err := sanitizePath(dest, f.Name)
		if err != nil {
			return err
		}

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return errors.Wrapf(err, "creating directory %s", target)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return errors.Wrapf(err, "creating directory for %s", target)
		}

		if err := extractFile(f, target); err != nil {
			return err
		}
	}

	return nil
}

func extractFile(f *zip.File, target string) error {
	src, err := f.Open()
	if err != nil {
		return errors.Wrapf(err, "opening %s in archive", f.Name)
	}
	defer src.Close()

	dst, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, f.Mode())
	if err != nil {
		return errors.Wrapf(err, "creating %s", target)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return errors.Wrapf(err, "writing %s", target)
	}
	return nil
}

// sanitizePath rejects archive entries that would escape dest (zip slip).
func sanitizePath(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if !strings.HasPrefix(target, filepath.Clean(dest)+string(os.PathSeparator)) {
		return "", errors.Newf("archive entry escapes extraction directory: %s", name)
	}
	return target, nil
}

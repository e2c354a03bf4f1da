package app

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// newFileMode is the mode of files created for a missing path.
const newFileMode fs.FileMode = 0o644

// Document is the file being edited.
type Document struct {
	// Path is the file path as given on the command line.
	Path string

	// Name is the base name of the file.
	Name string

	// Created is true if the file did not exist and was created empty.
	Created bool

	content string
	mode    fs.FileMode
}

// OpenDocument reads the file at path, creating it empty if it does not
// exist. The content must be valid UTF-8.
func OpenDocument(path string) (*Document, error) {
	doc := &Document{
		Path: path,
		Name: filepath.Base(path),
		mode: newFileMode,
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		if err := doc.create(); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &FileError{Op: "open", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileError{Op: "open", Path: path, Err: ErrIsDirectory}
	}
	doc.mode = info.Mode().Perm()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &FileError{Op: "read", Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, &FileError{Op: "read", Path: path, Err: ErrInvalidEncoding}
	}
	doc.content = string(data)

	return doc, nil
}

func (d *Document) create() error {
	f, err := os.OpenFile(d.Path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, newFileMode)
	if err != nil {
		return &FileError{Op: "create", Path: d.Path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &FileError{Op: "create", Path: d.Path, Err: err}
	}
	d.Created = true
	return nil
}

// Content returns the text read from disk.
func (d *Document) Content() string {
	return d.content
}

// LineCount returns the number of lines in the text read from disk.
func (d *Document) LineCount() int {
	return strings.Count(d.content, "\n") + 1
}

// Mode returns the permission bits the file is written with.
func (d *Document) Mode() fs.FileMode {
	return d.mode
}

// Save replaces the file's content with text, keeping its mode.
func (d *Document) Save(text string) error {
	if err := os.WriteFile(d.Path, []byte(text), d.mode); err != nil {
		return &FileError{Op: "write", Path: d.Path, Err: err}
	}
	d.content = text
	return nil
}

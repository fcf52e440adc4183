package types

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FileInfo is a point-in-time snapshot of a filesystem entry. It is
// taken when a pattern match runs and is not kept in sync with the
// filesystem afterward.
type FileInfo struct {
	Path    string    `json:"path"` // absolute path
	Name    string    `json:"name"`
	Stem    string    `json:"stem"`
	Ext     string    `json:"ext"` // includes the leading dot, "" if none
	Size    int64     `json:"size"`
	ModTime time.Time `json:"modified"`
	// Created approximates the creation time with the modification
	// time: the portable stat result carries no birth time.
	Created time.Time `json:"created"`
	IsDir   bool      `json:"is_dir"`
}

// NewFileInfo builds a snapshot for path from an already obtained stat
// result.
func NewFileInfo(path string, info os.FileInfo) FileInfo {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	name := info.Name()
	ext := ""
	if !info.IsDir() {
		ext = filepath.Ext(name)
		// a name whose only dot is leading, like ".gitignore", is all
		// stem and has no extension
		if ext == name {
			ext = ""
		}
	}
	return FileInfo{
		Path:    abs,
		Name:    name,
		Stem:    strings.TrimSuffix(name, ext),
		Ext:     ext,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Created: info.ModTime(),
		IsDir:   info.IsDir(),
	}
}

// StatFileInfo stats path and builds a snapshot from the result.
func StatFileInfo(path string) (FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return FileInfo{}, err
	}
	return NewFileInfo(path, info), nil
}

package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	FILE_EXT_CPG = ".cpg"

	UTF8  = "UTF8"
	UTF_8 = "UTF-8"
)

func GetUniqSubDir(parentPath string) (path string, err error) {
	path = filepath.Join(parentPath, uuid.NewString())
	err = os.Mkdir(path, os.ModePerm)
	return
}

func GetFilenameWithoutExt(path string) (name string) {
	name = filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(path))
	return
}

// ListFilesWithExt returns the sorted paths of regular files under dir with
// one of the given extensions (case-insensitive).
func ListFilesWithExt(dir string, exts ...string) (paths []string, err error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range exts {
			if ext == want {
				paths = append(paths, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	return
}

// ReadCpgEncoding reads the sidecar .cpg of a shapefile; empty when absent.
func ReadCpgEncoding(shp string) (enc string) {
	cpg := strings.TrimSuffix(shp, filepath.Ext(shp)) + FILE_EXT_CPG
	data, err := os.ReadFile(cpg)
	if err != nil || len(data) == 0 {
		return
	}
	enc = strings.ToUpper(strings.TrimSpace(B2S(data)))
	if enc == UTF8 {
		enc = UTF_8
	}
	return
}

package utils

import (
	"path/filepath"
	"strings"
)

func GetPathInfo(relPath string) (fullPath string, parentDir string, err error) {
	// Convert to absolute path (resolves ../../ and cleans the path)
	fullPath, err = filepath.Abs(relPath)
	if err != nil {
		return "", "", err
	}

	parentDir = filepath.Dir(fullPath)

	return fullPath, parentDir, nil
}

// OutputPath returns where the compiled form of src goes: src with its
// extension replaced by ext, inside outDir when outDir is set and beside src
// otherwise.
func OutputPath(src, outDir, ext string) (string, error) {
	fullPath, parentDir, err := GetPathInfo(src)
	if err != nil {
		return "", err
	}

	base := strings.TrimSuffix(filepath.Base(fullPath), filepath.Ext(fullPath)) + ext
	if outDir == "" {
		return filepath.Join(parentDir, base), nil
	}
	return filepath.Join(outDir, base), nil
}

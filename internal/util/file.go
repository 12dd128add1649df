package util

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// WriteFileAtomic replaces the file at path with data, creating missing
// parent directories. Readers never observe a partially written file.
func WriteFileAtomic(path string, data []byte) error {
	parentDir := filepath.Dir(path)
	_, err := os.Stat(parentDir)
	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(parentDir, 0755)
		if err != nil {
			return err
		}
	}
	return atomic.WriteFile(path, bytes.NewReader(data))
}

package fs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/dragnet"
)

// LoadModel reads a JSON weight model file.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot
// be decoded.
func LoadModel(path string) (*dragnet.WeightModel, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, dragnet.Errorf(dragnet.ENOTFOUND, "model file %q not found", path)
	}
	if err != nil {
		return nil, err
	}

	var m dragnet.WeightModel
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, dragnet.Errorf(dragnet.EINVALID, "invalid model file %q: %v", path, err)
	}
	return &m, nil
}

// SaveModel writes m as JSON with atomic semantics: the model is written
// to a temporary file in the same directory, then renamed over path.
func SaveModel(path string, m *dragnet.WeightModel) error {
	if m == nil {
		return dragnet.Errorf(dragnet.EINVALID, "model required")
	}
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

package session

import (
	"io/ioutil"
	"os"
)

// Keeper persists the single serialized session value. Concurrent writers
// (e.g. two processes sharing a session file) are not coordinated; the last
// writer wins.
type Keeper interface {
	Read() (string, error)
	Write(value string) error
	Clear() error
}

type fileKeeper struct {
	path string
}

// NewFileKeeper returns a Keeper backed by a single file at path.
func NewFileKeeper(path string) Keeper {
	return &fileKeeper{path: path}
}

func (k *fileKeeper) Read() (string, error) {
	b, err := ioutil.ReadFile(k.path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (k *fileKeeper) Write(value string) error {
	return ioutil.WriteFile(k.path, []byte(value), 0600)
}

func (k *fileKeeper) Clear() error {
	if err := os.Remove(k.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

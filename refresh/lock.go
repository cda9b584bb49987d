package refresh

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

type fileLock struct {
	path string
}

// acquireLock creates path exclusively. A lock left by a crashed run must be
// removed by hand.
func acquireLock(path string) (*fileLock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: %s exists", ErrRefreshInProgress, path)
		}
		return nil, fmt.Errorf("create lock: %w", err)
	}

	_, werr := f.WriteString(strconv.Itoa(os.Getpid()))
	cerr := f.Close()
	if err := errors.Join(werr, cerr); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("write lock: %w", err)
	}

	return &fileLock{path: path}, nil
}

func (l *fileLock) release() error {
	return os.Remove(l.path)
}

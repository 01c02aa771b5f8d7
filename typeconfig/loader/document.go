package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/gofrs/flock"
)

// ReadDocument reads a configuration document.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return string(data), nil
}

// HealFunc rebuilds a document, such as
// [typeconfig.TypeConfig.HealConfig] with its type tag setting bound.
type HealFunc func(doc string) string

// HealFile rewrites the document at path with heal. An exclusive advisory
// lock on the document itself is held from read to write, so concurrent
// healers do not interleave and no lock file is left behind. It returns the
// original and healed documents. The file is only written when the content
// changed, and keeps its permissions. A missing document is not created.
func HealFile(path string, heal HealFunc) (string, string, error) {
	lock := flock.New(path, flock.SetFlag(os.O_RDWR))

	err := lock.Lock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", "", fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		return "", "", fmt.Errorf("locking %s: %w", path, err)
	}

	defer func() {
		unlockErr := lock.Close()
		if unlockErr != nil {
			slog.Warn("unlock document",
				slog.String("path", path),
				slog.Any("error", unlockErr),
			)
		}
	}()

	info, err := os.Stat(path)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	before, err := ReadDocument(path)
	if err != nil {
		return "", "", err
	}

	after := heal(before)
	if after == before {
		return before, after, nil
	}

	err = os.WriteFile(path, []byte(after), info.Mode().Perm())
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	slog.Debug("healed document", slog.String("path", path))

	return before, after, nil
}

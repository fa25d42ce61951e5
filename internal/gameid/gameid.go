// Package gameid reads the game identifier stored at the start of a disc image.
package gameid

import (
	"errors"
	"fmt"
	"io"

	"github.com/mydehq/gcdir/internal/matcher"
	"github.com/mydehq/gcdir/internal/types"
	"github.com/spf13/afero"
)

// ID is the 6-character game code from a disc header (e.g. "GALE01")
type ID string

func (id ID) String() string {
	return string(id)
}

// Read opens the image at path and decodes its first 6 bytes as the game ID.
// Images shorter than 6 bytes fail with io.ErrUnexpectedEOF.
func Read(fsys afero.Fs, path string) (ID, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	buf := make([]byte, matcher.IDLength)
	if _, err := io.ReadFull(f, buf); err != nil {
		return "", fmt.Errorf("failed to read game ID from %s: %w", path, err)
	}

	id, err := Decode(buf)
	if err != nil {
		var de types.ErrDecode
		if errors.As(err, &de) {
			de.Path = path
			return "", de
		}
		return "", err
	}
	return id, nil
}

// Decode interprets raw header bytes as an ASCII game ID
func Decode(raw []byte) (ID, error) {
	for i, b := range raw {
		if b > 0x7f {
			return "", types.ErrDecode{Offset: i, Byte: b}
		}
	}
	return ID(raw), nil
}

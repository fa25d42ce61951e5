package normalizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mydehq/gcdir/internal/gameid"
	"github.com/mydehq/gcdir/internal/matcher"
	"github.com/spf13/afero"
)

// Kind classifies a child of the game directory
type Kind int

const (
	KindOther Kind = iota
	KindLooseImage
	KindGameFolder
)

func (k Kind) String() string {
	switch k {
	case KindLooseImage:
		return "image"
	case KindGameFolder:
		return "folder"
	default:
		return "other"
	}
}

// Action is what a pass will do with an entry
type Action int

const (
	ActionIgnore Action = iota
	ActionNone          // already conformant
	ActionRenameFolder
	ActionAdoptImage
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "ok"
	case ActionRenameFolder:
		return "rename"
	case ActionAdoptImage:
		return "adopt"
	default:
		return "ignore"
	}
}

// Entry is one classified child of the game directory
type Entry struct {
	Path   string
	Name   string
	Kind   Kind
	Action Action
	Hidden bool

	// ID is the game ID taken from the name or read from the image header.
	// Empty for ignored entries.
	ID string
	// Target is the path of the game folder once the entry is normalized
	Target string
}

// Scan classifies every child of root without changing anything.
// Headers are read for entries whose name does not carry an ID yet.
func (n *Normalizer) Scan(ctx context.Context, root string) ([]Entry, error) {
	if err := n.CheckRoot(root); err != nil {
		return nil, err
	}
	return n.snapshot(ctx, root)
}

// snapshot lists root once, sorted by name, and plans every entry.
// Entries created later in the same pass are never part of the listing.
func (n *Normalizer) snapshot(ctx context.Context, root string) ([]Entry, error) {
	infos, err := afero.ReadDir(n.fs, root)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e, err := n.classify(root, info)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (n *Normalizer) classify(root string, info os.FileInfo) (Entry, error) {
	e := Entry{
		Name: info.Name(),
		Path: filepath.Join(root, info.Name()),
	}

	if strings.HasPrefix(e.Name, ".") {
		e.Hidden = true
		return e, nil
	}

	// Follow symlinks; a dangling link is left alone
	if info.Mode()&os.ModeSymlink != 0 {
		resolved, err := n.fs.Stat(e.Path)
		if err != nil {
			return e, nil
		}
		info = resolved
	}

	if info.IsDir() {
		return n.classifyFolder(root, e)
	}
	return n.classifyFile(root, e)
}

func (n *Normalizer) classifyFolder(root string, e Entry) (Entry, error) {
	gamePath := filepath.Join(e.Path, GameFile)
	gi, err := n.fs.Stat(gamePath)
	if err != nil || gi.IsDir() {
		// Not a game folder
		return e, nil
	}
	e.Kind = KindGameFolder

	if id, ok := matcher.MatchID(e.Name); ok {
		e.Action = ActionNone
		e.ID = id
		e.Target = e.Path
		return e, nil
	}

	id, err := gameid.Read(n.fs, gamePath)
	if err != nil {
		return e, err
	}
	e.Action = ActionRenameFolder
	e.ID = id.String()
	e.Target = filepath.Join(root, matcher.FolderName(e.Name, e.ID))
	return e, nil
}

func (n *Normalizer) classifyFile(root string, e Entry) (Entry, error) {
	ext := matcher.Ext(e.Name)
	if ext != ExtISO && ext != ExtGCM {
		return e, nil
	}
	e.Kind = KindLooseImage
	e.Action = ActionAdoptImage

	stem := matcher.Stem(e.Name)
	if id, ok := matcher.MatchID(stem); ok {
		// Stem is already "<title> [<id>]"; reuse it instead of appending a second ID
		e.ID = id
		e.Target = filepath.Join(root, stem)
		return e, nil
	}

	id, err := gameid.Read(n.fs, e.Path)
	if err != nil {
		return e, err
	}
	e.ID = id.String()
	e.Target = filepath.Join(root, matcher.FolderName(stem, e.ID))
	return e, nil
}

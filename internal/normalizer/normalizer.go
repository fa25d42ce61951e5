// Package normalizer reorganizes a directory of disc images into one
// "<Title> [<ID>]/game.iso" folder per game.
//
// A pass looks only at the immediate children of the game directory. The
// listing is taken and planned before anything is changed, so folders
// created during the pass are never revisited. Existing entries are never
// overwritten; a clash aborts the pass with types.ErrConflict.
package normalizer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/mydehq/gcdir/internal/matcher"
	"github.com/mydehq/gcdir/internal/types"
	"github.com/spf13/afero"
)

const (
	// GameFile is the fixed name of the image inside a game folder
	GameFile = "game.iso"

	ExtISO = ".iso"
	ExtGCM = ".gcm"
)

// OpKind identifies a filesystem mutation
type OpKind string

const (
	OpRenameFolder OpKind = "rename-folder"
	OpRenameFile   OpKind = "rename-file"
	OpCreateFolder OpKind = "create-folder"
	OpMoveFile     OpKind = "move-file"
)

// Operation records a mutation applied during a pass
type Operation struct {
	Kind   OpKind
	Source string
	Target string
}

// Normalizer applies the game folder layout to a directory
type Normalizer struct {
	fs     afero.Fs
	events types.EventHandler
}

// Option configures a Normalizer
type Option func(*Normalizer)

// WithEvents sets the handler that receives progress events
func WithEvents(h types.EventHandler) Option {
	return func(n *Normalizer) {
		n.events = h
	}
}

// New creates a Normalizer operating on fsys
func New(fsys afero.Fs, opts ...Option) *Normalizer {
	n := &Normalizer{fs: fsys}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Normalize runs one pass over root and returns the operations it applied.
// On error the operations applied before the failure are still returned.
func (n *Normalizer) Normalize(ctx context.Context, root string) ([]Operation, error) {
	if err := n.CheckRoot(root); err != nil {
		return nil, err
	}

	n.emit(types.EventScan, fmt.Sprintf("Scanning directory: %s", root), root)
	entries, err := n.snapshot(ctx, root)
	if err != nil {
		return nil, err
	}

	p := &pass{Normalizer: n, root: root}
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return p.ops, err
		}

		switch e.Action {
		case ActionRenameFolder:
			err = p.renameFolder(e)
		case ActionAdoptImage:
			err = p.adoptImage(e)
		case ActionNone:
			n.emit(types.EventSkip, fmt.Sprintf("Already normalized: %s", e.Name), e.Path)
		default:
			n.emit(types.EventSkip, fmt.Sprintf("Ignoring: %s", e.Name), e.Path)
		}
		if err != nil {
			return p.ops, err
		}
	}
	return p.ops, nil
}

// CheckRoot fails with ErrInvalidRoot unless root is an existing directory
func (n *Normalizer) CheckRoot(root string) error {
	info, err := n.fs.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return types.ErrInvalidRoot{Path: root, Reason: "path does not exist"}
		}
		return types.ErrInvalidRoot{Path: root, Reason: err.Error()}
	}
	if !info.IsDir() {
		return types.ErrInvalidRoot{Path: root, Reason: "not a directory"}
	}
	return nil
}

func (n *Normalizer) emit(t types.EventType, msg, path string) {
	if n.events != nil {
		n.events(types.Event{Type: t, Message: msg, Path: path})
	}
}

// pass holds the state of a single Normalize call
type pass struct {
	*Normalizer
	root string
	ops  []Operation
}

func (p *pass) renameFolder(e Entry) error {
	p.emit(types.EventRename, fmt.Sprintf("Renaming game folder: %s → %s", e.Name, filepath.Base(e.Target)), e.Path)
	return p.rename(OpRenameFolder, e.Path, e.Target)
}

func (p *pass) adoptImage(e Entry) error {
	p.emit(types.EventFound, fmt.Sprintf("Found game file: %s", e.Name), e.Path)

	src := e.Path
	if matcher.Ext(e.Name) == ExtGCM {
		isoName := matcher.Stem(e.Name) + ExtISO
		isoPath := filepath.Join(p.root, isoName)
		p.emit(types.EventRename, fmt.Sprintf("Renaming game file: %s → %s", e.Name, isoName), e.Path)
		if err := p.rename(OpRenameFile, src, isoPath); err != nil {
			return err
		}
		src = isoPath
	}

	if err := p.ensureFolder(e.Target); err != nil {
		return err
	}

	dst := filepath.Join(e.Target, GameFile)
	rel, err := filepath.Rel(p.root, dst)
	if err != nil {
		rel = dst
	}
	p.emit(types.EventMove, fmt.Sprintf("Moving game file: %s → %s", filepath.Base(src), filepath.ToSlash(rel)), src)
	return p.rename(OpMoveFile, src, dst)
}

// ensureFolder creates dir unless it already exists as a directory
func (p *pass) ensureFolder(dir string) error {
	info, err := p.fs.Stat(dir)
	switch {
	case err == nil && info.IsDir():
		p.emit(types.EventSkip, fmt.Sprintf("Using existing game folder: %s", filepath.Base(dir)), dir)
		return nil
	case err == nil:
		return types.ErrConflict{Source: GameFile, Target: dir}
	case !errors.Is(err, fs.ErrNotExist):
		return types.ErrOperation{Op: "stat", Source: dir, Err: err}
	}

	p.emit(types.EventCreate, fmt.Sprintf("Creating game folder: %s", filepath.Base(dir)), dir)
	if err := p.fs.Mkdir(dir, 0o755); err != nil {
		return types.ErrOperation{Op: "mkdir", Source: dir, Err: err}
	}
	p.ops = append(p.ops, Operation{Kind: OpCreateFolder, Target: dir})
	return nil
}

// rename moves src to dst, refusing to replace anything already at dst
func (p *pass) rename(kind OpKind, src, dst string) error {
	exists, err := afero.Exists(p.fs, dst)
	if err != nil {
		return types.ErrOperation{Op: "stat", Source: dst, Err: err}
	}
	if exists {
		return types.ErrConflict{Source: src, Target: dst}
	}
	if err := p.fs.Rename(src, dst); err != nil {
		return types.ErrOperation{Op: "rename", Source: src, Target: dst, Err: err}
	}
	p.ops = append(p.ops, Operation{Kind: kind, Source: src, Target: dst})
	return nil
}

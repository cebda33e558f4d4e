package saves

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/Darkkkking/ai-rpg-adventure/internal/entities"
	rpgerr "github.com/Darkkkking/ai-rpg-adventure/internal/errors"
)

const saveExt = ".json"

// FileRepository writes each slot to <dir>/<slot>.json
type FileRepository struct {
	dir string
}

// NewFileRepository creates the save directory if needed
func NewFileRepository(dir string) (*FileRepository, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, rpgerr.InvalidArgument("save directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create save directory: %w", err)
	}
	return &FileRepository{dir: filepath.Clean(dir)}, nil
}

func (r *FileRepository) path(slot string) string {
	return filepath.Join(r.dir, slot+saveExt)
}

func (r *FileRepository) Save(ctx context.Context, slot string, state *entities.GameState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateSave(slot, state); err != nil {
		return err
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal game state: %w", err)
	}

	// Replaced via rename; readers never see a partial file
	tmp, err := os.CreateTemp(r.dir, slot+"-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp save: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write save: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close save: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path(slot)); err != nil {
		return fmt.Errorf("failed to replace save: %w", err)
	}

	return nil
}

func (r *FileRepository) Load(ctx context.Context, slot string) (*entities.GameState, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateSlot(slot); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read save: %w", err)
	}

	var state entities.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeInternal, "save file is corrupted").
			WithMeta("slot", slot)
	}
	return &state, nil
}

func (r *FileRepository) Clear(ctx context.Context, slot string) error {
	if err := ValidateSlot(slot); err != nil {
		return err
	}

	err := os.Remove(r.path(slot))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete save: %w", err)
	}
	return nil
}

func (r *FileRepository) List(ctx context.Context) ([]*Summary, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list saves: %w", err)
	}

	summaries := make([]*Summary, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != saveExt {
			continue
		}
		slot := strings.TrimSuffix(name, saveExt)
		if ValidateSlot(slot) != nil {
			continue
		}

		state, err := r.Load(ctx, slot)
		if err != nil {
			log.Printf("FileRepository: skipping unreadable save %s: %v", name, err)
			continue
		}
		summaries = append(summaries, summarize(slot, state))
	}
	slices.SortFunc(summaries, func(a, b *Summary) int { return cmp.Compare(a.Slot, b.Slot) })

	return summaries, nil
}

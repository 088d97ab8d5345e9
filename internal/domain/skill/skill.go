package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	LevelMin = 1
	LevelMax = 5
)

type Skill struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Level     int       `json:"level"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrSkillNotFound = errors.New("skill not found")

// ClampLevel forces a proficiency value into [LevelMin, LevelMax]. The
// public page renders the level as a fixed 5-slot indicator, so out-of-range
// input is corrected at the editing boundary rather than rejected.
func ClampLevel(level int) int {
	if level < LevelMin {
		return LevelMin
	}
	if level > LevelMax {
		return LevelMax
	}
	return level
}

func (s *Skill) Validate() error {
	if s.Category == "" {
		return errors.New("category is required")
	}
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Level < LevelMin || s.Level > LevelMax {
		return errors.New("level must be between 1 and 5")
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*Skill, error)
	// ListByOwner returns skills ordered by category, then creation time.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
}

package team

import "errors"

var (
	ErrNotFound = errors.New("team not found")
	// ErrConflict means the name or slug is already taken.
	ErrConflict = errors.New("team already exists")
	// ErrInUse means games still reference the team.
	ErrInUse = errors.New("team is referenced by games")
)

const (
	NameMinLength        = 3
	NameMaxLength        = 128
	DescriptionMaxLength = 1024
)

// Team is a club that plays games. Slug is derived from Name when the team is
// created and is only regenerated by an explicit resync.
type Team struct {
	ID          int64
	Name        string
	Slug        string
	Description string
}

// Patch carries the fields of a partial update; nil means unchanged.
type Patch struct {
	Name        *string
	Description *string
}

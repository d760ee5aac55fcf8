package entity

import (
	"github.com/google/uuid"
)

type Restaurant struct {
	Base
	Name       string     `db:"name"`
	CoverImage string     `db:"cover_image"`
	Address    string     `db:"address"`
	IsPromoted bool       `db:"is_promoted"`
	OwnerID    uuid.UUID  `db:"owner_id"`
	CategoryID *uuid.UUID `db:"category_id"`
}

package specification

import "gorm.io/gorm"

// OwnedBy restricts to sessions belonging to one user.
type OwnedBy struct {
	UserID string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// ActiveOnly hides soft-deleted sessions. Every read path applies this;
// delete intentionally does not, so it stays idempotent.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

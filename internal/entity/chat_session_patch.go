package entity

// SessionPatch is the typed partial update accepted by the session PATCH
// operation. Nil fields are left untouched. Messages, ownership and the
// isActive flag are deliberately not patchable; they have dedicated paths.
type SessionPatch struct {
	Title    *string
	Language *string
	Category *string
	Tags     []string
}

func (p *SessionPatch) IsEmpty() bool {
	return p == nil || (p.Title == nil && p.Language == nil && p.Category == nil && p.Tags == nil)
}

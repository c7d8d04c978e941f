package domain

import "time"

const (
	RoleStudent   = "Student"
	RoleModerator = "Moderator"
	RoleAdmin     = "Admin"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	DisplayName  string    `json:"displayName"`
	PhotoURL     string    `json:"photoURL,omitempty"`
	Role         string    `gorm:"type:varchar(20);not null;default:Student" json:"role"`
	ModeratorFor string    `gorm:"type:text" json:"moderatorFor,omitempty"` // comma separated institutions
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SettableRole reports whether a role may be assigned through the
// role-update route. Admin is not self-assignable there.
func SettableRole(role string) bool {
	return role == RoleStudent || role == RoleModerator
}

package models

import "time"

// Role group names. Both groups are created once at startup; request
// handling never creates groups on the fly.
const (
	GroupManager      = "Manager"
	GroupDeliveryCrew = "DeliveryCrew"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"unique" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	IsStaff      bool      `json:"-"` // admin flag
	Groups       []Group   `gorm:"many2many:user_groups" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Group struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Users []User `gorm:"many2many:user_groups" json:"-"`
}

// InGroup reports whether the user belongs to the named group. Groups must be
// preloaded.
func (u *User) InGroup(name string) bool {
	for _, g := range u.Groups {
		if g.Name == name {
			return true
		}
	}
	return false
}

// IsCustomer reports whether the user holds no elevated role. A customer is
// an authenticated user that belongs to no group.
func (u *User) IsCustomer() bool {
	return len(u.Groups) == 0
}

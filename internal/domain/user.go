package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values recognized by the authorization layer. Any value other than
// RoleAdmin is treated as a regular user.
const RoleAdmin = "admin"

// User is an account created through self-registration. Email is the unique
// key; the store assigns the ID on insert.
type User struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email string             `bson:"email"          json:"email"`
	Role  string             `bson:"role,omitempty" json:"role,omitempty"`
}

// IsAdmin reports whether the user carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

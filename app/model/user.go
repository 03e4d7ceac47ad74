package model

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is a caller's fixed category, assigned at registration and never
// changed afterwards.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
)

// ParseRole normalizes and validates a role string coming from a token claim.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleEmployer:
		return RoleEmployer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is the account record referenced by internships and applications.
// Registration and login live in a separate identity service; this backend
// only reads users for profile joins and seeds them for local development.
type User struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Role         Role               `json:"role" bson:"role"`
	Company      string             `json:"company,omitempty" bson:"company,omitempty"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// UserProfile is the public slice of a user embedded in joined responses.
// Internship listings expose name+company of the poster; application listings
// expose name+email of the applicant.
type UserProfile struct {
	ID      primitive.ObjectID `json:"id"`
	Name    string             `json:"name"`
	Email   string             `json:"email,omitempty"`
	Company string             `json:"company,omitempty"`
}

// AuthUser is the request-scoped identity resolved by the JWT middleware.
// It is the only authentication state in the system; nothing about the
// caller outlives the request.
type AuthUser struct {
	ID   primitive.ObjectID
	Role Role
}

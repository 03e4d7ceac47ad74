package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InternshipType string

const (
	TypeFullTime InternshipType = "full-time"
	TypePartTime InternshipType = "part-time"
	TypeRemote   InternshipType = "remote"
)

func ValidInternshipType(t InternshipType) bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeRemote:
		return true
	}
	return false
}

type InternshipStatus string

const (
	InternshipActive InternshipStatus = "active"
	InternshipClosed InternshipStatus = "closed"
)

// Internship is a posted opportunity owned by an employer. The applications
// for an internship are derived by querying the applications collection, not
// stored as a back-reference on the document.
type Internship struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title        string             `json:"title" bson:"title"`
	Company      string             `json:"company" bson:"company"`
	Location     string             `json:"location" bson:"location"`
	Description  string             `json:"description" bson:"description"`
	Requirements []string           `json:"requirements" bson:"requirements"`
	Duration     string             `json:"duration" bson:"duration"`
	Stipend      string             `json:"stipend" bson:"stipend"`
	Type         InternshipType     `json:"type" bson:"type"`
	PostedBy     primitive.ObjectID `json:"postedBy" bson:"postedBy"`
	Status       InternshipStatus   `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
}

// InternshipDetail is an internship with the poster's public profile joined in.
type InternshipDetail struct {
	Internship
	Poster *UserProfile `json:"poster,omitempty"`
}

// InternshipRequest carries the fields an employer submits when creating a
// posting. All fields except Type are required.
type InternshipRequest struct {
	Title        string         `json:"title"`
	Company      string         `json:"company"`
	Location     string         `json:"location"`
	Description  string         `json:"description"`
	Requirements []string       `json:"requirements"`
	Duration     string         `json:"duration"`
	Stipend      string         `json:"stipend"`
	Type         InternshipType `json:"type"`
}

// InternshipPatch carries the optional fields of an update. Nil and empty
// values are left untouched.
type InternshipPatch struct {
	Title        *string           `json:"title"`
	Company      *string           `json:"company"`
	Location     *string           `json:"location"`
	Description  *string           `json:"description"`
	Requirements []string          `json:"requirements"`
	Duration     *string           `json:"duration"`
	Stipend      *string           `json:"stipend"`
	Type         *InternshipType   `json:"type"`
	Status       *InternshipStatus `json:"status"`
}

// EmployerStats is the dashboard aggregate for one employer.
type EmployerStats struct {
	TotalInternships   int64               `json:"totalInternships"`
	ActiveInternships  int64               `json:"activeInternships"`
	RecentApplications []ApplicationDetail `json:"recentApplications"`
}

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "pending"
	StatusReviewed ApplicationStatus = "reviewed"
	StatusAccepted ApplicationStatus = "accepted"
	StatusRejected ApplicationStatus = "rejected"
)

func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether a status ends the review flow. Re-transitioning
// out of a terminal status is rejected only when strict status flow is
// enabled in the config.
func (s ApplicationStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// Application is a student's submission against one internship. At most one
// application exists per (internship, applicant) pair. The resume field is a
// path into the blob store, never the file itself.
type Application struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	InternshipID primitive.ObjectID `json:"internshipId" bson:"internship"`
	ApplicantID  primitive.ObjectID `json:"applicantId" bson:"applicant"`
	Resume       string             `json:"resume" bson:"resume"`
	CoverLetter  string             `json:"coverLetter" bson:"coverLetter"`
	Status       ApplicationStatus  `json:"status" bson:"status"`
	AppliedAt    time.Time          `json:"appliedAt" bson:"appliedAt"`
}

// ApplicationDetail is an application with its referenced documents joined
// in: the internship for student-facing lists, the applicant profile for
// employer-facing lists.
type ApplicationDetail struct {
	Application
	Internship *Internship  `json:"internship,omitempty"`
	Applicant  *UserProfile `json:"applicant,omitempty"`
}

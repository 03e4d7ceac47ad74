package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"internlink/app/model"
	"internlink/app/repository"
	"internlink/helper"
)

// recentApplicationLimit caps the applications section of the stats payload.
const recentApplicationLimit = 5

type InternshipService interface {
	ListAll(ctx context.Context) ([]model.InternshipDetail, error)
	ListMine(ctx context.Context, employerID primitive.ObjectID) ([]model.Internship, error)
	Stats(ctx context.Context, employerID primitive.ObjectID) (*model.EmployerStats, error)
	GetByID(ctx context.Context, id string) (*model.InternshipDetail, error)
	Create(ctx context.Context, employerID primitive.ObjectID, req model.InternshipRequest) (*model.Internship, error)
	Update(ctx context.Context, employerID primitive.ObjectID, id string, patch model.InternshipPatch) (*model.Internship, error)
	Delete(ctx context.Context, employerID primitive.ObjectID, id string) error
}

type internshipService struct {
	internships  repository.InternshipRepository
	applications repository.ApplicationRepository
	users        repository.UserRepository
}

func NewInternshipService(
	internships repository.InternshipRepository,
	applications repository.ApplicationRepository,
	users repository.UserRepository,
) InternshipService {
	return &internshipService{
		internships:  internships,
		applications: applications,
		users:        users,
	}
}

func (s *internshipService) ListAll(ctx context.Context) ([]model.InternshipDetail, error) {
	internships, err := s.internships.FindAll(ctx)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load internships", err)
	}
	return s.joinPosters(ctx, internships)
}

func (s *internshipService) ListMine(ctx context.Context, employerID primitive.ObjectID) ([]model.Internship, error) {
	internships, err := s.internships.FindByPoster(ctx, employerID)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load internships", err)
	}
	return internships, nil
}

func (s *internshipService) Stats(ctx context.Context, employerID primitive.ObjectID) (*model.EmployerStats, error) {
	total, err := s.internships.CountByPoster(ctx, employerID)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load stats", err)
	}
	active, err := s.internships.CountActiveByPoster(ctx, employerID)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load stats", err)
	}

	recent, err := s.recentApplications(ctx, employerID)
	if err != nil {
		return nil, err
	}

	return &model.EmployerStats{
		TotalInternships:   total,
		ActiveInternships:  active,
		RecentApplications: recent,
	}, nil
}

// recentApplications collects the newest applications across every internship
// owned by the employer, with applicant profiles joined in.
func (s *internshipService) recentApplications(ctx context.Context, employerID primitive.ObjectID) ([]model.ApplicationDetail, error) {
	owned, err := s.internships.FindByPoster(ctx, employerID)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load stats", err)
	}

	byID := make(map[primitive.ObjectID]model.Internship, len(owned))
	for _, internship := range owned {
		byID[internship.ID] = internship
	}

	all, err := s.applications.FindAll(ctx)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load stats", err)
	}

	recent := []model.ApplicationDetail{}
	applicantIDs := []primitive.ObjectID{}
	for _, app := range all {
		if _, ok := byID[app.InternshipID]; !ok {
			continue
		}
		recent = append(recent, model.ApplicationDetail{Application: app})
		applicantIDs = append(applicantIDs, app.ApplicantID)
		if len(recent) == recentApplicationLimit {
			break
		}
	}

	profiles, err := s.users.FindByIDs(ctx, applicantIDs)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load stats", err)
	}
	for i := range recent {
		internship := byID[recent[i].InternshipID]
		recent[i].Internship = &internship
		if user, ok := profiles[recent[i].ApplicantID]; ok {
			recent[i].Applicant = &model.UserProfile{ID: user.ID, Name: user.Name, Email: user.Email}
		}
	}
	return recent, nil
}

func (s *internshipService) GetByID(ctx context.Context, id string) (*model.InternshipDetail, error) {
	internshipID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, helper.NewError(helper.CodeNotFound, "internship not found", err)
	}

	internship, err := s.internships.FindByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, helper.NewError(helper.CodeNotFound, "internship not found", nil)
		}
		return nil, helper.NewError(helper.CodeInternal, "could not load internship", err)
	}

	details, err := s.joinPosters(ctx, []model.Internship{*internship})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

func (s *internshipService) Create(ctx context.Context, employerID primitive.ObjectID, req model.InternshipRequest) (*model.Internship, error) {
	if err := validateInternshipRequest(req); err != nil {
		return nil, err
	}
	if req.Type == "" {
		req.Type = model.TypeFullTime
	}
	if !model.ValidInternshipType(req.Type) {
		return nil, helper.NewError(helper.CodeValidation, "unknown internship type", nil)
	}

	internship := &model.Internship{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Duration:     req.Duration,
		Stipend:      req.Stipend,
		Type:         req.Type,
		PostedBy:     employerID,
		Status:       model.InternshipActive,
		CreatedAt:    time.Now(),
	}

	id, err := s.internships.Create(ctx, internship)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not create internship", err)
	}
	internship.ID = id
	return internship, nil
}

func (s *internshipService) Update(ctx context.Context, employerID primitive.ObjectID, id string, patch model.InternshipPatch) (*model.Internship, error) {
	internship, err := s.ownedInternship(ctx, employerID, id)
	if err != nil {
		return nil, err
	}

	set, err := patchFields(patch)
	if err != nil {
		return nil, err
	}
	if len(set) == 0 {
		return internship, nil
	}

	updated, err := s.internships.Update(ctx, internship.ID, set)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, helper.NewError(helper.CodeNotFound, "internship not found", nil)
		}
		return nil, helper.NewError(helper.CodeInternal, "could not update internship", err)
	}
	return updated, nil
}

// Delete removes an internship and cascades to its applications, so no
// application is left referencing a posting that no longer exists.
func (s *internshipService) Delete(ctx context.Context, employerID primitive.ObjectID, id string) error {
	internship, err := s.ownedInternship(ctx, employerID, id)
	if err != nil {
		return err
	}

	if err := s.internships.Delete(ctx, internship.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return helper.NewError(helper.CodeNotFound, "internship not found", nil)
		}
		return helper.NewError(helper.CodeInternal, "could not delete internship", err)
	}
	if _, err := s.applications.DeleteByInternship(ctx, internship.ID); err != nil {
		return helper.NewError(helper.CodeInternal, "could not delete applications", err)
	}
	return nil
}

// ownedInternship resolves an id and enforces the single ownership rule:
// only the employer whose id equals postedBy may touch the record.
func (s *internshipService) ownedInternship(ctx context.Context, employerID primitive.ObjectID, id string) (*model.Internship, error) {
	internshipID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, helper.NewError(helper.CodeNotFound, "internship not found", err)
	}

	internship, err := s.internships.FindByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, helper.NewError(helper.CodeNotFound, "internship not found", nil)
		}
		return nil, helper.NewError(helper.CodeInternal, "could not load internship", err)
	}
	if internship.PostedBy != employerID {
		return nil, helper.NewError(helper.CodeForbidden, "internship belongs to another employer", nil)
	}
	return internship, nil
}

func (s *internshipService) joinPosters(ctx context.Context, internships []model.Internship) ([]model.InternshipDetail, error) {
	posterIDs := make([]primitive.ObjectID, 0, len(internships))
	for _, internship := range internships {
		posterIDs = append(posterIDs, internship.PostedBy)
	}
	profiles, err := s.users.FindByIDs(ctx, posterIDs)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load posters", err)
	}

	details := make([]model.InternshipDetail, 0, len(internships))
	for _, internship := range internships {
		detail := model.InternshipDetail{Internship: internship}
		if user, ok := profiles[internship.PostedBy]; ok {
			detail.Poster = &model.UserProfile{ID: user.ID, Name: user.Name, Company: user.Company}
		}
		details = append(details, detail)
	}
	return details, nil
}

func validateInternshipRequest(req model.InternshipRequest) error {
	missing := []string{}
	if strings.TrimSpace(req.Title) == "" {
		missing = append(missing, "title")
	}
	if strings.TrimSpace(req.Company) == "" {
		missing = append(missing, "company")
	}
	if strings.TrimSpace(req.Location) == "" {
		missing = append(missing, "location")
	}
	if strings.TrimSpace(req.Description) == "" {
		missing = append(missing, "description")
	}
	if len(req.Requirements) == 0 {
		missing = append(missing, "requirements")
	}
	if strings.TrimSpace(req.Duration) == "" {
		missing = append(missing, "duration")
	}
	if strings.TrimSpace(req.Stipend) == "" {
		missing = append(missing, "stipend")
	}
	if len(missing) > 0 {
		return helper.NewError(helper.CodeValidation, "missing required fields: "+strings.Join(missing, ", "), nil)
	}
	return nil
}

func patchFields(patch model.InternshipPatch) (bson.M, error) {
	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Requirements != nil {
		set["requirements"] = patch.Requirements
	}
	if patch.Duration != nil {
		set["duration"] = *patch.Duration
	}
	if patch.Stipend != nil {
		set["stipend"] = *patch.Stipend
	}
	if patch.Type != nil {
		if !model.ValidInternshipType(*patch.Type) {
			return nil, helper.NewError(helper.CodeValidation, "unknown internship type", nil)
		}
		set["type"] = *patch.Type
	}
	if patch.Status != nil {
		if *patch.Status != model.InternshipActive && *patch.Status != model.InternshipClosed {
			return nil, helper.NewError(helper.CodeValidation, "unknown internship status", nil)
		}
		set["status"] = *patch.Status
	}
	return set, nil
}

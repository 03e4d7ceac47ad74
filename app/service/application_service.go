package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"internlink/app/model"
	"internlink/app/repository"
	"internlink/app/storage"
	"internlink/helper"
)

// SubmitInput carries everything a student sends when applying: the target
// posting, the cover letter, and the raw resume bytes read from the
// multipart upload.
type SubmitInput struct {
	InternshipID string
	CoverLetter  string
	ResumeName   string
	Resume       []byte
}

type ApplicationService interface {
	Submit(ctx context.Context, applicantID primitive.ObjectID, input SubmitInput) (*model.Application, error)
	ListMine(ctx context.Context, applicantID primitive.ObjectID) ([]model.ApplicationDetail, error)
	ListForInternship(ctx context.Context, employerID primitive.ObjectID, internshipID string) ([]model.ApplicationDetail, error)
	ListForEmployer(ctx context.Context, employerID primitive.ObjectID) ([]model.ApplicationDetail, error)
	SetStatus(ctx context.Context, employerID primitive.ObjectID, applicationID string, status model.ApplicationStatus) (*model.Application, error)
}

type applicationService struct {
	applications repository.ApplicationRepository
	internships  repository.InternshipRepository
	users        repository.UserRepository
	resumes      storage.ResumeStore

	// strictStatusFlow rejects re-deciding an application that is already
	// accepted or rejected.
	strictStatusFlow bool
}

func NewApplicationService(
	applications repository.ApplicationRepository,
	internships repository.InternshipRepository,
	users repository.UserRepository,
	resumes storage.ResumeStore,
	strictStatusFlow bool,
) ApplicationService {
	return &applicationService{
		applications:     applications,
		internships:      internships,
		users:            users,
		resumes:          resumes,
		strictStatusFlow: strictStatusFlow,
	}
}

func (s *applicationService) Submit(ctx context.Context, applicantID primitive.ObjectID, input SubmitInput) (*model.Application, error) {
	if input.InternshipID == "" || strings.TrimSpace(input.CoverLetter) == "" || len(input.Resume) == 0 {
		return nil, helper.NewError(helper.CodeValidation, "internshipId, coverLetter and resume are all required", nil)
	}

	internshipID, err := primitive.ObjectIDFromHex(input.InternshipID)
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
	if internship.Status != model.InternshipActive {
		return nil, helper.NewError(helper.CodeConflict, "this internship is no longer accepting applications", nil)
	}

	_, err = s.applications.FindByInternshipAndApplicant(ctx, internshipID, applicantID)
	if err == nil {
		return nil, helper.NewError(helper.CodeConflict, "you have already applied for this internship", nil)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, helper.NewError(helper.CodeInternal, "could not check existing applications", err)
	}

	// The blob is written before the record: an application must never
	// reference a resume that was not durably stored.
	resumePath, err := s.resumes.Save(input.ResumeName, input.Resume)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotPDF):
			return nil, helper.NewError(helper.CodeValidation, "resume must be a PDF file", err)
		case errors.Is(err, storage.ErrTooLarge):
			return nil, helper.NewError(helper.CodeValidation, "resume file is too large", err)
		}
		return nil, helper.NewError(helper.CodeInternal, "could not store resume", err)
	}

	application := &model.Application{
		InternshipID: internshipID,
		ApplicantID:  applicantID,
		Resume:       resumePath,
		CoverLetter:  input.CoverLetter,
		Status:       model.StatusPending,
		AppliedAt:    time.Now(),
	}
	id, err := s.applications.Create(ctx, application)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not submit application", err)
	}
	application.ID = id
	return application, nil
}

func (s *applicationService) ListMine(ctx context.Context, applicantID primitive.ObjectID) ([]model.ApplicationDetail, error) {
	applications, err := s.applications.FindByApplicant(ctx, applicantID)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load applications", err)
	}

	details := make([]model.ApplicationDetail, 0, len(applications))
	for _, app := range applications {
		detail := model.ApplicationDetail{Application: app}
		if internship, err := s.internships.FindByID(ctx, app.InternshipID); err == nil {
			detail.Internship = internship
		}
		details = append(details, detail)
	}
	return details, nil
}

func (s *applicationService) ListForInternship(ctx context.Context, employerID primitive.ObjectID, internshipID string) ([]model.ApplicationDetail, error) {
	id, err := primitive.ObjectIDFromHex(internshipID)
	if err != nil {
		return nil, helper.NewError(helper.CodeNotFound, "internship not found", err)
	}

	internship, err := s.internships.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, helper.NewError(helper.CodeNotFound, "internship not found", nil)
		}
		return nil, helper.NewError(helper.CodeInternal, "could not load internship", err)
	}
	if internship.PostedBy != employerID {
		return nil, helper.NewError(helper.CodeForbidden, "internship belongs to another employer", nil)
	}

	applications, err := s.applications.FindByInternship(ctx, id)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load applications", err)
	}
	return s.joinApplicants(ctx, applications, nil)
}

// ListForEmployer unions the applications of every internship the employer
// owns. The full application set is filtered by ownership in memory, which
// is fine at this scale.
func (s *applicationService) ListForEmployer(ctx context.Context, employerID primitive.ObjectID) ([]model.ApplicationDetail, error) {
	owned, err := s.internships.FindByPoster(ctx, employerID)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load internships", err)
	}
	byID := make(map[primitive.ObjectID]model.Internship, len(owned))
	for _, internship := range owned {
		byID[internship.ID] = internship
	}

	all, err := s.applications.FindAll(ctx)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load applications", err)
	}

	mine := []model.Application{}
	for _, app := range all {
		if _, ok := byID[app.InternshipID]; ok {
			mine = append(mine, app)
		}
	}
	return s.joinApplicants(ctx, mine, byID)
}

func (s *applicationService) SetStatus(ctx context.Context, employerID primitive.ObjectID, applicationID string, status model.ApplicationStatus) (*model.Application, error) {
	if !model.ValidApplicationStatus(status) {
		return nil, helper.NewError(helper.CodeValidation, "unknown application status", nil)
	}

	id, err := primitive.ObjectIDFromHex(applicationID)
	if err != nil {
		return nil, helper.NewError(helper.CodeNotFound, "application not found", err)
	}

	application, err := s.applications.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, helper.NewError(helper.CodeNotFound, "application not found", nil)
		}
		return nil, helper.NewError(helper.CodeInternal, "could not load application", err)
	}

	internship, err := s.internships.FindByID(ctx, application.InternshipID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, helper.NewError(helper.CodeNotFound, "internship not found", nil)
		}
		return nil, helper.NewError(helper.CodeInternal, "could not load internship", err)
	}
	if internship.PostedBy != employerID {
		return nil, helper.NewError(helper.CodeForbidden, "application belongs to another employer's internship", nil)
	}

	// Setting the current value again is a no-op success regardless of mode.
	if application.Status == status {
		return application, nil
	}
	if s.strictStatusFlow && application.Status.Terminal() {
		return nil, helper.NewError(helper.CodeConflict, "application has already been decided", nil)
	}

	updated, err := s.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, helper.NewError(helper.CodeNotFound, "application not found", nil)
		}
		return nil, helper.NewError(helper.CodeInternal, "could not update application status", err)
	}
	return updated, nil
}

// joinApplicants attaches applicant profiles, and internships too when the
// caller already has them loaded.
func (s *applicationService) joinApplicants(ctx context.Context, applications []model.Application, internships map[primitive.ObjectID]model.Internship) ([]model.ApplicationDetail, error) {
	applicantIDs := make([]primitive.ObjectID, 0, len(applications))
	for _, app := range applications {
		applicantIDs = append(applicantIDs, app.ApplicantID)
	}
	profiles, err := s.users.FindByIDs(ctx, applicantIDs)
	if err != nil {
		return nil, helper.NewError(helper.CodeInternal, "could not load applicants", err)
	}

	details := make([]model.ApplicationDetail, 0, len(applications))
	for _, app := range applications {
		detail := model.ApplicationDetail{Application: app}
		if user, ok := profiles[app.ApplicantID]; ok {
			detail.Applicant = &model.UserProfile{ID: user.ID, Name: user.Name, Email: user.Email}
		}
		if internships != nil {
			if internship, ok := internships[app.InternshipID]; ok {
				internshipCopy := internship
				detail.Internship = &internshipCopy
			}
		}
		details = append(details, detail)
	}
	return details, nil
}

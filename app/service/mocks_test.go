package service

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"internlink/app/model"
	"internlink/app/repository"
	"internlink/app/storage"
)

// In-memory repositories backing the service tests. They mirror the sort
// behavior of the Mongo implementations so the services see the same order.

type memUserRepo struct {
	users map[primitive.ObjectID]model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[primitive.ObjectID]model.User)}
}

func (m *memUserRepo) Create(_ context.Context, user *model.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	m.users[user.ID] = *user
	return user.ID, nil
}

func (m *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.User, error) {
	if user, ok := m.users[id]; ok {
		return &user, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) FindByIDs(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]model.User, error) {
	found := make(map[primitive.ObjectID]model.User)
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			found[id] = user
		}
	}
	return found, nil
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

type memInternshipRepo struct {
	internships map[primitive.ObjectID]model.Internship
}

func newMemInternshipRepo() *memInternshipRepo {
	return &memInternshipRepo{internships: make(map[primitive.ObjectID]model.Internship)}
}

func (m *memInternshipRepo) Create(_ context.Context, internship *model.Internship) (primitive.ObjectID, error) {
	internship.ID = primitive.NewObjectID()
	m.internships[internship.ID] = *internship
	return internship.ID, nil
}

func (m *memInternshipRepo) FindAll(_ context.Context) ([]model.Internship, error) {
	return m.sorted(func(model.Internship) bool { return true }), nil
}

func (m *memInternshipRepo) FindByPoster(_ context.Context, posterID primitive.ObjectID) ([]model.Internship, error) {
	return m.sorted(func(i model.Internship) bool { return i.PostedBy == posterID }), nil
}

func (m *memInternshipRepo) sorted(keep func(model.Internship) bool) []model.Internship {
	out := []model.Internship{}
	for _, internship := range m.internships {
		if keep(internship) {
			out = append(out, internship)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out
}

func (m *memInternshipRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Internship, error) {
	if internship, ok := m.internships[id]; ok {
		return &internship, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memInternshipRepo) Update(_ context.Context, id primitive.ObjectID, set bson.M) (*model.Internship, error) {
	internship, ok := m.internships[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	for key, value := range set {
		switch key {
		case "title":
			internship.Title = value.(string)
		case "company":
			internship.Company = value.(string)
		case "location":
			internship.Location = value.(string)
		case "description":
			internship.Description = value.(string)
		case "requirements":
			internship.Requirements = value.([]string)
		case "duration":
			internship.Duration = value.(string)
		case "stipend":
			internship.Stipend = value.(string)
		case "type":
			internship.Type = value.(model.InternshipType)
		case "status":
			internship.Status = value.(model.InternshipStatus)
		}
	}
	m.internships[id] = internship
	return &internship, nil
}

func (m *memInternshipRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.internships[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.internships, id)
	return nil
}

func (m *memInternshipRepo) CountByPoster(_ context.Context, posterID primitive.ObjectID) (int64, error) {
	return int64(len(m.sorted(func(i model.Internship) bool { return i.PostedBy == posterID }))), nil
}

func (m *memInternshipRepo) CountActiveByPoster(_ context.Context, posterID primitive.ObjectID) (int64, error) {
	return int64(len(m.sorted(func(i model.Internship) bool {
		return i.PostedBy == posterID && i.Status == model.InternshipActive
	}))), nil
}

type memApplicationRepo struct {
	applications map[primitive.ObjectID]model.Application
}

func newMemApplicationRepo() *memApplicationRepo {
	return &memApplicationRepo{applications: make(map[primitive.ObjectID]model.Application)}
}

func (m *memApplicationRepo) Create(_ context.Context, application *model.Application) (primitive.ObjectID, error) {
	application.ID = primitive.NewObjectID()
	m.applications[application.ID] = *application
	return application.ID, nil
}

func (m *memApplicationRepo) FindAll(_ context.Context) ([]model.Application, error) {
	return m.sorted(func(model.Application) bool { return true }), nil
}

func (m *memApplicationRepo) FindByApplicant(_ context.Context, applicantID primitive.ObjectID) ([]model.Application, error) {
	return m.sorted(func(a model.Application) bool { return a.ApplicantID == applicantID }), nil
}

func (m *memApplicationRepo) FindByInternship(_ context.Context, internshipID primitive.ObjectID) ([]model.Application, error) {
	return m.sorted(func(a model.Application) bool { return a.InternshipID == internshipID }), nil
}

func (m *memApplicationRepo) sorted(keep func(model.Application) bool) []model.Application {
	out := []model.Application{}
	for _, application := range m.applications {
		if keep(application) {
			out = append(out, application)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].AppliedAt.After(out[b].AppliedAt) })
	return out
}

func (m *memApplicationRepo) FindByID(_ context.Context, id primitive.ObjectID) (*model.Application, error) {
	if application, ok := m.applications[id]; ok {
		return &application, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memApplicationRepo) FindByInternshipAndApplicant(_ context.Context, internshipID, applicantID primitive.ObjectID) (*model.Application, error) {
	for _, application := range m.applications {
		if application.InternshipID == internshipID && application.ApplicantID == applicantID {
			return &application, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memApplicationRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status model.ApplicationStatus) (*model.Application, error) {
	application, ok := m.applications[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	application.Status = status
	m.applications[id] = application
	return &application, nil
}

func (m *memApplicationRepo) DeleteByInternship(_ context.Context, internshipID primitive.ObjectID) (int64, error) {
	var deleted int64
	for id, application := range m.applications {
		if application.InternshipID == internshipID {
			delete(m.applications, id)
			deleted++
		}
	}
	return deleted, nil
}

// memResumeStore records every stored blob path.
type memResumeStore struct {
	saved []string
}

func (m *memResumeStore) Save(filename string, data []byte) (string, error) {
	path := "/uploads/resumes/" + filename
	m.saved = append(m.saved, path)
	return path, nil
}

var _ storage.ResumeStore = (*memResumeStore)(nil)

// rejectingStore simulates the PDF gate of the disk store.
type rejectingStore struct{}

func (rejectingStore) Save(string, []byte) (string, error) {
	return "", storage.ErrNotPDF
}

// Command seed loads a demo employer, a demo student and a handful of sample
// internships into the configured MongoDB database. It is idempotent on the
// user accounts: re-running reuses them by email.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"internlink/app/model"
	"internlink/app/repository"
	"internlink/app/utils"
	"internlink/config"
	"internlink/database"
)

var sampleInternships = []model.Internship{
	{
		Title:       "Software Development Intern",
		Company:     "TechSolutions",
		Location:    "Bangalore, Karnataka",
		Description: "Join our team as a software development intern and work on real-world full-stack projects.",
		Requirements: []string{
			"Currently pursuing a degree in Computer Science or related field",
			"Strong knowledge of JavaScript, React, and Node.js",
			"Understanding of database concepts",
		},
		Duration: "6 months",
		Stipend:  "25,000/month",
		Type:     model.TypeFullTime,
	},
	{
		Title:       "Data Science Intern",
		Company:     "AnalyticsPro",
		Location:    "Hyderabad, Telangana",
		Description: "Work on machine learning models and data analysis projects alongside industry experts.",
		Requirements: []string{
			"Pursuing a degree in Data Science, Statistics, or related field",
			"Knowledge of Python and data analysis libraries",
			"Experience with data visualization tools",
		},
		Duration: "3 months",
		Stipend:  "30,000/month",
		Type:     model.TypeRemote,
	},
	{
		Title:       "UI/UX Design Intern",
		Company:     "DesignHub",
		Location:    "Delhi NCR",
		Description: "Create user interfaces with our design team and learn user research, wireframing, and prototyping.",
		Requirements: []string{
			"Pursuing a degree in Design or related field",
			"Knowledge of design tools such as Figma",
			"Portfolio of design projects",
		},
		Duration: "5 months",
		Stipend:  "22,000/month",
		Type:     model.TypePartTime,
	},
}

func main() {
	config.LoadEnv()
	cfg := config.New()

	db := database.Connect(cfg.MongoURI, cfg.MongoDB)
	users := repository.NewUserRepository(db.Collection("users"))
	internships := repository.NewInternshipRepository(db.Collection("internships"))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	employerID := ensureUser(ctx, users, model.User{
		Name:    "Demo Employer",
		Email:   "employer@example.com",
		Role:    model.RoleEmployer,
		Company: "TechSolutions",
	}, "employer123")

	ensureUser(ctx, users, model.User{
		Name:  "Demo Student",
		Email: "student@example.com",
		Role:  model.RoleStudent,
	}, "student123")

	for _, internship := range sampleInternships {
		internship.PostedBy = employerID
		internship.Status = model.InternshipActive
		internship.CreatedAt = time.Now()
		if _, err := internships.Create(ctx, &internship); err != nil {
			log.Fatal("seed internship failed:", err)
		}
		log.Printf("seeded internship: %s", internship.Title)
	}

	log.Println("seed complete")
}

func ensureUser(ctx context.Context, users repository.UserRepository, user model.User, password string) primitive.ObjectID {
	if existing, err := users.FindByEmail(ctx, user.Email); err == nil {
		log.Printf("user %s already exists, skipping", user.Email)
		return existing.ID
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatal("hash password failed:", err)
	}
	user.PasswordHash = hash
	user.CreatedAt = time.Now()

	id, err := users.Create(ctx, &user)
	if err != nil {
		log.Fatal("seed user failed:", err)
	}
	log.Printf("seeded user: %s (%s)", user.Email, user.Role)
	return id
}

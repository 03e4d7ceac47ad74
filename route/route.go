package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"internlink/app/repository"
	"internlink/app/service"
	"internlink/app/storage"
	"internlink/config"
	"internlink/middleware"
)

// SetupRoutes wires repositories, services and middleware, and registers
// every endpoint under /api.
func SetupRoutes(app *fiber.App, db *mongo.Database, cfg *config.Config) {
	users := repository.NewUserRepository(db.Collection("users"))
	internships := repository.NewInternshipRepository(db.Collection("internships"))
	applications := repository.NewApplicationRepository(db.Collection("applications"))

	resumes, err := storage.NewDiskStore(cfg.ResumeDir, cfg.ResumeMaxSize)
	if err != nil {
		log.Fatal("resume store init failed:", err)
	}

	internshipSvc := service.NewInternshipService(internships, applications, users)
	applicationSvc := service.NewApplicationService(applications, internships, users, resumes, cfg.StrictStatusFlow)

	authenticated := middleware.JWT([]byte(cfg.JWTSecret))

	api := app.Group("/api")
	InternshipRoutes(api, internshipSvc, authenticated)
	ApplicationRoutes(api, applicationSvc, authenticated)

	// Uploaded resumes are served back under the path stored on the record.
	app.Static("/"+cfg.ResumeDir, cfg.ResumeDir)
}

package route

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"internlink/app/model"
	"internlink/app/service"
	"internlink/helper"
	"internlink/middleware"
)

// ApplicationRoutes registers the application endpoints. All of them require
// a logged-in caller; submitting is student-only, reviewing is employer-only.
func ApplicationRoutes(api fiber.Router, svc service.ApplicationService, authenticated fiber.Handler) {
	studentOnly := middleware.RequireRole(model.RoleStudent)
	employerOnly := middleware.RequireRole(model.RoleEmployer)

	applications := api.Group("/applications", authenticated)

	applications.Get("/my-applications", func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		result, err := svc.ListMine(c.Context(), user.ID)
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, result, "")
	})

	applications.Get("/employer", employerOnly, func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		result, err := svc.ListForEmployer(c.Context(), user.ID)
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, result, "")
	})

	applications.Get("/internship/:id", employerOnly, func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		result, err := svc.ListForInternship(c.Context(), user.ID, c.Params("id"))
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, result, "")
	})

	applications.Post("/", studentOnly, func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}

		input := service.SubmitInput{
			InternshipID: c.FormValue("internshipId"),
			CoverLetter:  c.FormValue("coverLetter"),
		}
		if file, err := c.FormFile("resume"); err == nil {
			f, err := file.Open()
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "could not read resume upload")
			}
			defer f.Close()
			data, err := io.ReadAll(f)
			if err != nil {
				return helper.Error(c, fiber.StatusBadRequest, "could not read resume upload")
			}
			input.ResumeName = file.Filename
			input.Resume = data
		}

		result, err := svc.Submit(c.Context(), user.ID, input)
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Created(c, result, "application submitted")
	})

	applications.Patch("/:id/status", employerOnly, func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		var body struct {
			Status model.ApplicationStatus `json:"status"`
		}
		if err := c.BodyParser(&body); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
		}
		result, err := svc.SetStatus(c.Context(), user.ID, c.Params("id"), body.Status)
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, result, "application status updated")
	})
}

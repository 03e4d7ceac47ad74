package route

import (
	"github.com/gofiber/fiber/v2"

	"internlink/app/model"
	"internlink/app/service"
	"internlink/helper"
	"internlink/middleware"
)

// InternshipRoutes registers the internship endpoints. Listing and fetching a
// single posting are public; everything else is employer-only. The fixed
// paths must be registered before /:id so Fiber does not swallow them.
func InternshipRoutes(api fiber.Router, svc service.InternshipService, authenticated fiber.Handler) {
	employerOnly := middleware.RequireRole(model.RoleEmployer)

	internships := api.Group("/internships")

	internships.Get("/", func(c *fiber.Ctx) error {
		result, err := svc.ListAll(c.Context())
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, result, "")
	})

	internships.Get("/my-internships", authenticated, employerOnly, func(c *fiber.Ctx) error {
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

	internships.Get("/stats", authenticated, employerOnly, func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		result, err := svc.Stats(c.Context(), user.ID)
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, result, "")
	})

	internships.Get("/:id", func(c *fiber.Ctx) error {
		result, err := svc.GetByID(c.Context(), c.Params("id"))
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, result, "")
	})

	internships.Post("/", authenticated, employerOnly, func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		var req model.InternshipRequest
		if err := c.BodyParser(&req); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
		}
		result, err := svc.Create(c.Context(), user.ID, req)
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Created(c, result, "internship created")
	})

	internships.Put("/:id", authenticated, employerOnly, func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		var patch model.InternshipPatch
		if err := c.BodyParser(&patch); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "invalid request body")
		}
		result, err := svc.Update(c.Context(), user.ID, c.Params("id"), patch)
		if err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, result, "internship updated")
	})

	internships.Delete("/:id", authenticated, employerOnly, func(c *fiber.Ctx) error {
		user, err := helper.GetAuthUser(c)
		if err != nil {
			return helper.Error(c, fiber.StatusUnauthorized, err.Error())
		}
		if err := svc.Delete(c.Context(), user.ID, c.Params("id")); err != nil {
			return helper.Fail(c, err)
		}
		return helper.Success(c, nil, "internship removed")
	})
}

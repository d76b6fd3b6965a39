package handlers

import (
	"errors"
	"log/slog"

	"github.com/bloodit-app/bloodit-backend/internal/dto"
	"github.com/bloodit-app/bloodit-backend/internal/middleware"
	"github.com/bloodit-app/bloodit-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DonorHandler struct {
	donorService *services.DonorService
}

func NewDonorHandler(donorService *services.DonorService) *DonorHandler {
	return &DonorHandler{donorService: donorService}
}

func (h *DonorHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	donor, err := h.donorService.Create(userID, &req)
	if err != nil {
		slog.Error("donor profile creation failed", "action", "donor_create", "error", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create donor profile",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(donor)
}

func (h *DonorHandler) List(c *fiber.Ctx) error {
	filter := dto.DonorFilter{
		BloodGroup: c.Query("blood_group"),
		Location:   c.Query("location"),
		Name:       c.Query("name"),
	}

	donors, err := h.donorService.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(donors)
}

func (h *DonorHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Donor not found",
		})
	}

	donor, err := h.donorService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrDonorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Donor not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(donor)
}

func (h *DonorHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Donor not found",
		})
	}

	var req dto.UpdateDonorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	donor, err := h.donorService.Update(uint(id), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDonorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Donor not found",
			})
		case errors.Is(err, services.ErrNotOwner):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}
	return c.JSON(donor)
}

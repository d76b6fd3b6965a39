package handlers

import (
	"errors"
	"log/slog"

	"github.com/bloodit-app/bloodit-backend/internal/dto"
	"github.com/bloodit-app/bloodit-backend/internal/middleware"
	"github.com/bloodit-app/bloodit-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type DonationHandler struct {
	donationService *services.DonationService
}

func NewDonationHandler(donationService *services.DonationService) *DonationHandler {
	return &DonationHandler{donationService: donationService}
}

func (h *DonationHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var req dto.CreateDonationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid input",
		})
	}

	donation, err := h.donationService.Create(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotDonor):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "User is not a registered donor",
			})
		case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrInvalidDate):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid input",
			})
		default:
			slog.Error("blood donation creation failed", "action", "donation_create", "error", err.Error())
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Internal server error",
			})
		}
	}

	return c.Status(fiber.StatusCreated).JSON(donation)
}

func (h *DonationHandler) List(c *fiber.Ctx) error {
	donations, err := h.donationService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(donations)
}

func (h *DonationHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Blood donation not found",
		})
	}

	donation, err := h.donationService.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrDonationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: "Blood donation not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(donation)
}

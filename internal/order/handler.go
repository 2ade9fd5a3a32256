package order

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/darlingboutique/boutique-backend/internal/payment"
)

// Handler exposes the order endpoints.
type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/orders", h.createOrder)
	app.Get("/api/orders", h.listOrders)
	app.Get("/api/orders/:id", h.getOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Patch("/api/orders/:id/status", h.updateStatus)
}

type createOrderRequest struct {
	Items         []Item         `json:"items"`
	PaymentMethod payment.Method `json:"payment_method"`
	PhoneNumber   string         `json:"phone_number"`
	UserID        *string        `json:"user_id,omitempty"`
	SessionID     *string        `json:"session_id,omitempty"`
}

func (h *Handler) createOrder(c *fiber.Ctx) error {
	payload := new(createOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	ord, err := h.service.Create(c.UserContext(), CreateInput{
		Items:         payload.Items,
		PaymentMethod: payload.PaymentMethod,
		PhoneNumber:   payload.PhoneNumber,
		UserID:        payload.UserID,
		SessionID:     payload.SessionID,
	})
	if err != nil {
		var invalidPhone InvalidPhoneError
		var declined PaymentError
		switch {
		case errors.As(err, &invalidPhone), errors.As(err, &declined):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
		}
	}

	return c.JSON(ord)
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(ord)
}

func (h *Handler) listOrders(c *fiber.Ctx) error {
	f := Filter{
		SessionID: c.Query("session_id"),
		UserID:    c.Query("user_id"),
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			f.Statuses = append(f.Statuses, Status(strings.TrimSpace(s)))
		}
	}

	orders, err := h.service.List(c.UserContext(), f)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(orders)
}

type statusUpdateRequest struct {
	Status Status `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	ord, err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), payload.Status)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "order not found"})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(ord)
}

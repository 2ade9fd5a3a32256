package cart

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/darlingboutique/boutique-backend/internal/product"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/cart/:sessionId", h.getCart)
	app.Post("/api/cart/:sessionId/add", h.addItem)
	app.Put("/api/cart/:sessionId/update/:productId", h.updateItem)
	app.Delete("/api/cart/:sessionId/remove/:productId", h.removeItem)
	app.Delete("/api/cart/:sessionId/clear", h.clearCart)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	crt, err := h.service.Get(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(crt)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (h *Handler) addItem(c *fiber.Ctx) error {
	payload := addItemRequest{Quantity: 1}
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}
	if payload.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "quantity must be at least 1"})
	}

	crt, err := h.service.AddItem(c.UserContext(), c.Params("sessionId"), payload.ProductID, payload.Quantity)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "product not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "item added to cart", "cart": crt})
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	payload := new(updateItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}
	if payload.Quantity < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "quantity must be at least 1"})
	}

	crt, err := h.service.UpdateItem(c.UserContext(), c.Params("sessionId"), c.Params("productId"), payload.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "cart not found"})
		case errors.Is(err, ErrItemNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "item not found in cart"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
		}
	}
	return c.JSON(fiber.Map{"message": "cart updated", "cart": crt})
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	crt, err := h.service.RemoveItem(c.UserContext(), c.Params("sessionId"), c.Params("productId"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"detail": "cart not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "item removed from cart", "cart": crt})
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	crt, err := h.service.Clear(c.UserContext(), c.Params("sessionId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "cart cleared", "cart": crt})
}

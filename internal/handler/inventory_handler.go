package handler

import (
	"errors"

	"github.com/Takumi1421/Easyreplenish-backend/internal/model"
	"github.com/Takumi1421/Easyreplenish-backend/internal/service"

	"github.com/gofiber/fiber/v2"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

// statusForError maps service errors to HTTP status codes. Missing SKUs are
// 404, everything else the caller did wrong is 400.
func statusForError(err error) int {
	if errors.Is(err, service.ErrSKUNotFound) {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadRequest
}

func (h *InventoryHandler) CreateSKU(c *fiber.Ctx) error {
	var sku model.SKU
	if err := c.BodyParser(&sku); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateSKU(&sku); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "SKU added", "sku": sku})
}

func (h *InventoryHandler) GetInventory(c *fiber.Ctx) error {
	skus, err := h.service.GetAllSKUs()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(skus)
}

func (h *InventoryHandler) DeleteSKU(c *fiber.Ctx) error {
	skuID := c.Params("sku_id")

	if err := h.service.DeleteSKU(skuID); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "SKU deleted"})
}

func (h *InventoryHandler) RecordSale(c *fiber.Ctx) error {
	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordSale(&sale); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "sale": sale})
}

func (h *InventoryHandler) GetSalesForSKU(c *fiber.Ctx) error {
	skuID := c.Params("sku_id")

	sales, err := h.service.GetSalesForSKU(skuID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(sales)
}

func (h *InventoryHandler) RecordOrder(c *fiber.Ctx) error {
	var order model.Order
	if err := c.BodyParser(&order); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.RecordOrder(&order); err != nil {
		return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Order recorded", "order": order})
}

func (h *InventoryHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

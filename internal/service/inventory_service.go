package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/Takumi1421/Easyreplenish-backend/internal/model"
	"github.com/Takumi1421/Easyreplenish-backend/internal/repository"
	"github.com/Takumi1421/Easyreplenish-backend/pkg/validator"

	"gorm.io/gorm"
)

var (
	ErrSKUExists   = errors.New("SKU already exists")
	ErrSKUNotFound = errors.New("SKU not found")
)

// EventBroadcaster pushes inventory events to connected clients. Satisfied
// by *ws.Hub; nil disables broadcasting.
type EventBroadcaster interface {
	BroadcastEvent(eventType string, payload interface{})
}

type InventoryService interface {
	CreateSKU(req *model.SKU) error
	GetAllSKUs() ([]model.SKU, error)
	DeleteSKU(skuID string) error
	RecordSale(req *model.Sale) error
	GetSalesForSKU(skuID string) ([]model.Sale, error)
	RecordOrder(req *model.Order) error
	GetAllOrders() ([]model.Order, error)
}

type inventoryService struct {
	skuRepo   repository.SKURepository
	saleRepo  repository.SaleRepository
	orderRepo repository.OrderRepository
	events    EventBroadcaster
}

func NewInventoryService(skuRepo repository.SKURepository, saleRepo repository.SaleRepository, orderRepo repository.OrderRepository, events EventBroadcaster) InventoryService {
	return &inventoryService{
		skuRepo:   skuRepo,
		saleRepo:  saleRepo,
		orderRepo: orderRepo,
		events:    events,
	}
}

func validationError(errs []*validator.ErrorResponse) error {
	first := errs[0]
	return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", first.FailedField, first.Tag)
}

func (s *inventoryService) broadcast(eventType string, payload interface{}) {
	if s.events == nil {
		return
	}
	go s.events.BroadcastEvent(eventType, payload)
}

func (s *inventoryService) CreateSKU(req *model.SKU) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	// Duplicate check before insert; the primary key constraint backs this
	// up under races.
	if existing, _ := s.skuRepo.FindByID(req.SKUID); existing != nil {
		return ErrSKUExists
	}

	if err := s.skuRepo.Create(req); err != nil {
		return err
	}

	s.broadcast("sku_created", req)
	return nil
}

func (s *inventoryService) GetAllSKUs() ([]model.SKU, error) {
	return s.skuRepo.FindAll()
}

func (s *inventoryService) DeleteSKU(skuID string) error {
	if err := s.skuRepo.Delete(skuID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSKUNotFound
		}
		return err
	}

	s.broadcast("sku_deleted", map[string]interface{}{"sku_id": skuID})
	return nil
}

// RecordSale appends a sale line. The referenced SKU must exist; stock is
// not adjusted, a sale is a record of a transaction fulfilled elsewhere.
func (s *inventoryService) RecordSale(req *model.Sale) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	if _, err := s.skuRepo.FindByID(req.SKUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSKUNotFound
		}
		return err
	}

	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	if err := s.saleRepo.Create(req); err != nil {
		return err
	}

	s.broadcast("sale_recorded", req)
	return nil
}

func (s *inventoryService) GetSalesForSKU(skuID string) ([]model.Sale, error) {
	return s.saleRepo.FindBySKU(skuID)
}

// RecordOrder appends an order and applies its stock side effect in one
// atomic store operation: "ordered" subtracts the quantity, "returned" adds
// it back, "received" leaves stock alone.
func (s *inventoryService) RecordOrder(req *model.Order) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return validationError(errs)
	}

	if _, err := s.skuRepo.FindByID(req.SKUID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSKUNotFound
		}
		return err
	}

	if req.Date.IsZero() {
		req.Date = time.Now()
	}

	delta := req.Status.StockDelta(req.Quantity)
	if err := s.orderRepo.Create(req, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSKUNotFound
		}
		return err
	}

	payload := map[string]interface{}{
		"order_id": req.OrderID,
		"sku_id":   req.SKUID,
		"quantity": req.Quantity,
		"status":   req.Status,
	}
	if sku, err := s.skuRepo.FindByID(req.SKUID); err == nil {
		payload["current_stock"] = sku.CurrentStock
	}
	s.broadcast("stock_update", payload)

	return nil
}

func (s *inventoryService) GetAllOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

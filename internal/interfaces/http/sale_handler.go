package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/application/store"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
)

// SaleHandler maneja las ventas de mostrador (protegido).
type SaleHandler struct {
	uc *store.SaleUseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *store.SaleUseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar venta de mostrador
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Líneas y método de pago"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/store/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u := GetVerifiedUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no verificada"})
	}

	items := make([]store.SaleItemInput, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, store.SaleItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	sale, err := h.uc.CreateSale(c.Context(), store.SaleInput{
		Items:         items,
		PaymentMethod: in.PaymentMethod,
		PerformedBy:   u.ID,
	})
	if err != nil {
		if coded := domain.AsCoded(err); coded != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: coded.Kind, Message: saleErrorMessage(coded)})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la venta requiere al menos una línea con cantidad positiva y un método de pago válido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toSaleResponse(sale))
}

// saleErrorMessage traduce un error KIND:detalle a un mensaje para el panel.
func saleErrorMessage(coded *domain.CodedError) string {
	switch coded.Kind {
	case domain.CodeProductNotFound:
		return "el producto no existe: " + coded.Detail
	case domain.CodeProductInactive:
		return "el producto está desactivado: " + coded.Detail
	case domain.CodeInsufficientStock:
		return "stock insuficiente para: " + coded.Detail
	}
	return coded.Error()
}

// List godoc
// @Summary      Listar ventas con sus líneas
// @Tags         sales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SaleResponse
// @Router       /api/store/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return c.JSON(out)
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Total:       item.Total,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		Items:         items,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		PerformedBy:   s.PerformedBy,
		CreatedAt:     s.CreatedAt,
	}
}

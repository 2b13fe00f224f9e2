package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/application/store"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// KardexHandler maneja el registro y consulta de movimientos de inventario.
type KardexHandler struct {
	uc *store.KardexUseCase
}

// NewKardexHandler construye el handler.
func NewKardexHandler(uc *store.KardexUseCase) *KardexHandler {
	return &KardexHandler{uc: uc}
}

// RegisterMovement godoc
// @Summary      Registrar movimiento manual de inventario
// @Tags         kardex
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterMovementRequest  true  "Datos del movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/store/kardex [post]
func (h *KardexHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.RegisterMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	u := GetVerifiedUser(c)
	if u == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "sesión no verificada"})
	}

	mov, err := h.uc.RegisterMovement(c.Context(), store.MovementInput{
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		UnitCost:    in.UnitCost,
		Reason:      in.Reason,
		Reference:   in.Reference,
		PerformedBy: u.ID,
	})
	if err != nil {
		if coded := domain.AsCoded(err); coded != nil && coded.Kind == domain.CodeProductNotFound {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "el producto no existe: " + coded.Detail})
		}
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type debe ser IN u OUT y quantity un entero positivo"})
		case errors.Is(err, domain.ErrNegativeStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "STOCK_NEGATIVO_NO_PERMITIDO", Message: "el movimiento dejaría el stock en negativo"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toMovementResponse(mov))
}

// List godoc
// @Summary      Listar movimientos del kardex
// @Tags         kardex
// @Security     Bearer
// @Produce      json
// @Param        productId  query  string  false  "Filtrar por producto"
// @Param        type       query  string  false  "Filtrar por tipo (IN | OUT)"
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/store/kardex [get]
func (h *KardexHandler) List(c *fiber.Ctx) error {
	movements, err := h.uc.List(repository.MovementFilter{
		ProductID: c.Query("productId"),
		Type:      c.Query("type"),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, toMovementResponse(m))
	}
	return c.JSON(out)
}

func toMovementResponse(m *entity.InventoryMovement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		UnitCost:    m.UnitCost,
		Reason:      m.Reason,
		Reference:   m.Reference,
		PerformedBy: m.PerformedBy,
		CreatedAt:   m.CreatedAt,
	}
}

package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/application/usecase"
	"github.com/jhoicas/hostal-api/internal/domain"
)

// FloorHandler maneja las peticiones HTTP para pisos (protegido).
type FloorHandler struct {
	uc *usecase.FloorUseCase
}

// NewFloorHandler construye el handler.
func NewFloorHandler(uc *usecase.FloorUseCase) *FloorHandler {
	return &FloorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear piso
// @Tags         floors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFloorRequest  true  "Datos del piso"
// @Success      201   {object}  dto.FloorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/floors [post]
func (h *FloorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFloorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrFloorNumberExists) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EL_NUMERO_DE_PISO_YA_EXISTE", Message: "ya existe un piso con ese número"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pisos
// @Tags         floors
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FloorResponse
// @Router       /api/floors [get]
func (h *FloorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar piso
// @Tags         floors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del piso"
// @Param        body  body  dto.UpdateFloorRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.FloorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/floors/{id} [put]
func (h *FloorHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateFloorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrFloorNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PISO_NO_ENCONTRADO", Message: "piso no encontrado"})
		case errors.Is(err, domain.ErrFloorNumberExists):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EL_NUMERO_DE_PISO_YA_EXISTE", Message: "ya existe un piso con ese número"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar piso (solo sin habitaciones)
// @Tags         floors
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del piso"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/floors/{id} [delete]
func (h *FloorHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrFloorNotFound):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "PISO_NO_ENCONTRADO", Message: "piso no encontrado"})
		case errors.Is(err, domain.ErrFloorHasRooms):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "NO_SE_PUEDE_ELIMINAR_PISO_CON_HABITACIONES", Message: "el piso tiene habitaciones asociadas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

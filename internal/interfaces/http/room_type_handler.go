package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/application/usecase"
	"github.com/jhoicas/hostal-api/internal/domain"
)

// RoomTypeHandler maneja las peticiones HTTP para tipos de habitación (protegido).
type RoomTypeHandler struct {
	uc *usecase.RoomTypeUseCase
}

// NewRoomTypeHandler construye el handler.
func NewRoomTypeHandler(uc *usecase.RoomTypeUseCase) *RoomTypeHandler {
	return &RoomTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Crear tipo de habitación
// @Tags         room-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRoomTypeRequest  true  "Datos del tipo"
// @Success      201   {object}  dto.RoomTypeResponse
// @Router       /api/room-types [post]
func (h *RoomTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoomTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar tipos de habitación
// @Tags         room-types
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.RoomTypeResponse
// @Router       /api/room-types [get]
func (h *RoomTypeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar tipo de habitación
// @Tags         room-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del tipo"
// @Param        body  body  dto.UpdateRoomTypeRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.RoomTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/room-types/{id} [put]
func (h *RoomTypeHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateRoomTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrRoomTypeNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TIPO_DE_HABITACION_NO_ENCONTRADO", Message: "tipo de habitación no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar tipo de habitación
// @Tags         room-types
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del tipo"
// @Success      204
// @Router       /api/room-types/{id} [delete]
func (h *RoomTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

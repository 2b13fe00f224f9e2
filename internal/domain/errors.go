package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrUserInactive       = errors.New("usuario inactivo")
	ErrUserDeleted        = errors.New("usuario eliminado")
	ErrRoleNotFound       = errors.New("rol no encontrado")
	ErrPersonNotFound     = errors.New("persona no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyInitialized = errors.New("el sistema ya está inicializado")
	ErrNegativeStock      = errors.New("el movimiento dejaría el stock en negativo")
)

// Errores de referencia/unicidad de los módulos de habitaciones, con los
// códigos que consume el panel.
var (
	ErrFloorNumberExists = errors.New("EL_NUMERO_DE_PISO_YA_EXISTE")
	ErrFloorHasRooms     = errors.New("NO_SE_PUEDE_ELIMINAR_PISO_CON_HABITACIONES")
	ErrFloorNotFound     = errors.New("PISO_NO_ENCONTRADO")
	ErrRoomTypeNotFound  = errors.New("TIPO_DE_HABITACION_NO_ENCONTRADO")
	ErrRoomCodeExists    = errors.New("CODIGO_YA_EXISTE_EN_ESTE_PISO")
	ErrInvalidRoomType   = errors.New("TIPO_HABITACION_NO_VALIDO")
	ErrBarcodeExists     = errors.New("BARCODE_ALREADY_EXISTS")
)

// Tipos de error con detalle para el flujo de ventas. Se serializan como
// KIND:detalle para que el handler pueda extraer el nombre de la entidad.
const (
	CodeProductNotFound   = "PRODUCT_NOT_FOUND"
	CodeProductInactive   = "PRODUCT_INACTIVE"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
)

// CodedError error de regla de negocio con código y detalle (KIND:detalle).
type CodedError struct {
	Kind   string // uno de los Code* de arriba
	Detail string // id o nombre del producto, según el código
}

func (e *CodedError) Error() string {
	return e.Kind + ":" + e.Detail
}

// NewProductNotFound el producto referenciado no existe; detail es su id.
func NewProductNotFound(id string) *CodedError {
	return &CodedError{Kind: CodeProductNotFound, Detail: id}
}

// NewProductInactive el producto está desactivado; detail es su nombre.
func NewProductInactive(name string) *CodedError {
	return &CodedError{Kind: CodeProductInactive, Detail: name}
}

// NewInsufficientStock no hay stock suficiente; detail es el nombre del producto.
func NewInsufficientStock(name string) *CodedError {
	return &CodedError{Kind: CodeInsufficientStock, Detail: name}
}

// AsCoded extrae un *CodedError de la cadena de errores, o nil.
func AsCoded(err error) *CodedError {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded
	}
	return nil
}

// SplitCoded separa un mensaje KIND:detalle. Útil para errores que cruzaron
// una frontera como string plano.
func SplitCoded(msg string) (kind, detail string) {
	parts := strings.SplitN(msg, ":", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return msg, ""
}

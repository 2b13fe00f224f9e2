package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// KardexUseCase registra movimientos de inventario: asiento inmutable en el
// kardex + incremento atómico del stock cacheado del producto, en una sola
// transacción con bloqueo de fila.
type KardexUseCase struct {
	txRunner TxRunner
	movRepo  repository.MovementRepository
	// allowNegativeStock permite que un OUT manual deje el stock en negativo
	// (ajustes correctivos). Las ventas validan stock aparte y nunca pasan
	// por esta vía.
	allowNegativeStock bool
}

// NewKardexUseCase construye el caso de uso.
func NewKardexUseCase(txRunner TxRunner, movRepo repository.MovementRepository, allowNegativeStock bool) *KardexUseCase {
	return &KardexUseCase{txRunner: txRunner, movRepo: movRepo, allowNegativeStock: allowNegativeStock}
}

// MovementInput entrada para registrar un movimiento manual.
type MovementInput struct {
	ProductID   string
	Type        string // IN | OUT
	Quantity    int    // entero positivo
	UnitCost    decimal.Decimal
	Reason      string
	Reference   string
	PerformedBy string
}

// RegisterMovement valida tipo y cantidad, bloquea la fila del producto,
// inserta el asiento y aplica el delta con signo al cache de stock.
func (uc *KardexUseCase) RegisterMovement(ctx context.Context, in MovementInput) (*entity.InventoryMovement, error) {
	if in.Type != entity.MovementTypeIN && in.Type != entity.MovementTypeOUT {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}

	mov := &entity.InventoryMovement{
		ID:          uuid.New().String(),
		ProductID:   in.ProductID,
		Type:        in.Type,
		Quantity:    in.Quantity,
		UnitCost:    in.UnitCost,
		Reason:      in.Reason,
		Reference:   in.Reference,
		PerformedBy: in.PerformedBy,
		CreatedAt:   time.Now(),
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
	) error {
		// Bloquea la fila del producto (SELECT FOR UPDATE) para que el
		// chequeo de negatividad y el incremento sean un solo paso lógico.
		product, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.NewProductNotFound(in.ProductID)
		}

		delta := mov.SignedQuantity()
		if delta < 0 && !uc.allowNegativeStock && product.CurrentStock+delta < 0 {
			return domain.ErrNegativeStock
		}

		if err := movRepo.Create(mov); err != nil {
			return err
		}
		return productRepo.ApplyStockDelta(in.ProductID, delta)
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// List lista movimientos del kardex, filtrables por producto y tipo.
func (uc *KardexUseCase) List(filter repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	return uc.movRepo.List(filter)
}

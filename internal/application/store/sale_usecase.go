package store

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// SaleUseCase ventas de mostrador. Toda la mutación (venta, movimientos OUT,
// decrementos del cache de stock) ocurre dentro de UNA transacción con las
// filas de producto bloqueadas, así dos ventas concurrentes del mismo
// producto no pueden sobrevender ni dejar el ledger a medias.
type SaleUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(txRunner TxRunner, saleRepo repository.SaleRepository) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo}
}

// SaleItemInput línea de venta entrante.
type SaleItemInput struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

// SaleInput entrada para crear una venta.
type SaleInput struct {
	Items         []SaleItemInput
	PaymentMethod string
	PerformedBy   string
}

// CreateSale valida TODAS las líneas antes de escribir nada y luego aplica
// la venta completa. Fallas de validación devuelven errores KIND:detalle
// (PRODUCT_NOT_FOUND:<id>, PRODUCT_INACTIVE:<nombre>,
// INSUFFICIENT_STOCK:<nombre>) sin dejar rastro en la base.
func (uc *SaleUseCase) CreateSale(ctx context.Context, in SaleInput) (*entity.Sale, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		PaymentMethod: in.PaymentMethod,
		PerformedBy:   in.PerformedBy,
		CreatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		// Cantidad total solicitada por producto (una venta puede repetir
		// el mismo producto en varias líneas).
		required := make(map[string]int)
		for _, item := range in.Items {
			required[item.ProductID] += item.Quantity
		}

		// Bloquear filas en orden estable para no generar deadlocks entre
		// ventas concurrentes.
		ids := make([]string, 0, len(required))
		for id := range required {
			ids = append(ids, id)
		}
		sort.Strings(ids)

		products := make(map[string]*entity.Product, len(ids))
		for _, id := range ids {
			product, err := productRepo.GetForUpdate(id)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.NewProductNotFound(id)
			}
			if !product.IsActive {
				return domain.NewProductInactive(product.Name)
			}
			if product.CurrentStock < required[id] {
				return domain.NewInsufficientStock(product.Name)
			}
			products[id] = product
		}

		// Pre-chequeo completo: recién ahora se muta.
		total := decimal.Zero
		sale.Items = make([]entity.SaleItem, 0, len(in.Items))
		for _, item := range in.Items {
			lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
			sale.Items = append(sale.Items, entity.SaleItem{
				ProductID:   item.ProductID,
				ProductName: products[item.ProductID].Name,
				Quantity:    item.Quantity,
				UnitPrice:   item.UnitPrice,
				Total:       lineTotal,
			})
			total = total.Add(lineTotal)
		}
		sale.TotalAmount = total

		if err := saleRepo.Create(sale); err != nil {
			return err
		}

		for _, item := range in.Items {
			mov := &entity.InventoryMovement{
				ID:          uuid.New().String(),
				ProductID:   item.ProductID,
				Type:        entity.MovementTypeOUT,
				Quantity:    item.Quantity,
				UnitCost:    item.UnitPrice, // en ventas se registra el precio al que salió
				Reason:      entity.ReasonCounterSale,
				Reference:   sale.ID,
				PerformedBy: in.PerformedBy,
				CreatedAt:   now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			if err := productRepo.ApplyStockDelta(item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sale, nil
}

// List lista ventas con sus líneas, más recientes primero.
func (uc *SaleUseCase) List() ([]*entity.Sale, error) {
	return uc.saleRepo.List()
}

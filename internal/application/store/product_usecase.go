package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/hostal-api/internal/application/dto"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos. Vive en este paquete (y no en usecase)
// porque el alta con stock inicial toca el kardex: producto + movimiento
// STOCK_INICIAL + cache de stock salen de la misma transacción.
type ProductUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create crea el producto y, si trae stock inicial, registra el movimiento
// IN con razón STOCK_INICIAL al costo de compra. Ledger y cache quedan
// consistentes desde t=0.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest, performedBy string) (*dto.ProductResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.UnitID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.Barcode != "" {
		existing, err := uc.productRepo.FindByBarcode(in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrBarcodeExists
		}
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Description:   in.Description,
		Barcode:       in.Barcode,
		CategoryID:    in.CategoryID,
		UnitID:        in.UnitID,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		CurrentStock:  0,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
		_ repository.SaleRepository,
	) error {
		if err := productRepo.Create(product); err != nil {
			return err
		}
		if in.InitialStock > 0 {
			mov := &entity.InventoryMovement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				Type:        entity.MovementTypeIN,
				Quantity:    in.InitialStock,
				UnitCost:    in.PurchasePrice,
				Reason:      entity.ReasonInitialStock,
				PerformedBy: performedBy,
				CreatedAt:   now,
			}
			if err := movRepo.Create(mov); err != nil {
				return err
			}
			if err := productRepo.ApplyStockDelta(product.ID, in.InitialStock); err != nil {
				return err
			}
			product.CurrentStock = in.InitialStock
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con nombres de categoría y unidad.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	list, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out, nil
}

// Update actualización parcial. Si cambia el barcode se valida que no esté
// en uso por otro producto. El stock NO se toca por aquí.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	if in.Barcode != nil && *in.Barcode != "" && *in.Barcode != product.Barcode {
		existing, err := uc.productRepo.FindByBarcode(*in.Barcode)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrBarcodeExists
		}
	}

	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Barcode != nil {
		product.Barcode = *in.Barcode
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.UnitID != nil {
		product.UnitID = *in.UnitID
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.productRepo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Barcode:       p.Barcode,
		CategoryID:    p.CategoryID,
		CategoryName:  p.CategoryName,
		UnitID:        p.UnitID,
		UnitName:      p.UnitName,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		CurrentStock:  p.CurrentStock,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

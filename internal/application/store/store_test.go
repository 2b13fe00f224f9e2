package store_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
	"github.com/jhoicas/hostal-api/internal/domain/repository"
)

// memState estado compartido en memoria para los fakes de persistencia.
type memState struct {
	products  map[string]*entity.Product
	movements []*entity.InventoryMovement
	sales     []*entity.Sale
}

func newMemState() *memState {
	return &memState{products: make(map[string]*entity.Product)}
}

// clone copia profunda del estado, para poder simular rollback.
func (s *memState) clone() *memState {
	c := newMemState()
	for id, p := range s.products {
		cp := *p
		c.products[id] = &cp
	}
	for _, m := range s.movements {
		cm := *m
		c.movements = append(c.movements, &cm)
	}
	for _, sale := range s.sales {
		cs := *sale
		cs.Items = append([]entity.SaleItem(nil), sale.Items...)
		c.sales = append(c.sales, &cs)
	}
	return c
}

// ledgerSum suma con signo de los movimientos de un producto.
func (s *memState) ledgerSum(productID string) int {
	sum := 0
	for _, m := range s.movements {
		if m.ProductID == productID {
			sum += m.SignedQuantity()
		}
	}
	return sum
}

// memProductRepo fake de ProductRepository sobre memState.
type memProductRepo struct{ st *memState }

func (r *memProductRepo) Create(p *entity.Product) error {
	if p.Barcode != "" {
		for _, other := range r.st.products {
			if other.Barcode == p.Barcode {
				return domain.ErrBarcodeExists
			}
		}
	}
	cp := *p
	r.st.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.st.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memProductRepo) FindByID(id string) (*entity.Product, error) {
	return r.st.products[id], nil
}

func (r *memProductRepo) FindByBarcode(barcode string) (*entity.Product, error) {
	for _, p := range r.st.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	existing, ok := r.st.products[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stock := existing.CurrentStock
	cp := *p
	cp.CurrentStock = stock // el stock solo lo mueve ApplyStockDelta
	r.st.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	delete(r.st.products, id)
	return nil
}

func (r *memProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.st.products[id], nil
}

func (r *memProductRepo) ApplyStockDelta(id string, delta int) error {
	p, ok := r.st.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock += delta
	return nil
}

// memMovementRepo fake del kardex.
type memMovementRepo struct{ st *memState }

func (r *memMovementRepo) Create(m *entity.InventoryMovement) error {
	cm := *m
	r.st.movements = append(r.st.movements, &cm)
	return nil
}

func (r *memMovementRepo) List(filter repository.MovementFilter) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for _, m := range r.st.movements {
		if filter.ProductID != "" && m.ProductID != filter.ProductID {
			continue
		}
		if filter.Type != "" && m.Type != filter.Type {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

// memSaleRepo fake de ventas.
type memSaleRepo struct{ st *memState }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	cs := *sale
	cs.Items = append([]entity.SaleItem(nil), sale.Items...)
	r.st.sales = append(r.st.sales, &cs)
	return nil
}

func (r *memSaleRepo) List() ([]*entity.Sale, error) {
	return r.st.sales, nil
}

// fakeTxRunner ejecuta el callback sobre el estado compartido; si falla,
// restaura el snapshot previo (rollback).
type fakeTxRunner struct{ st *memState }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) error) error {
	snapshot := r.st.clone()
	err := fn(&memMovementRepo{r.st}, &memProductRepo{r.st}, &memSaleRepo{r.st})
	if err != nil {
		*r.st = *snapshot
		return err
	}
	return nil
}

// seedProduct inserta un producto activo con el stock dado.
func seedProduct(st *memState, id, name string, stock int, salePrice string) *entity.Product {
	now := time.Now()
	p := &entity.Product{
		ID:            id,
		Name:          name,
		CategoryID:    "cat-1",
		UnitID:        "unit-1",
		PurchasePrice: decimal.NewFromInt(10),
		SalePrice:     decimal.RequireFromString(salePrice),
		CurrentStock:  stock,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	st.products[id] = p
	return p
}

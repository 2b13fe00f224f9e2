package store_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/hostal-api/internal/application/store"
	"github.com/jhoicas/hostal-api/internal/domain"
	"github.com/jhoicas/hostal-api/internal/domain/entity"
)

func newSaleUC(st *memState) *store.SaleUseCase {
	return store.NewSaleUseCase(&fakeTxRunner{st}, &memSaleRepo{st})
}

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestCreateSale_Exitosa_VentaMovimientosYStock(t *testing.T) {
	st := newMemState()
	seedProduct(st, "p1", "Agua 600ml", 10, "2.50")
	seedProduct(st, "p2", "Jabón", 4, "1.80")
	uc := newSaleUC(st)

	sale, err := uc.CreateSale(context.Background(), store.SaleInput{
		Items: []store.SaleItemInput{
			{ProductID: "p1", Quantity: 3, UnitPrice: price("2.50")},
			{ProductID: "p2", Quantity: 2, UnitPrice: price("1.80")},
		},
		PaymentMethod: entity.PaymentCash,
		PerformedBy:   "u1",
	})
	require.NoError(t, err)

	// Total = 3*2.50 + 2*1.80 = 11.10
	assert.True(t, sale.TotalAmount.Equal(price("11.10")), "total calculado: %s", sale.TotalAmount)
	require.Len(t, sale.Items, 2)
	assert.Equal(t, "Agua 600ml", sale.Items[0].ProductName)
	assert.True(t, sale.Items[0].Total.Equal(price("7.50")))

	// Stocks descontados
	assert.Equal(t, 7, st.products["p1"].CurrentStock)
	assert.Equal(t, 2, st.products["p2"].CurrentStock)

	// Un movimiento OUT por línea, con razón VENTA_MOSTRADOR y referencia a la venta
	require.Len(t, st.movements, 2)
	for _, m := range st.movements {
		assert.Equal(t, entity.MovementTypeOUT, m.Type)
		assert.Equal(t, entity.ReasonCounterSale, m.Reason)
		assert.Equal(t, sale.ID, m.Reference)
		assert.Equal(t, "u1", m.PerformedBy)
	}

	// Cache consistente con el ledger (stock sembrado + suma con signo)
	assert.Equal(t, 10+st.ledgerSum("p1"), st.products["p1"].CurrentStock)
	assert.Equal(t, 4+st.ledgerSum("p2"), st.products["p2"].CurrentStock)

	require.Len(t, st.sales, 1)
}

// Si CUALQUIER línea falla la validación, la venta completa se descarta: ni
// venta, ni movimientos, ni cambios de stock.
func TestCreateSale_StockInsuficiente_NoDejaRastro(t *testing.T) {
	st := newMemState()
	seedProduct(st, "p1", "Agua 600ml", 10, "2.50")
	seedProduct(st, "p2", "Jabón", 1, "1.80")
	uc := newSaleUC(st)

	_, err := uc.CreateSale(context.Background(), store.SaleInput{
		Items: []store.SaleItemInput{
			{ProductID: "p1", Quantity: 3, UnitPrice: price("2.50")},
			{ProductID: "p2", Quantity: 5, UnitPrice: price("1.80")}, // solo hay 1
		},
		PaymentMethod: entity.PaymentCash,
		PerformedBy:   "u1",
	})
	coded := domain.AsCoded(err)
	require.NotNil(t, coded)
	assert.Equal(t, domain.CodeInsufficientStock, coded.Kind)
	assert.Equal(t, "Jabón", coded.Detail, "el detalle es el NOMBRE del producto")

	assert.Empty(t, st.sales, "no debe registrarse la venta")
	assert.Empty(t, st.movements, "no debe quedar ningún movimiento")
	assert.Equal(t, 10, st.products["p1"].CurrentStock, "el stock de las demás líneas tampoco cambia")
	assert.Equal(t, 1, st.products["p2"].CurrentStock)
}

func TestCreateSale_ProductoInactivo_ProductInactive(t *testing.T) {
	st := newMemState()
	p := seedProduct(st, "p1", "Agua 600ml", 10, "2.50")
	p.IsActive = false
	uc := newSaleUC(st)

	_, err := uc.CreateSale(context.Background(), store.SaleInput{
		Items:         []store.SaleItemInput{{ProductID: "p1", Quantity: 1, UnitPrice: price("2.50")}},
		PaymentMethod: entity.PaymentCard,
		PerformedBy:   "u1",
	})
	coded := domain.AsCoded(err)
	require.NotNil(t, coded)
	assert.Equal(t, domain.CodeProductInactive, coded.Kind)
	assert.Equal(t, "Agua 600ml", coded.Detail)
}

func TestCreateSale_ProductoInexistente_ProductNotFound(t *testing.T) {
	st := newMemState()
	uc := newSaleUC(st)

	_, err := uc.CreateSale(context.Background(), store.SaleInput{
		Items:         []store.SaleItemInput{{ProductID: "fantasma", Quantity: 1, UnitPrice: price("1.00")}},
		PaymentMethod: entity.PaymentTransfer,
		PerformedBy:   "u1",
	})
	coded := domain.AsCoded(err)
	require.NotNil(t, coded)
	assert.Equal(t, domain.CodeProductNotFound, coded.Kind)
	assert.Equal(t, "fantasma", coded.Detail, "el detalle es el ID cuando el producto no existe")
}

// La validación agrega las cantidades cuando la misma venta repite un
// producto en varias líneas.
func TestCreateSale_LineasRepetidas_ValidaCantidadAgregada(t *testing.T) {
	st := newMemState()
	seedProduct(st, "p1", "Agua 600ml", 5, "2.50")
	uc := newSaleUC(st)

	_, err := uc.CreateSale(context.Background(), store.SaleInput{
		Items: []store.SaleItemInput{
			{ProductID: "p1", Quantity: 3, UnitPrice: price("2.50")},
			{ProductID: "p1", Quantity: 3, UnitPrice: price("2.50")}, // 6 en total, hay 5
		},
		PaymentMethod: entity.PaymentCash,
		PerformedBy:   "u1",
	})
	coded := domain.AsCoded(err)
	require.NotNil(t, coded)
	assert.Equal(t, domain.CodeInsufficientStock, coded.Kind)
	assert.Equal(t, 5, st.products["p1"].CurrentStock)
}

func TestCreateSale_VentasSecuenciales_AgotanStock(t *testing.T) {
	st := newMemState()
	seedProduct(st, "p1", "Agua 600ml", 7, "2.50")
	uc := newSaleUC(st)
	ctx := context.Background()

	sell := func(qty int) error {
		_, err := uc.CreateSale(ctx, store.SaleInput{
			Items:         []store.SaleItemInput{{ProductID: "p1", Quantity: qty, UnitPrice: price("2.50")}},
			PaymentMethod: entity.PaymentCash,
			PerformedBy:   "u1",
		})
		return err
	}

	require.NoError(t, sell(5))
	require.NoError(t, sell(2))
	assert.Equal(t, 0, st.products["p1"].CurrentStock)

	err := sell(1)
	coded := domain.AsCoded(err)
	require.NotNil(t, coded)
	assert.Equal(t, domain.CodeInsufficientStock, coded.Kind)

	assert.Len(t, st.sales, 2, "solo las dos primeras ventas quedaron registradas")
	assert.Equal(t, 7, -st.ledgerSum("p1"), "el ledger registra exactamente lo vendido")
}

func TestCreateSale_EntradaInvalida_ErrInvalidInput(t *testing.T) {
	st := newMemState()
	seedProduct(st, "p1", "Agua 600ml", 5, "2.50")
	uc := newSaleUC(st)
	ctx := context.Background()

	cases := []store.SaleInput{
		{PaymentMethod: entity.PaymentCash, PerformedBy: "u1"}, // sin líneas
		{
			Items:         []store.SaleItemInput{{ProductID: "p1", Quantity: 1, UnitPrice: price("2.50")}},
			PaymentMethod: "BITCOIN",
			PerformedBy:   "u1",
		},
		{
			Items:         []store.SaleItemInput{{ProductID: "p1", Quantity: 0, UnitPrice: price("2.50")}},
			PaymentMethod: entity.PaymentCash,
			PerformedBy:   "u1",
		},
	}
	for _, in := range cases {
		_, err := uc.CreateSale(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
	assert.Empty(t, st.sales)
	assert.Empty(t, st.movements)
}

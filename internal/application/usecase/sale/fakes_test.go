package sale

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sales-performance/backend/internal/domain/entity"
	domainerror "github.com/sales-performance/backend/internal/domain/error"
	"github.com/sales-performance/backend/internal/domain/valueobject"
)

// fakeSaleRepository keeps clones of the stored sales in insertion order.
type fakeSaleRepository struct {
	sales []*entity.Sale
}

func (r *fakeSaleRepository) Create(_ context.Context, sale *entity.Sale) error {
	r.sales = append(r.sales, sale.Clone())
	return nil
}

func (r *fakeSaleRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s.Clone(), nil
		}
	}
	return nil, domainerror.ErrSaleNotFound
}

func (r *fakeSaleRepository) FindAll(_ context.Context) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.sales))
	for _, s := range r.sales {
		out = append(out, s.Clone())
	}
	return out, nil
}

func (r *fakeSaleRepository) Update(_ context.Context, sale *entity.Sale) error {
	for i, s := range r.sales {
		if s.ID == sale.ID {
			r.sales[i] = sale.Clone()
			return nil
		}
	}
	return domainerror.ErrSaleNotFound
}

func (r *fakeSaleRepository) Delete(_ context.Context, id uuid.UUID) error {
	for i, s := range r.sales {
		if s.ID == id {
			r.sales = append(r.sales[:i], r.sales[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrSaleNotFound
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type mutation struct {
	operation string
	saleType  entity.SaleType
}

type fakeMetrics struct {
	mutations  []mutation
	quotes     []int
	lastTotals *entity.SalesTotals
}

func (m *fakeMetrics) SaleMutated(operation string, saleType entity.SaleType) {
	m.mutations = append(m.mutations, mutation{operation: operation, saleType: saleType})
}

func (m *fakeMetrics) CommissionQuoted(tierLevel int) {
	m.quotes = append(m.quotes, tierLevel)
}

func (m *fakeMetrics) TotalsComputed(_ valueobject.WindowKind, totals entity.SalesTotals) {
	m.lastTotals = &totals
}

package store

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Poovetha/Inventory/internal/models"
)

func mustMovement(t *testing.T, s *Store, id string, productID uint, from, to *uint, qty int) {
	t.Helper()
	m := models.Movement{MovementID: id, ProductID: productID, FromLocation: from, ToLocation: to, Qty: qty}
	require.NoError(t, s.CreateMovement(&m))
}

func TestStockReportNets(t *testing.T) {
	s := newTestStore(t)
	p := mustProduct(t, s, "Widget")
	l1 := mustLocation(t, s, "Shelf")
	l2 := mustLocation(t, s, "Dock")

	mustMovement(t, s, "M001", p.ProductID, nil, &l1.LocationID, 10)
	mustMovement(t, s, "M002", p.ProductID, &l1.LocationID, &l2.LocationID, 4)

	rows, err := s.StockReport()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, StockRow{p.ProductID, "Widget", l1.LocationID, "Shelf", 6}, rows[0])
	assert.Equal(t, StockRow{p.ProductID, "Widget", l2.LocationID, "Dock", 4}, rows[1])
}

func TestStockReportSuppressesZeroNet(t *testing.T) {
	s := newTestStore(t)
	p := mustProduct(t, s, "Widget")
	l := mustLocation(t, s, "Shelf")

	mustMovement(t, s, "M001", p.ProductID, nil, &l.LocationID, 5)
	mustMovement(t, s, "M002", p.ProductID, &l.LocationID, nil, 5)

	rows, err := s.StockReport()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestStockReportOrdering(t *testing.T) {
	s := newTestStore(t)
	p1 := mustProduct(t, s, "Widget")
	p2 := mustProduct(t, s, "Gadget")
	l1 := mustLocation(t, s, "Shelf")
	l2 := mustLocation(t, s, "Dock")

	// insert out of report order on purpose
	mustMovement(t, s, "M001", p2.ProductID, nil, &l2.LocationID, 1)
	mustMovement(t, s, "M002", p2.ProductID, nil, &l1.LocationID, 2)
	mustMovement(t, s, "M003", p1.ProductID, nil, &l2.LocationID, 3)
	mustMovement(t, s, "M004", p1.ProductID, nil, &l1.LocationID, 4)

	rows, err := s.StockReport()
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		ok := prev.ProductID < cur.ProductID ||
			(prev.ProductID == cur.ProductID && prev.LocationID < cur.LocationID)
		assert.True(t, ok, "rows out of order at %d: %+v then %+v", i, prev, cur)
	}
}

func TestStockReportToleratesDanglingProduct(t *testing.T) {
	s := newTestStore(t)
	p1 := mustProduct(t, s, "Widget")
	p2 := mustProduct(t, s, "Gadget")
	l := mustLocation(t, s, "Shelf")

	mustMovement(t, s, "M001", p1.ProductID, nil, &l.LocationID, 5)
	mustMovement(t, s, "M002", p2.ProductID, nil, &l.LocationID, 7)

	require.NoError(t, s.DeleteProduct(p1.ProductID))

	rows, err := s.StockReport()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, p2.ProductID, rows[0].ProductID)
}

// foldReport is an independent in-memory implementation of the report used as
// an oracle: +qty at the destination, -qty at the source, keep nonzero rows,
// order by (product, location).
func foldReport(products []models.Product, locations []models.Location, movements []models.Movement) []StockRow {
	productNames := map[uint]string{}
	for _, p := range products {
		productNames[p.ProductID] = p.Name
	}
	locationNames := map[uint]string{}
	for _, l := range locations {
		locationNames[l.LocationID] = l.Name
	}
	type key struct{ product, location uint }
	net := map[key]int{}
	for _, m := range movements {
		if _, ok := productNames[m.ProductID]; !ok {
			continue
		}
		if m.ToLocation != nil {
			if _, ok := locationNames[*m.ToLocation]; ok {
				net[key{m.ProductID, *m.ToLocation}] += m.Qty
			}
		}
		if m.FromLocation != nil {
			if _, ok := locationNames[*m.FromLocation]; ok {
				net[key{m.ProductID, *m.FromLocation}] -= m.Qty
			}
		}
	}
	var rows []StockRow
	for k, qty := range net {
		if qty == 0 {
			continue
		}
		rows = append(rows, StockRow{
			ProductID:    k.product,
			ProductName:  productNames[k.product],
			LocationID:   k.location,
			LocationName: locationNames[k.location],
			Qty:          qty,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductID != rows[j].ProductID {
			return rows[i].ProductID < rows[j].ProductID
		}
		return rows[i].LocationID < rows[j].LocationID
	})
	return rows
}

func TestStockReportMatchesFoldOracle(t *testing.T) {
	s := newTestStore(t)
	rng := rand.New(rand.NewSource(42))

	var products []models.Product
	for i := 0; i < 4; i++ {
		products = append(products, mustProduct(t, s, fmt.Sprintf("P%d", i+1)))
	}
	var locations []models.Location
	for i := 0; i < 3; i++ {
		locations = append(locations, mustLocation(t, s, fmt.Sprintf("L%d", i+1)))
	}

	var movements []models.Movement
	for i := 0; i < 200; i++ {
		m := models.Movement{
			MovementID: fmt.Sprintf("M%03d", i+1),
			ProductID:  products[rng.Intn(len(products))].ProductID,
			Qty:        1 + rng.Intn(9),
		}
		switch rng.Intn(3) {
		case 0:
			to := locations[rng.Intn(len(locations))].LocationID
			m.ToLocation = &to
		case 1:
			from := locations[rng.Intn(len(locations))].LocationID
			m.FromLocation = &from
		default:
			from := locations[rng.Intn(len(locations))].LocationID
			to := locations[rng.Intn(len(locations))].LocationID
			for to == from {
				to = locations[rng.Intn(len(locations))].LocationID
			}
			m.FromLocation = &from
			m.ToLocation = &to
		}
		mCopy := m
		require.NoError(t, s.CreateMovement(&mCopy))
		movements = append(movements, m)
	}

	got, err := s.StockReport()
	require.NoError(t, err)
	want := foldReport(products, locations, movements)
	assert.Equal(t, want, got)
}

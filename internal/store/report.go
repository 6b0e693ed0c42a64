package store

import "fmt"

// StockRow is one line of the stock report: the net on-hand quantity of a
// product at a location.
type StockRow struct {
	ProductID    uint
	ProductName  string
	LocationID   uint
	LocationName string
	Qty          int
}

// StockReport derives current stock from the full movement ledger. Every
// movement contributes +qty at its destination and -qty at its source; rows
// netting to zero are suppressed. The report is recomputed on every call
// rather than maintained incrementally, which keeps writes trivially correct
// at the data volumes this app sees.
//
// The joins also give the dangling-reference behavior the rest of the app
// relies on: movements whose product or location has been deleted simply
// drop out of the report.
func (s *Store) StockReport() ([]StockRow, error) {
	const query = `
SELECT p.product_id  AS product_id,
       p.name        AS product_name,
       l.location_id AS location_id,
       l.name        AS location_name,
       COALESCE(SUM(CASE WHEN m.to_location   = l.location_id THEN m.qty ELSE 0 END), 0)
     - COALESCE(SUM(CASE WHEN m.from_location = l.location_id THEN m.qty ELSE 0 END), 0) AS qty
FROM product_movement m
JOIN product  p ON p.product_id = m.product_id
JOIN location l ON l.location_id = m.to_location OR l.location_id = m.from_location
GROUP BY p.product_id, p.name, l.location_id, l.name
HAVING COALESCE(SUM(CASE WHEN m.to_location   = l.location_id THEN m.qty ELSE 0 END), 0)
     - COALESCE(SUM(CASE WHEN m.from_location = l.location_id THEN m.qty ELSE 0 END), 0) <> 0
ORDER BY p.product_id, l.location_id`

	var rows []StockRow
	if err := s.db.Raw(query).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}
	return rows, nil
}

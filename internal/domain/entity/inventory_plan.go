package entity

import "time"

// MonthPlan fila de un mes del calendario de reabastecimiento.
// Los meses se identifican como "YYYY-MM".
type MonthPlan struct {
	Month            string  `json:"month"`
	Demand           float64 `json:"demand"`
	BeginningInv     float64 `json:"beginningInv"`
	Shipment         float64 `json:"shipment"`
	RecommendedOrder float64 `json:"recommendedOrder"`
	EndingInv        float64 `json:"endingInv"`
	MinLevel         float64 `json:"minLevel"`
	MaxLevel         float64 `json:"maxLevel"`
	BelowMin         bool    `json:"belowMin"`
	Stockout         bool    `json:"stockout"`
}

// InventoryPlan plan de inventario persistido de un artículo: los embarques
// que el usuario ha fijado mes a mes. Las filas calculadas no se persisten,
// se derivan de nuevo en cada lectura.
type InventoryPlan struct {
	ItemID      string             `json:"itemId"`
	Country     string             `json:"country"`
	Shipments   map[string]float64 `json:"shipments"`
	LastUpdated time.Time          `json:"lastUpdated"`
}

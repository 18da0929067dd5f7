package entity

import "time"

// Item representa um item estocado (localização única).
// QuantityCurrent só muda através do motor de movimentações: o CRUD de itens
// nunca escreve nesse campo. QuantityMin/QuantityMax são limites orientativos,
// sem ordenação imposta entre eles.
type Item struct {
	ID              string
	CategoryID      string
	Name            string
	UnitMeasure     string // un, kg, L, saco...
	QuantityCurrent int64  // invariante: >= 0 sempre
	QuantityMin     int64
	QuantityMax     int64
	Location        string
	Active          bool
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LowStock informa se o item está no limite de reposição (quantidade atual <= mínimo).
func (i *Item) LowStock() bool {
	return i.QuantityCurrent <= i.QuantityMin
}

package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Valores aceitos para sexo, finalidade e origem do animal.
const (
	AnimalSexMale   = "Macho"
	AnimalSexFemale = "Fêmea"

	AnimalPurposeMilk     = "Leite"
	AnimalPurposeBeef     = "Corte"
	AnimalPurposeBreeding = "Reprodução"
	AnimalPurposeSale     = "Venda"

	AnimalOriginPurchase = "Compra"
	AnimalOriginBirth    = "Nascimento Interno"
	AnimalOriginDonation = "Doação"
)

// Animal representa um animal do plantel.
type Animal struct {
	ID             string
	Name           string
	Species        string
	Breed          string
	Sex            string
	BirthDate      time.Time
	Identification string // número de identificação, único quando informado
	Purpose        string
	InitialWeight  decimal.Decimal // kg
	Notes          string
	AcquiredAt     *time.Time
	Origin         string
	PurchaseValue  decimal.Decimal
	CreatedAt      time.Time
}

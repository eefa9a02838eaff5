package pricing

import "github.com/m04kA/SMC-WashBooking/internal/domain"

// Тарифы в тунисских динарах (TND)

var lavageCarPrices = map[domain.SizeClass]map[domain.SubOption]float64{
	domain.SizeCitadine:   {domain.WashRapide: 13, domain.WashExpress: 5},
	domain.SizeBerline:    {domain.WashRapide: 15, domain.WashExpress: 5},
	domain.SizeCommercial: {domain.WashRapide: 17, domain.WashExpress: 5},
	domain.SizePickup:     {domain.WashRapide: 20, domain.WashExpress: 5},
}

var lavageMotoPrices = map[domain.SizeClass]map[domain.SubOption]float64{
	domain.SizeMotoLarge: {domain.WashRapide: 10, domain.WashExpress: 5},
	domain.SizeMotoSmall: {domain.WashRapide: 6, domain.WashExpress: 5},
}

var detailingPrices = map[domain.SizeClass]float64{
	domain.SizeCitadine:   100,
	domain.SizeBerline:    120,
	domain.SizeCommercial: 120,
	domain.SizePickup:     130,
}

// DetailingDefaultPrice applies to a size class outside the detailing table
const DetailingDefaultPrice = 50

var polishCompletePrices = map[domain.SizeClass]float64{
	domain.SizeCitadine:   120,
	domain.SizeBerline:    150,
	domain.SizeCommercial: 150,
	domain.SizePickup:     170,
}

// PolishPricePerPiece is the unit price of per-piece polishing
const PolishPricePerPiece = 12

package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

func TestConfigFor(t *testing.T) {
	tests := []struct {
		kind     domain.ServiceKind
		slots    int
		shape    VehicleShape
		priced   bool
		color    bool
		defPrice *float64
	}{
		{kind: domain.KindLavage, slots: 26, shape: ShapeCarOrMoto, priced: true, defPrice: floatPtr(13)},
		{kind: domain.KindTolerie, slots: 13, shape: ShapeCar, color: true},
		{kind: domain.KindPolissage, slots: 13, shape: ShapeCar, priced: true},
		{kind: domain.KindDetailing, slots: 2, shape: ShapeCar, priced: true, defPrice: floatPtr(100)},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			cfg, err := ConfigFor(tt.kind)
			require.NoError(t, err)

			grid, err := cfg.Grid.Generate()
			require.NoError(t, err)
			assert.Len(t, grid, tt.slots)
			assert.Equal(t, tt.shape, cfg.Vehicle)
			assert.Equal(t, tt.priced, cfg.PriceRequired)
			assert.Equal(t, tt.color, cfg.RequiresColor)

			price, _ := cfg.Price(cfg.Defaults)
			assert.Equal(t, tt.defPrice, price)
		})
	}

	_, err := ConfigFor("carrosserie")
	assert.Error(t, err)
}

func TestQuoteFor_MotoUsesMotoSize(t *testing.T) {
	q := QuoteFor(domain.KindLavage, Form{
		SubOption:   domain.WashRapide,
		VehicleType: domain.VehicleMoto,
		Vehicle:     domain.VehicleProfile{SizeClass: domain.SizePickup},
		Moto:        domain.MotoProfile{SizeClass: domain.SizeMotoSmall},
	})
	assert.Equal(t, domain.SizeMotoSmall, q.SizeClass)

	q = QuoteFor(domain.KindDetailing, Form{SubOption: domain.WashExpress, Vehicle: domain.VehicleProfile{SizeClass: domain.SizeBerline}})
	assert.Empty(t, q.SubOption)
	assert.Equal(t, domain.SizeBerline, q.SizeClass)
}

func floatPtr(v float64) *float64 {
	return &v
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashBooking/internal/domain"
)

func TestResolve_LavageCarTable(t *testing.T) {
	expected := map[domain.SizeClass]map[domain.SubOption]float64{
		domain.SizeCitadine:   {domain.WashRapide: 13, domain.WashExpress: 5},
		domain.SizeBerline:    {domain.WashRapide: 15, domain.WashExpress: 5},
		domain.SizeCommercial: {domain.WashRapide: 17, domain.WashExpress: 5},
		domain.SizePickup:     {domain.WashRapide: 20, domain.WashExpress: 5},
	}

	for size, bySub := range expected {
		for sub, want := range bySub {
			price, err := Resolve(Quote{
				Kind:        domain.KindLavage,
				VehicleType: domain.VehicleCar,
				SizeClass:   size,
				SubOption:   sub,
			})
			require.NoError(t, err, "%s/%s", size, sub)
			require.NotNil(t, price)
			assert.Equal(t, want, *price, "%s/%s", size, sub)
		}
	}
}

func TestResolve_LavageMoto(t *testing.T) {
	cases := []struct {
		size domain.SizeClass
		sub  domain.SubOption
		want float64
	}{
		{domain.SizeMotoLarge, domain.WashRapide, 10},
		{domain.SizeMotoLarge, domain.WashExpress, 5},
		{domain.SizeMotoSmall, domain.WashRapide, 6},
		{domain.SizeMotoSmall, domain.WashExpress, 5},
	}

	for _, tc := range cases {
		price, err := Resolve(Quote{
			Kind:        domain.KindLavage,
			VehicleType: domain.VehicleMoto,
			SizeClass:   tc.size,
			SubOption:   tc.sub,
		})
		require.NoError(t, err)
		assert.Equal(t, tc.want, *price)
	}
}

func TestResolve_LavageIncompleteAndUnknown(t *testing.T) {
	_, err := Resolve(Quote{Kind: domain.KindLavage, SubOption: domain.WashRapide})
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = Resolve(Quote{Kind: domain.KindLavage, SizeClass: domain.SizePickup})
	assert.ErrorIs(t, err, ErrIncomplete)

	// Размер мотоцикла не подходит для таблицы автомобилей
	_, err = Resolve(Quote{Kind: domain.KindLavage, VehicleType: domain.VehicleCar, SizeClass: domain.SizeMotoSmall, SubOption: domain.WashRapide})
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = Resolve(Quote{Kind: domain.KindLavage, VehicleType: "bateau", SizeClass: domain.SizePickup, SubOption: domain.WashRapide})
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestResolve_Detailing(t *testing.T) {
	price, err := Resolve(Quote{Kind: domain.KindDetailing, SizeClass: domain.SizeBerline})
	require.NoError(t, err)
	assert.Equal(t, 120.0, *price)

	price, err = Resolve(Quote{Kind: domain.KindDetailing, SizeClass: domain.SizePickup})
	require.NoError(t, err)
	assert.Equal(t, 130.0, *price)

	price, err = Resolve(Quote{Kind: domain.KindDetailing, SizeClass: "limousine"})
	require.NoError(t, err)
	assert.Equal(t, 50.0, *price)

	_, err = Resolve(Quote{Kind: domain.KindDetailing})
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestResolve_Polissage(t *testing.T) {
	price, err := Resolve(Quote{Kind: domain.KindPolissage, SubOption: domain.PolishPerPieces, PieceCount: 4})
	require.NoError(t, err)
	assert.Equal(t, 48.0, *price)

	price, err = Resolve(Quote{Kind: domain.KindPolissage, SubOption: domain.PolishComplete, SizeClass: domain.SizeBerline})
	require.NoError(t, err)
	assert.Equal(t, 150.0, *price)

	price, err = Resolve(Quote{Kind: domain.KindPolissage, SubOption: domain.PolishComplete, SizeClass: domain.SizePickup})
	require.NoError(t, err)
	assert.Equal(t, 170.0, *price)

	_, err = Resolve(Quote{Kind: domain.KindPolissage, SubOption: domain.PolishPerPieces})
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = Resolve(Quote{Kind: domain.KindPolissage, SubOption: domain.PolishPerPieces, PieceCount: -1})
	assert.ErrorIs(t, err, ErrInvalidPieceCount)

	_, err = Resolve(Quote{Kind: domain.KindPolissage, SubOption: domain.PolishComplete})
	assert.ErrorIs(t, err, ErrIncomplete)

	_, err = Resolve(Quote{Kind: domain.KindPolissage})
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestResolve_TolerieHasNoPrice(t *testing.T) {
	price, err := Resolve(Quote{Kind: domain.KindTolerie, SizeClass: domain.SizeBerline})
	require.NoError(t, err)
	assert.Nil(t, price)
	assert.False(t, IsPriced(domain.KindTolerie))
	assert.True(t, IsPriced(domain.KindLavage))
}

func TestResolve_UnknownService(t *testing.T) {
	_, err := Resolve(Quote{Kind: "vidange"})
	assert.ErrorIs(t, err, ErrUnknownService)
}

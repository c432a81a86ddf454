package conteo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/conteo"
)

func TestConvertPackageToUnits_MultiplicacionExacta(t *testing.T) {
	cases := []struct {
		name     string
		packages string
		factor   int
		want     string
	}{
		{"cinco cajas por 12", "5", 12, "60"},
		{"seis cajas por 12", "6", 12, "72"},
		{"cero empaques", "0", 24, "0"},
		{"empaques fraccionarios", "2.5", 12, "30"},
		{"fraccion sin redondeo", "0.1", 24, "2.4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := conteo.ConvertPackageToUnits(decimal.RequireFromString(tc.packages), tc.factor)
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"esperaba %s, obtuvo %s", tc.want, got)
		})
	}
}

func TestConvertUnitsToPackage_TruncaEmpaquesIncompletos(t *testing.T) {
	// 65 unidades con factor 12 => 5 empaques completos, no 5.41
	got, err := conteo.ConvertUnitsToPackage(decimal.NewFromInt(65), 12)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(5)), "esperaba 5, obtuvo %s", got)

	got, err = conteo.ConvertUnitsToPackage(decimal.NewFromInt(60), 12)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(5)))

	got, err = conteo.ConvertUnitsToPackage(decimal.NewFromInt(11), 12)
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "11 unidades no completan un empaque de 12")
}

// La ida y vuelta empaque→unidad→empaque conserva la cantidad cuando la
// cantidad de empaques es entera (no se garantiza para fraccionarias).
func TestConversion_IdaYVueltaConEmpaquesEnteros(t *testing.T) {
	for _, packages := range []int64{0, 1, 5, 17, 250} {
		for _, factor := range []int{1, 12, 24} {
			units, err := conteo.ConvertPackageToUnits(decimal.NewFromInt(packages), factor)
			require.NoError(t, err)
			back, err := conteo.ConvertUnitsToPackage(units, factor)
			require.NoError(t, err)
			assert.True(t, back.Equal(decimal.NewFromInt(packages)),
				"%d empaques x%d: la ida y vuelta devolvió %s", packages, factor, back)
		}
	}
}

func TestConversion_ArgumentosInvalidos(t *testing.T) {
	cases := []struct {
		name     string
		quantity string
		factor   int
	}{
		{"cantidad negativa", "-1", 12},
		{"cantidad negativa fraccionaria", "-0.5", 12},
		{"factor cero", "5", 0},
		{"factor negativo", "5", -12},
		{"ambos inválidos", "-5", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := decimal.RequireFromString(tc.quantity)

			_, err := conteo.ConvertPackageToUnits(q, tc.factor)
			assert.True(t, domain.IsValidation(err), "ConvertPackageToUnits debe fallar con ValidationError")

			_, err = conteo.ConvertUnitsToPackage(q, tc.factor)
			assert.True(t, domain.IsValidation(err), "ConvertUnitsToPackage debe fallar con ValidationError")
		})
	}
}

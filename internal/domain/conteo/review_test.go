package conteo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbastiane/conteo-api/internal/domain"
	"github.com/sbastiane/conteo-api/internal/domain/conteo"
	"github.com/sbastiane/conteo-api/internal/domain/entity"
)

const testAdminID = "admin-00000001"

func pendingCount(countNumber int) *entity.InventoryCount {
	return &entity.InventoryCount{
		ID:            "count-id",
		CountNumber:   countNumber,
		WarehouseCode: "00009",
		ProductCode:   "4779",
		Status:        entity.CountPending,
	}
}

func TestApprove_ConteoPendienteQuedaAprobado(t *testing.T) {
	count := pendingCount(1)
	now := time.Now()
	notes := "sin diferencias"

	require.NoError(t, conteo.Approve(count, testAdminID, &notes, now))

	assert.Equal(t, entity.CountApproved, count.Status)
	require.NotNil(t, count.ReviewedBy)
	assert.Equal(t, testAdminID, *count.ReviewedBy)
	require.NotNil(t, count.ReviewedAt)
	assert.Equal(t, now, *count.ReviewedAt)
	require.NotNil(t, count.ReviewNotes)
	assert.Equal(t, notes, *count.ReviewNotes)
}

func TestApprove_NotasOpcionales(t *testing.T) {
	count := pendingCount(1)
	require.NoError(t, conteo.Approve(count, testAdminID, nil, time.Now()))
	assert.Nil(t, count.ReviewNotes)
}

func TestReject_RequiereNotas(t *testing.T) {
	for _, notes := range []string{"", "   ", "\t\n"} {
		count := pendingCount(1)
		err := conteo.Reject(count, testAdminID, notes, time.Now())
		require.Error(t, err, "notas %q no deben aceptarse", notes)
		assert.True(t, domain.IsValidation(err))
		assert.Equal(t, entity.CountPending, count.Status, "el conteo no debe mutarse si el rechazo falla")
	}
}

func TestReject_ConNotasQuedaRechazado(t *testing.T) {
	count := pendingCount(1)
	require.NoError(t, conteo.Reject(count, testAdminID, "diferencia de 3 cajas", time.Now()))
	assert.Equal(t, entity.CountRejected, count.Status)
	require.NotNil(t, count.ReviewNotes)
	assert.Equal(t, "diferencia de 3 cajas", *count.ReviewNotes)
}

func TestRequestRecount_LiberaElConteo(t *testing.T) {
	count := pendingCount(1)
	require.NoError(t, conteo.RequestRecount(count, testAdminID, nil, false, time.Now()))
	assert.Equal(t, entity.CountRecountRequested, count.Status)
}

func TestRequestRecount_Ronda3SiempreFalla(t *testing.T) {
	// Aunque esté PENDING, la ronda 3 es terminal.
	count := pendingCount(3)
	err := conteo.RequestRecount(count, testAdminID, nil, false, time.Now())
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, entity.CountPending, count.Status)
}

func TestRequestRecount_ConRondaPosteriorExistenteFalla(t *testing.T) {
	count := pendingCount(1)
	err := conteo.RequestRecount(count, testAdminID, nil, true, time.Now())
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

// Toda acción de revisión sobre un conteo que no está PENDING debe fallar:
// los estados revisados son terminales y no existe reapertura.
func TestRevision_EstadosNoRevisables(t *testing.T) {
	terminal := []entity.CountStatus{
		entity.CountApproved, entity.CountRejected, entity.CountRecountRequested,
	}
	for _, status := range terminal {
		count := pendingCount(1)
		count.Status = status

		err := conteo.Approve(count, testAdminID, nil, time.Now())
		assert.True(t, domain.IsValidation(err), "Approve sobre %s debe fallar", status)

		err = conteo.Reject(count, testAdminID, "notas", time.Now())
		assert.True(t, domain.IsValidation(err), "Reject sobre %s debe fallar", status)

		err = conteo.RequestRecount(count, testAdminID, nil, false, time.Now())
		assert.True(t, domain.IsValidation(err), "RequestRecount sobre %s debe fallar", status)

		assert.Equal(t, status, count.Status, "el estado no debe cambiar tras una revisión rechazada")
	}
}

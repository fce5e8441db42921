package converter

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/you-humble/garage-ops/internal/model"
)

func TestPartsToXLSX(t *testing.T) {
	t.Parallel()

	data, err := NewXLSXConverter().PartsToXLSX([]*model.Part{
		{PartID: "P-1", PartNumber: "BP-100", Name: "Brake pad", Quantity: 1, MinimumStock: 4, UpdatedAt: time.Now()},
		{PartID: "P-2", PartNumber: "OF-200", Name: "Oil filter", Quantity: 9, MinimumStock: 4, UpdatedAt: time.Now()},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{partsSheet}, f.GetSheetList())

	rows, err := f.GetRows(partsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Part ID", rows[0][0])
	assert.Equal(t, "BP-100", rows[1][1])
	assert.Equal(t, "TRUE", rows[1][8])
	assert.Equal(t, "FALSE", rows[2][8])
}

func TestAppointmentsToXLSXEmpty(t *testing.T) {
	t.Parallel()

	data, err := NewXLSXConverter().AppointmentsToXLSX(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(appointmentsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, appointmentsHeader, rows[0])
}

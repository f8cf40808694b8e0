package admin

import (
	"math/big"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestCatalogShape(t *testing.T) {
	catalog := Catalog()
	assert.Len(t, catalog, 4)

	keys := make([]string, 0, len(catalog))
	for _, rep := range catalog {
		keys = append(keys, rep.Key)
		assert.NotEmpty(t, rep.Title)
		assert.NotEmpty(t, rep.SQL)
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, keys)
}

func TestFindReport(t *testing.T) {
	rep, err := FindReport("3")
	assert.NoError(t, err)
	assert.Contains(t, rep.SQL, "Maintenance")

	_, err = FindReport("")
	assert.ErrorIs(t, err, ErrUnknownReport)

	_, err = FindReport("9")
	assert.ErrorIs(t, err, ErrUnknownReport)
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "", formatValue(nil))
	assert.Equal(t, "85.00", formatValue(85.0))
	assert.Equal(t, "12.50", formatValue(float32(12.5)))
	assert.Equal(t, "7", formatValue(int64(7)))
	assert.Equal(t, "hello", formatValue([]byte("hello")))
	assert.Equal(t, "2025-08-01", formatValue(time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)))
}

func TestFormatValueNumeric(t *testing.T) {
	assert.Equal(t, "85.00", formatValue(pgtype.Numeric{Int: big.NewInt(8500), Exp: -2, Valid: true}))
	assert.Equal(t, "30.00", formatValue(pgtype.Numeric{Int: big.NewInt(30), Valid: true}))
	assert.Equal(t, "0.05", formatValue(pgtype.Numeric{Int: big.NewInt(5), Exp: -2, Valid: true}))
	assert.Equal(t, "", formatValue(pgtype.Numeric{}))
}

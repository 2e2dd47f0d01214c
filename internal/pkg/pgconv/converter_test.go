//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"github.com/sanctumos/clawedroad/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanNumeric(t *testing.T, s string) pgtype.Numeric {
	t.Helper()
	var n pgtype.Numeric
	require.NoError(t, n.Scan(s))
	return n
}

func TestDecimalNumericRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1.5",
		"1.123456789123456789",
		"123456789012.000000000000000001",
		"999999999999999999.999999999999999999",
		"0.000000000000000001",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			d, err := pgconv.DecimalFromNumeric(scanNumeric(t, in))
			require.NoError(t, err)
			assert.True(t, d.Equal(decimal.RequireFromString(in)), "decoded %s", d)

			back := pgconv.DecimalToNumeric(d)
			again, err := pgconv.DecimalFromNumeric(back)
			require.NoError(t, err)
			assert.Equal(t, d.String(), again.String())
			assert.Equal(t, in, again.String())
		})
	}
}

func TestDecimalFromNumeric_Edges(t *testing.T) {
	d, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
	require.NoError(t, err)
	assert.True(t, d.IsZero())

	_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
	assert.ErrorIs(t, err, pgconv.ErrNonFiniteNumeric)

	_, err = pgconv.DecimalFromNumeric(pgtype.Numeric{InfinityModifier: pgtype.Infinity, Valid: true})
	assert.ErrorIs(t, err, pgconv.ErrNonFiniteNumeric)

	d, err = pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(15), Exp: -1, Valid: true})
	require.NoError(t, err)
	assert.Equal(t, "1.5", d.String())
}

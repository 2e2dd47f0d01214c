package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

// Views carry uuid.UUID, decimal.Decimal and time.Time; the API speaks
// strings and unix seconds. Amounts are exact decimal strings. Pointer fields are tagged copier:"-" and set by hand.
var viewConverters = []copier.TypeConverter{
	{
		SrcType: uuid.UUID{},
		DstType: "",
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	},
	{
		SrcType: decimal.Decimal{},
		DstType: "",
		Fn: func(src any) (any, error) {
			return src.(decimal.Decimal).String(), nil
		},
	},
	{
		SrcType: time.Time{},
		DstType: int64(0),
		Fn: func(src any) (any, error) {
			return src.(time.Time).Unix(), nil
		},
	},
}

func copyView(dst, src any) error {
	return copier.CopyWithOption(dst, src, copier.Option{Converters: viewConverters})
}

func uuidString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func unixTime(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	u := t.Unix()
	return &u
}

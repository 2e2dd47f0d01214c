package intent

import (
	"encoding/json"
	"math"
)

type RefundPercent struct {
	value float64
}

// NewRefundPercent accepts values in (0, 100].
func NewRefundPercent(v float64) (RefundPercent, error) {
	if math.IsNaN(v) || v <= 0 || v > 100 {
		return RefundPercent{}, ErrInvalidRefundPercent
	}
	return RefundPercent{value: v}, nil
}

func (r RefundPercent) Value() float64 { return r.value }

// Params is the immutable payload stored alongside an intent.
type Params struct {
	RefundPercent *float64 `json:"refund_percent,omitempty"`
}

func (p Params) Marshal() ([]byte, error) {
	return json.Marshal(p)
}

func UnmarshalParams(raw []byte) (Params, error) {
	var p Params
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return Params{}, ErrInvalidParams
	}
	return p, nil
}

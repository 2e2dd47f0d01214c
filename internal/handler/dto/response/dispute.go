package response

import (
	"github.com/sanctumos/clawedroad/internal/domain/dispute"
	"github.com/sanctumos/clawedroad/internal/usecase/queries"
)

type ClaimResponse struct {
	ID        int64   `json:"id"`
	Claim     string  `json:"claim"`
	Status    string  `json:"status"`
	UserID    *string `json:"user_id,omitempty"`
	Username  *string `json:"username,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

type DisputeResponse struct {
	ID            string           `json:"id"`
	TransactionID string           `json:"transaction_id"`
	Status        string           `json:"status"`
	ResolverID    *string          `json:"resolver_id,omitempty"`
	CreatedAt     int64            `json:"created_at"`
	UpdatedAt     int64            `json:"updated_at"`
	Claims        []*ClaimResponse `json:"claims"`
}

func FromDisputeView(v *queries.DisputeView) *DisputeResponse {
	res := &DisputeResponse{
		ID:            v.ID.String(),
		TransactionID: v.TransactionID.String(),
		Status:        v.Status,
		ResolverID:    uuidString(v.ResolverID),
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
		Claims:        make([]*ClaimResponse, len(v.Claims)),
	}
	for i, c := range v.Claims {
		res.Claims[i] = &ClaimResponse{
			ID:        c.ID,
			Claim:     c.Claim,
			Status:    c.Status,
			UserID:    uuidString(c.UserID),
			Username:  c.Username,
			CreatedAt: c.CreatedAt.Unix(),
		}
	}
	return res
}

// FromDispute renders a dispute returned by a command, without claims.
func FromDispute(d *dispute.Dispute) *DisputeResponse {
	return &DisputeResponse{
		ID:            d.ID().String(),
		TransactionID: d.TransactionID().String(),
		Status:        d.Status().String(),
		ResolverID:    uuidString(d.ResolverID()),
		CreatedAt:     d.CreatedAt().Unix(),
		UpdatedAt:     d.UpdatedAt().Unix(),
		Claims:        []*ClaimResponse{},
	}
}

type OpenDisputeResponse struct {
	ID            string `json:"id"`
	TransactionID string `json:"transaction_id"`
	BuyerID       string `json:"buyer_id"`
	StoreID       string `json:"store_id"`
	Description   string `json:"description"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

func FromOpenDisputes(items []*queries.OpenDisputeItem) ([]*OpenDisputeResponse, error) {
	res := make([]*OpenDisputeResponse, 0, len(items))
	if err := copyView(&res, items); err != nil {
		return nil, err
	}
	return res, nil
}

type ClaimAddedResponse struct {
	ID int64 `json:"id"`
}

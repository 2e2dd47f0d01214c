//go:build e2e

package e2e

import (
	"testing"
	"time"

	"github.com/sanctumos/clawedroad/internal/domain/user"
	"github.com/sanctumos/clawedroad/tests/common/authtest"
	"github.com/sanctumos/clawedroad/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Parties is one escrow transaction together with a token for every kind
// of caller the API distinguishes.
type Parties struct {
	TxID      uuid.UUID
	StoreID   uuid.UUID
	PendingAt time.Time

	BuyerToken    string
	VendorToken   string
	StaffToken    string
	WorkerToken   string
	StrangerToken string
}

// SeedPending creates a transaction whose only status event is PENDING at
// pendingAt.
func (s *SharedSuite) SeedPending(t *testing.T, pendingAt time.Time) Parties {
	t.Helper()
	jwt := authtest.NewJWTHelper(s.Config.JWT)

	buyerID := dbtest.CreateTestUser(t, s.DB, "buyer", string(user.RoleUser))
	vendorID := dbtest.CreateTestUser(t, s.DB, "vendor", string(user.RoleUser))
	strangerID := dbtest.CreateTestUser(t, s.DB, "stranger", string(user.RoleUser))
	staffID := dbtest.CreateTestUser(t, s.DB, "staff", string(user.RoleStaff))
	workerID := dbtest.CreateTestUser(t, s.DB, "worker", string(user.RoleSettlement))
	storeID := dbtest.CreateTestStore(t, s.DB, "store", vendorID)

	pendingAt = pendingAt.UTC().Truncate(time.Second)
	txID := dbtest.CreateTestTransaction(t, s.DB, dbtest.TransactionFixture{
		BuyerID:   buyerID,
		StoreID:   storeID,
		Amount:    decimal.RequireFromString("1.5"),
		PendingAt: pendingAt,
	})

	return Parties{
		TxID:          txID,
		StoreID:       storeID,
		PendingAt:     pendingAt,
		BuyerToken:    jwt.GenerateToken(t, buyerID, user.RoleUser),
		VendorToken:   jwt.GenerateToken(t, vendorID, user.RoleUser),
		StaffToken:    jwt.GenerateToken(t, staffID, user.RoleStaff),
		WorkerToken:   jwt.GenerateToken(t, workerID, user.RoleSettlement),
		StrangerToken: jwt.GenerateToken(t, strangerID, user.RoleUser),
	}
}

// SeedCompleted is SeedPending followed by a COMPLETED event one hour later,
// i.e. the buyer has paid in full.
func (s *SharedSuite) SeedCompleted(t *testing.T) Parties {
	t.Helper()
	p := s.SeedPending(t, time.Now().Add(-2*time.Hour))
	dbtest.AppendTestStatus(t, s.DB, p.TxID, "COMPLETED", "1.5", p.PendingAt.Add(time.Hour))
	return p
}

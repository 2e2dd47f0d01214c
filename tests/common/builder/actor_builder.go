//go:build unit || e2e

package builder

import (
	"github.com/sanctumos/clawedroad/internal/domain/user"
	"github.com/sanctumos/clawedroad/internal/usecase/shared"

	"github.com/google/uuid"
)

func Buyer(tx *TransactionBuilder) shared.Actor {
	return shared.Actor{UserID: tx.BuyerID, Role: user.RoleUser}
}

// Stranger has no relationship to any transaction built here.
func Stranger() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleUser}
}

func Staff() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleStaff}
}

func Worker() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleSettlement}
}

// Vendor returns a store member; pass the id to MemberStoreIDs expectations.
func Vendor() shared.Actor {
	return shared.Actor{UserID: uuid.New(), Role: user.RoleUser}
}

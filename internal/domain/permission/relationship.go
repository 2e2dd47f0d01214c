package permission

import "github.com/google/uuid"

type Subject struct {
	UserID         uuid.UUID
	IsStaff        bool
	MemberStoreIDs []uuid.UUID
	BuyerID        uuid.UUID
	StoreID        uuid.UUID
}

// Relate lists every relationship the subject holds to a transaction, or
// just RelationshipNone.
func Relate(s Subject) []Relationship {
	var rels []Relationship
	if s.UserID != uuid.Nil && s.UserID == s.BuyerID {
		rels = append(rels, RelationshipBuyer)
	}
	for _, id := range s.MemberStoreIDs {
		if id == s.StoreID {
			rels = append(rels, RelationshipVendor)
			break
		}
	}
	if s.IsStaff {
		rels = append(rels, RelationshipStaff)
	}
	if len(rels) == 0 {
		return []Relationship{RelationshipNone}
	}
	return rels
}

// HasAny reports whether the relationships grant any access at all.
func HasAny(rels []Relationship) bool {
	for _, r := range rels {
		if r != RelationshipNone {
			return true
		}
	}
	return false
}

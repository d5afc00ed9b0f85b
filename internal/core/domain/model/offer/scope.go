package offer

import (
	"foodcourt/internal/core/domain/model/kernel"
)

// ScopeKind discriminates the variants of an offer's applicability scope.
type ScopeKind int

const (
	// ScopeKindAll applies the offer to the cart's whole subtotal.
	ScopeKindAll ScopeKind = iota + 1
	// ScopeKindRestaurant applies the offer only to items of one restaurant.
	ScopeKindRestaurant
	// ScopeKindItems applies the offer only to an explicit list of menu items.
	ScopeKindItems
)

// Scope is a tagged variant describing what part of a cart an offer applies
// to. Pricing code switches exhaustively on Kind and reads only the fields of
// the matched variant; there is no shape sniffing.
//
// Construct scopes through ScopeAll, ScopeRestaurant, or ScopeItems.
type Scope struct {
	kind         ScopeKind
	restaurantID kernel.UUID
	itemIDs      []kernel.UUID
}

// ScopeAll returns the scope covering the whole cart.
func ScopeAll() Scope {
	return Scope{kind: ScopeKindAll}
}

// ScopeRestaurant returns the scope covering only items owned by the given
// restaurant.
func ScopeRestaurant(restaurantID kernel.UUID) Scope {
	return Scope{kind: ScopeKindRestaurant, restaurantID: restaurantID}
}

// ScopeItems returns the scope covering only the listed menu items.
func ScopeItems(itemIDs []kernel.UUID) Scope {
	return Scope{kind: ScopeKindItems, itemIDs: itemIDs}
}

// Kind returns the scope's variant tag.
func (s Scope) Kind() ScopeKind {
	return s.kind
}

// RestaurantID returns the restaurant of a ScopeKindRestaurant scope.
func (s Scope) RestaurantID() kernel.UUID {
	return s.restaurantID
}

// ItemIDs returns the item list of a ScopeKindItems scope.
func (s Scope) ItemIDs() []kernel.UUID {
	return s.itemIDs
}

// CoversItem reports whether a cart line with the given item and restaurant
// falls inside the scope.
func (s Scope) CoversItem(itemID, restaurantID kernel.UUID) bool {
	switch s.kind {
	case ScopeKindAll:
		return true
	case ScopeKindRestaurant:
		return s.restaurantID.IsEqual(restaurantID)
	case ScopeKindItems:
		for _, id := range s.itemIDs {
			if id.IsEqual(itemID) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

package components

import "github.com/Mandrupnicolai/ValentinePage/pkg/types"

// GiftCardComponent marks a gift card on the gift page.
type GiftCardComponent struct {
	Kind   types.GiftKind
	Opened bool
}

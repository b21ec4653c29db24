// Package types holds the small shared value types used across packages.
// It imports nothing from the rest of the module so every layer can use it.
package types

import "fmt"

// GiftKind identifies one of the three gifts on the gift page.
type GiftKind int

const (
	// GiftUnknown is the zero value and never names a real gift.
	GiftUnknown GiftKind = iota
	// GiftFlowers is the flower voucher.
	GiftFlowers
	// GiftChocolate is the chocolate box.
	GiftChocolate
	// GiftCountdown is the countdown to Valentine's Day.
	GiftCountdown
)

// AllGifts lists the gifts in the order they appear on the gift page.
var AllGifts = []GiftKind{GiftFlowers, GiftChocolate, GiftCountdown}

// String returns the gift's identifier as used in config and logs.
func (g GiftKind) String() string {
	switch g {
	case GiftFlowers:
		return "flowers"
	case GiftChocolate:
		return "chocolate"
	case GiftCountdown:
		return "countdown"
	default:
		return "unknown"
	}
}

// ParseGiftKind maps an identifier produced by String back to its kind.
func ParseGiftKind(s string) (GiftKind, error) {
	for _, g := range AllGifts {
		if g.String() == s {
			return g, nil
		}
	}
	return GiftUnknown, fmt.Errorf("unknown gift kind %q", s)
}

// Page is one of the two full-screen pages.
type Page int

const (
	// PageGreeting is the "will you be my Valentine" page.
	PageGreeting Page = iota + 1
	// PageGifts is the gift picker shown after accepting.
	PageGifts
)

func (p Page) String() string {
	switch p {
	case PageGreeting:
		return "page1"
	case PageGifts:
		return "page2"
	default:
		return "none"
	}
}

// Element names a presentation element whose geometry the core may ask for.
type Element int

const (
	ElementAccept Element = iota + 1
	ElementDecline
)

func (e Element) String() string {
	switch e {
	case ElementAccept:
		return "accept"
	case ElementDecline:
		return "decline"
	default:
		return "unknown"
	}
}

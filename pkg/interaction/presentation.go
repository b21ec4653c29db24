package interaction

import (
	"math/rand"

	"github.com/Mandrupnicolai/ValentinePage/pkg/config"
	"github.com/Mandrupnicolai/ValentinePage/pkg/countdown"
	"github.com/Mandrupnicolai/ValentinePage/pkg/types"
)

// Presentation is what a gift reveals in the modal.
// It is one of FlowerVoucher, ChocolateBox or CountdownPresentation.
type Presentation interface {
	Kind() types.GiftKind
}

const (
	FlowerVoucherText = "This voucher can be redeemed for one beautiful bouquet of flowers 💐"
	ChocolateCaption  = "A heart full of chocolates just for you."
	CountdownMessage  = "Counting down to our Valentine's day⏳💕"
)

// FlowerVoucher is the flowers gift.
type FlowerVoucher struct {
	VoucherText string
}

func (FlowerVoucher) Kind() types.GiftKind { return types.GiftFlowers }

// ChocolateBox is the chocolate gift. ImagePath may not exist; the
// presentation layer shows a placeholder then.
type ChocolateBox struct {
	Caption   string
	ImagePath string
}

func (ChocolateBox) Kind() types.GiftKind { return types.GiftChocolate }

// FloatingHeart is a decorative heart in the countdown modal.
type FloatingHeart struct {
	X     float64 // fraction of the modal width, [0, 1)
	Delay float64 // seconds before it starts rising, [0, 3)
}

// CountdownPresentation is the countdown gift. The digits are pushed
// separately through PresentationSink.RenderCountdown.
type CountdownPresentation struct {
	Message string
	Labels  [4]string
	Hearts  []FloatingHeart
}

func (CountdownPresentation) Kind() types.GiftKind { return types.GiftCountdown }

// NewPresentation builds the presentation for kind. rng places the
// countdown hearts.
func NewPresentation(kind types.GiftKind, rng *rand.Rand, chocolateImage string) (Presentation, bool) {
	switch kind {
	case types.GiftFlowers:
		return FlowerVoucher{VoucherText: FlowerVoucherText}, true
	case types.GiftChocolate:
		return ChocolateBox{Caption: ChocolateCaption, ImagePath: chocolateImage}, true
	case types.GiftCountdown:
		hearts := make([]FloatingHeart, config.CountdownHearts)
		for i := range hearts {
			hearts[i] = FloatingHeart{
				X:     rng.Float64(),
				Delay: rng.Float64() * config.CountdownHeartMaxDelay,
			}
		}
		return CountdownPresentation{
			Message: CountdownMessage,
			Labels:  countdown.Labels,
			Hearts:  hearts,
		}, true
	default:
		return nil, false
	}
}

package components

// ParticleKind selects how a particle looks and moves.
type ParticleKind int

const (
	// ParticleExplosionHeart is a heart flung out of a burst.
	ParticleExplosionHeart ParticleKind = iota
	// ParticleExplosionConfetti is a confetti strip flung out of a burst.
	ParticleExplosionConfetti
	// ParticleAmbientHeart floats up from the bottom of the screen.
	ParticleAmbientHeart
	// ParticleAmbientSparkle twinkles in place.
	ParticleAmbientSparkle
	// ParticleCursorHeart trails behind the pointer.
	ParticleCursorHeart
	// ParticleModalHeart rises through the countdown modal after its delay.
	ParticleModalHeart
)

func (k ParticleKind) String() string {
	switch k {
	case ParticleExplosionHeart:
		return "explosion-heart"
	case ParticleExplosionConfetti:
		return "explosion-confetti"
	case ParticleAmbientHeart:
		return "bg-heart"
	case ParticleAmbientSparkle:
		return "bg-sparkle"
	case ParticleCursorHeart:
		return "cursor-heart"
	case ParticleModalHeart:
		return "modal-heart"
	default:
		return "unknown"
	}
}

// ParticleComponent is the animation state of one decorative particle.
// The particle's drawn position is Origin + (DX, DY) * eased progress,
// so DX/DY are the animation end-state offset rather than a velocity.
//
// A non-looping particle ends its animation when Age reaches Duration and
// the ParticleSystem removes it then. A looping particle restarts its
// animation and relies on a LifetimeComponent for removal.
type ParticleComponent struct {
	Kind ParticleKind

	OriginX float64
	OriginY float64
	DX      float64
	DY      float64

	Age      float64 // seconds into the current animation cycle
	Duration float64 // seconds per animation cycle
	Delay    float64 // seconds before the first cycle starts
	Loops    bool

	Size     float64
	Rotation float64 // radians
	Hue      int     // palette index
}

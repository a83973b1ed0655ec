package aging

import "github.com/osse101/GildedRose_Go/internal/domain"

// stepNormal loses one quality a day, two once the sell-in has run out.
// SellIn stays at zero once reached.
func stepNormal(s State) State {
	if s.SellIn == 0 {
		s.Quality -= NormalExpiredDecay
	} else {
		s.Quality -= NormalDecay
		s.SellIn--
	}
	s.Quality = max(domain.MinQuality, s.Quality)
	return s
}

// stepAgedBrie gains one quality a day. SellIn is not clamped at zero.
func stepAgedBrie(s State) State {
	s.Quality += AgedBrieGain
	s.SellIn--
	s.Quality = min(domain.MaxQuality, s.Quality)
	return s
}

// stepBackstagePass rises faster as the concert nears and drops to zero
// on the day the sell-in (before decrement) reaches zero.
func stepBackstagePass(s State) State {
	switch {
	case s.SellIn == 0:
		s.Quality = 0
	case s.SellIn <= BackstageFinalWindow:
		s.Quality += BackstageFinalGain
	case s.SellIn <= BackstageNearWindow:
		s.Quality += BackstageNearGain
	default:
		s.Quality += BackstageFarGain
	}
	s.SellIn = max(0, s.SellIn-1)
	s.Quality = min(domain.MaxQuality, s.Quality)
	return s
}

// stepConjured decays twice as fast as a normal item
func stepConjured(s State) State {
	if s.SellIn == 0 {
		s.Quality -= 2 * NormalExpiredDecay
	} else {
		s.Quality -= 2 * NormalDecay
		s.SellIn--
	}
	s.Quality = max(domain.MinQuality, s.Quality)
	return s
}

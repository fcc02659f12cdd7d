package scoring

import (
	"math"

	"github.com/tripplanner/tripplanner/pkg/trip"
)

const (
	transportPriceCap     = 200.0
	transportDurationCap  = 420.0
	transportTransfersCap = 2.0

	lodgingPriceCap     = 180.0
	lodgingMaxRating    = 5.0
	lodgingReviewsScale = 2000.0
	lodgingReviewsBonus = 0.1
)

// capped maps a lower-is-better value onto [0, 1], zero once it reaches the cap
func capped(value float64, limit float64) float64 {
	return math.Max(0, 1-value/limit)
}

// ScoreTransport is the weighted sum of price, duration and transfer scores. Each
// falls linearly from 1 and stays at 0 past its cap of €200, 420 minutes or 2 transfers.
func ScoreTransport(option trip.TransportOption, weights TransportWeights) float64 {
	priceScore := capped(option.Price, transportPriceCap)
	timeScore := capped(float64(option.DurationMinutes), transportDurationCap)
	transfersScore := capped(float64(option.Transfers), transportTransfersCap)

	return weights.Price*priceScore + weights.Time*timeScore + weights.Transfers*transfersScore
}

// ScoreLodging can reach 1.1 with default weights: heavily reviewed options get
// up to 0.1 on top of the weighted rating and price.
func ScoreLodging(option trip.LodgingOption, weights LodgingWeights) float64 {
	ratingScore := option.Rating / lodgingMaxRating
	priceScore := capped(option.PricePerNight, lodgingPriceCap)
	reviewsBonus := math.Min(lodgingReviewsBonus, (float64(option.Reviews)/lodgingReviewsScale)*lodgingReviewsBonus)

	return weights.Rating*ratingScore + weights.Price*priceScore + reviewsBonus
}

// TransportScorer binds weights for use with PickBest
func TransportScorer(weights TransportWeights) func(trip.TransportOption) float64 {
	return func(option trip.TransportOption) float64 {
		return ScoreTransport(option, weights)
	}
}

// LodgingScorer binds weights for use with PickBest
func LodgingScorer(weights LodgingWeights) func(trip.LodgingOption) float64 {
	return func(option trip.LodgingOption) float64 {
		return ScoreLodging(option, weights)
	}
}

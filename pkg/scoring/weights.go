package scoring

// TransportWeights combine the capped price, duration and transfer sub-scores
type TransportWeights struct {
	Price     float64
	Time      float64
	Transfers float64
}

// LodgingWeights combine rating and price. The review bonus is not weighted.
type LodgingWeights struct {
	Rating float64
	Price  float64
}

// Weights are not normalised, callers may pass any non-negative values
type Weights struct {
	Transport TransportWeights
	Lodging   LodgingWeights
}

var DefaultTransportWeights = TransportWeights{
	Price:     0.55,
	Time:      0.35,
	Transfers: 0.10,
}

var DefaultLodgingWeights = LodgingWeights{
	Rating: 0.7,
	Price:  0.3,
}

// DefaultWeights favours price over travel time, with a small transfer penalty
func DefaultWeights() Weights {
	return Weights{
		Transport: DefaultTransportWeights,
		Lodging:   DefaultLodgingWeights,
	}
}

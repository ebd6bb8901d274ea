package entity

type Prediction struct {
	Category      string
	Confidence    float64            // probability of Category
	Probabilities map[string]float64 // class label -> probability
}

type Health struct {
	Status      string
	Version     string
	ModelLoaded bool
}

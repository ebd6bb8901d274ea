package entity

// ApplicantProfile holds the raw attributes a client collects before they are
// turned into a FeatureRecord.
type ApplicantProfile struct {
	Age        int
	WeightKg   float64
	HeightM    float64
	IncomeLPA  float64
	Smoker     bool
	City       string
	Occupation string
}

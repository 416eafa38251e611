package engine

import "time"

// Stats summarises the run since the board was last cleared or randomized.
type Stats struct {
	Generation           int
	Population           int
	AveragePopulation    float64
	GenerationsPerSecond float64
}

func (s *Stats) update(population int, sinceLast time.Duration) {
	s.Generation++
	s.Population = population
	if sinceLast > 0 {
		s.GenerationsPerSecond = 1.0 / sinceLast.Seconds()
	}

	// Exponential moving average, seeded by the first sample.
	if s.Generation == 1 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = s.AveragePopulation*0.9 + float64(population)*0.1
	}
}

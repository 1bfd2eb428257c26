package grade

import "math"

// Band is a percentage range used to summarise scores.
type Band string

// Bands are contiguous over [0, 100]; a percentage on a boundary belongs to the higher band.
const (
	BandExcellent Band = "90-100" // [90, 100]
	BandGood      Band = "70-89"  // [70, 90)
	BandAverage   Band = "50-69"  // [50, 70)
	BandPoor      Band = "0-49"   // [0, 50)
)

// Bands lists every band from the highest to the lowest.
var Bands = []Band{BandExcellent, BandGood, BandAverage, BandPoor}

// BandFor places a percentage in its band.
func BandFor(pct float64) Band {
	switch {
	case pct >= 90:
		return BandExcellent
	case pct >= 70:
		return BandGood
	case pct >= 50:
		return BandAverage
	default:
		return BandPoor
	}
}

// Distribution counts scores per band.
type Distribution struct {
	Excellent int `json:"90-100"`
	Good      int `json:"70-89"`
	Average   int `json:"50-69"`
	Poor      int `json:"0-49"`
}

func (d Distribution) Count(b Band) int {
	switch b {
	case BandExcellent:
		return d.Excellent
	case BandGood:
		return d.Good
	case BandAverage:
		return d.Average
	case BandPoor:
		return d.Poor
	}
	return 0
}

func (d *Distribution) add(b Band) {
	switch b {
	case BandExcellent:
		d.Excellent++
	case BandGood:
		d.Good++
	case BandAverage:
		d.Average++
	case BandPoor:
		d.Poor++
	}
}

func percentage(score, outOf int) float64 {
	return float64(score) / float64(outOf) * 100
}

// ClassAverage is the mean recorded score rounded to one decimal place, 0 without scores.
func ClassAverage(s *Store) float64 {
	if len(s.scores) == 0 {
		return 0
	}
	var sum int
	for _, score := range s.scores {
		sum += score
	}
	return math.Round(float64(sum)/float64(len(s.scores))*10) / 10
}

// AveragePercentage is the class average as a rounded percentage of the maximum.
// It is not available while the average is 0.
func AveragePercentage(s *Store) (int, bool) {
	avg := ClassAverage(s)
	if avg <= 0 {
		return 0, false
	}
	return int(math.Round(avg / float64(s.outOf) * 100)), true
}

// CompletionPercentage is the rounded share of totalStudents with a recorded score.
// An empty roster is 0% complete.
func CompletionPercentage(s *Store, totalStudents int) int {
	if totalStudents <= 0 {
		return 0
	}
	return int(math.Round(float64(len(s.scores)) / float64(totalStudents) * 100))
}

// ScoreDistribution buckets every recorded score by its unrounded percentage.
func ScoreDistribution(s *Store) Distribution {
	var d Distribution
	for _, score := range s.scores {
		d.add(BandFor(percentage(score, s.outOf)))
	}
	return d
}

// PercentageFor is the rounded percentage of a student's score.
// ok is false when the student has no score, which is not the same as 0%.
func PercentageFor(s *Store, studentID string) (pct int, ok bool) {
	score, ok := s.scores[studentID]
	if !ok {
		return 0, false
	}
	return int(math.Round(percentage(score, s.outOf))), true
}

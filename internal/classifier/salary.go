package classifier

// Salary thresholds assume USD per year. A single bound is used as the
// point estimate; when both are present the mean is used.

func salaryPoint(salaryMin, salaryMax *int) (float64, bool) {
	switch {
	case salaryMin != nil && salaryMax != nil:
		return float64(*salaryMin+*salaryMax) / 2, true
	case salaryMin != nil:
		return float64(*salaryMin), true
	case salaryMax != nil:
		return float64(*salaryMax), true
	}
	return 0, false
}

// SalaryToLevel maps salary bounds to a level. Returns false when both
// bounds are absent; salary never forces a fallback value.
func SalaryToLevel(salaryMin, salaryMax *int) (Level, bool) {
	salary, ok := salaryPoint(salaryMin, salaryMax)
	if !ok {
		return "", false
	}

	switch {
	case salary < 60000:
		return LevelEntry, true
	case salary < 100000:
		return LevelMid, true
	case salary < 200000:
		return LevelSenior, true
	default:
		return LevelExecutive, true
	}
}

// SalaryBand returns a human-readable band string for the salary bounds.
// Partitions at the same boundaries as SalaryToLevel.
func SalaryBand(salaryMin, salaryMax *int) (string, bool) {
	salary, ok := salaryPoint(salaryMin, salaryMax)
	if !ok {
		return "", false
	}

	switch {
	case salary < 60000:
		return "<$60k (entry)", true
	case salary < 100000:
		return "$60k-$100k (mid)", true
	case salary < 200000:
		return "$100k-$200k (senior)", true
	default:
		return ">$200k (executive)", true
	}
}

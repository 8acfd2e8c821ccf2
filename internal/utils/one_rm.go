package utils

func CalculateEpley1RM(weight float64, reps int) float64 {
	if reps <= 0 {
		return 0
	}

	return weight * (1 + float64(reps)/30)
}

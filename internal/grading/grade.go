package grading

// Grade maps a score percentage to a letter grade. The ladder is fixed and
// total: any real input, including negatives and values above 100, lands on
// exactly one grade.
func Grade(percentage float64) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 85:
		return "A"
	case percentage >= 80:
		return "A-"
	case percentage >= 75:
		return "B+"
	case percentage >= 70:
		return "B"
	case percentage >= 65:
		return "B-"
	case percentage >= 60:
		return "C+"
	case percentage >= 55:
		return "C"
	case percentage >= 50:
		return "C-"
	case percentage >= 45:
		return "D"
	default:
		return "F"
	}
}

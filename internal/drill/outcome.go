package drill

// Outcome classifies one submitted answer.
type Outcome int

const (
	// Invalid means the input could not be parsed into the expected answer
	// type at all. Invalid submissions are never recorded as attempts.
	Invalid Outcome = iota
	// Incorrect means the input parsed but did not match the expected answer.
	Incorrect
	// Correct means the input matched the expected answer.
	Correct
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "invalid"
	}
}

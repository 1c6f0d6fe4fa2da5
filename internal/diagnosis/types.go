package diagnosis

import "github.com/abhisek/timesmaster/internal/problemgen"

// ErrorCategory classifies a wrong answer.
type ErrorCategory string

const (
	CategoryNeighbourFact ErrorCategory = "neighbour-fact"
	CategoryAdditionMixup ErrorCategory = "addition-mixup"
	CategoryDigitSwap     ErrorCategory = "digit-swap"
	CategorySpeedRush     ErrorCategory = "speed-rush"
	CategoryCareless      ErrorCategory = "careless"
	CategoryUnclassified  ErrorCategory = "unclassified"
)

// ClassifyInput holds the context for classification.
type ClassifyInput struct {
	Question       problemgen.Question
	Given          int
	ResponseTimeMs int
	FactAccuracy   float64 // Accuracy on this fact before the answer (0.0–1.0)
}

// DiagnosisResult is the output of classifying a wrong answer.
type DiagnosisResult struct {
	Category       ErrorCategory
	Confidence     float64 // 0.0–1.0
	ClassifierName string
	Hint           string // Short line shown under the feedback; may be empty
}

package diagnosis

import (
	"fmt"

	"github.com/abhisek/timesmaster/internal/problemgen"
)

// Service classifies wrong answers with rule-based classifiers.
type Service struct {
	classifiers []Classifier
}

// NewService creates a diagnosis service with the default classifiers.
func NewService() *Service {
	return &Service{classifiers: DefaultClassifiers()}
}

// Diagnose classifies a wrong answer. A negative responseTimeMs means the
// time is unknown and timing rules are skipped.
func (s *Service) Diagnose(q problemgen.Question, given, responseTimeMs int, factAccuracy float64) *DiagnosisResult {
	input := &ClassifyInput{
		Question:       q,
		Given:          given,
		ResponseTimeMs: responseTimeMs,
		FactAccuracy:   factAccuracy,
	}

	cat, conf, name := RunClassifiers(s.classifiers, input)
	if cat == "" {
		return &DiagnosisResult{
			Category:       CategoryUnclassified,
			ClassifierName: "none",
		}
	}
	return &DiagnosisResult{
		Category:       cat,
		Confidence:     conf,
		ClassifierName: name,
		Hint:           hintFor(cat, input),
	}
}

func hintFor(cat ErrorCategory, input *ClassifyInput) string {
	q := input.Question
	switch cat {
	case CategoryNeighbourFact:
		if fact, ok := neighbourOf(q.Operand1, q.Operand2, input.Given); ok {
			return fmt.Sprintf("Close! %d is %s.", input.Given, fact)
		}
		return ""
	case CategoryAdditionMixup:
		return fmt.Sprintf("That's %d + %d. We're multiplying!", q.Operand1, q.Operand2)
	case CategoryDigitSwap:
		return "Right digits, wrong order!"
	case CategorySpeedRush:
		return "Take your time."
	case CategoryCareless:
		return "You usually get this one!"
	default:
		return ""
	}
}

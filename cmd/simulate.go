package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/mastery"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/store"
)

var errBadSimulation = errors.New("invalid simulation parameters")

// learner scripts the answers of a simulated player.
type learner struct {
	Questions int
	Accuracy  float64
	DontKnow  float64
}

func (l learner) validate() error {
	var errs []error
	if l.Questions <= 0 {
		errs = append(errs, fmt.Errorf("questions must be positive, got %d", l.Questions))
	}
	if l.Accuracy < 0 || l.Accuracy > 1 {
		errs = append(errs, fmt.Errorf("accuracy must be within 0..1, got %g", l.Accuracy))
	}
	if l.DontKnow < 0 || l.DontKnow > 1 {
		errs = append(errs, fmt.Errorf("dont-know must be within 0..1, got %g", l.DontKnow))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", errBadSimulation, errors.Join(errs...))
	}
	return nil
}

var sim = learner{Questions: 200, Accuracy: 0.8, DontKnow: 0.05}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a headless session with a scripted learner",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := sim.validate(); err != nil {
			return err
		}

		logger, closer, err := cfg.OpenLogger()
		if err != nil {
			return err
		}
		defer closer.Close()

		st, err := store.OpenMemory()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		clock := &fakeClock{now: time.Now()}
		eng, err := newEngine(cfg, st, logger, engine.WithClock(clock.Now))
		if err != nil {
			return err
		}

		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng := rand.New(rand.NewPCG(seed, seed>>1|1))

		return simulate(cmd.Context(), cmd.OutOrStdout(), eng, clock, rng, sim)
	},
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&sim.Questions, "questions", sim.Questions, "number of questions to answer")
	f.Float64Var(&sim.Accuracy, "accuracy", sim.Accuracy, "chance of a correct answer when attempting")
	f.Float64Var(&sim.DontKnow, "dont-know", sim.DontKnow, "chance of answering \"don't know\"")
}

// fakeClock is advanced by the simulated response times.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// simulate answers l.Questions questions and prints a report to w.
func simulate(ctx context.Context, w io.Writer, eng *engine.Engine, clock *fakeClock, rng *rand.Rand, l learner) error {
	for range l.Questions {
		if err := ctx.Err(); err != nil {
			return err
		}

		q := eng.GenerateQuestion()
		clock.Advance(time.Second + time.Duration(rng.IntN(3000))*time.Millisecond)

		roll := rng.Float64()
		switch {
		case roll < l.DontKnow:
			eng.SubmitDontKnow()
		case roll < l.DontKnow+(1-l.DontKnow)*l.Accuracy:
			if _, err := eng.SubmitAnswer(strconv.Itoa(q.Answer)); err != nil {
				return err
			}
		default:
			if _, err := eng.SubmitAnswer(strconv.Itoa(wrongAnswer(q, rng))); err != nil {
				return err
			}
		}

		// Nobody watches the popups.
		eng.Badges().Clear()
	}

	summary := eng.Finish()

	fmt.Fprintf(w, "Answered:      %d (%d correct, %d wrong, %d don't know)\n",
		summary.TotalAnswered, summary.TotalCorrect, summary.TotalIncorrect, summary.TotalDontKnow)
	fmt.Fprintf(w, "Accuracy:      %.0f%%\n", summary.Accuracy*100)
	fmt.Fprintf(w, "Best streak:   %d\n", summary.MaxStreak)
	fmt.Fprintf(w, "Mastered:      %d/%d\n", summary.MasteredCount, len(mastery.GridFacts()))
	fmt.Fprintf(w, "Duration:      %s\n", summary.Duration.Round(time.Second))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Achievements:")
	if len(summary.Achievements) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, name := range summary.Achievements {
		fmt.Fprintln(w, "  -", name)
	}

	stats, err := eng.TableAccuracy(ctx)
	if err != nil {
		return fmt.Errorf("table accuracy: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Tables:")
	tables := make([]int, 0, len(stats))
	for n := range stats {
		tables = append(tables, n)
	}
	slices.Sort(tables)
	for _, n := range tables {
		s := stats[n]
		fmt.Fprintf(w, "  %d×  %3d/%-3d  %3.0f%%\n", n, s.Correct, s.Answered, s.Accuracy()*100)
	}

	fmt.Fprintln(w)
	fmt.Fprint(w, renderGrid(eng.History()))
	return nil
}

// wrongAnswer picks a plausible mistake: a neighbouring product or an
// off-by-one.
func wrongAnswer(q problemgen.Question, rng *rand.Rand) int {
	candidates := []int{
		q.Answer - q.Operand1,
		q.Answer + q.Operand1,
		q.Answer - q.Operand2,
		q.Answer + q.Operand2,
		q.Answer + 1,
		q.Answer - 1,
	}
	candidates = slices.DeleteFunc(candidates, func(n int) bool {
		return n < 0 || n == q.Answer
	})
	if len(candidates) == 0 {
		return q.Answer + 1
	}
	return candidates[rng.IntN(len(candidates))]
}

var statusGlyph = map[mastery.Status]string{
	mastery.StatusNew:           "·",
	mastery.StatusLearning:      "L",
	mastery.StatusNeedsPractice: "!",
	mastery.StatusMastered:      "★",
}

// renderGrid draws the 9×9 fact grid, one glyph per fact.
func renderGrid(h *mastery.History) string {
	var b strings.Builder
	b.WriteString("   ")
	for col := 1; col <= 9; col++ {
		fmt.Fprintf(&b, " %d", col)
	}
	b.WriteString("\n")
	for row := 1; row <= 9; row++ {
		fmt.Fprintf(&b, "%d× ", row)
		for col := 1; col <= 9; col++ {
			b.WriteString(" " + statusGlyph[h.Status(mastery.Fact{A: row, B: col})])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n· new  L learning  ! needs practice  ★ mastered\n")
	return b.String()
}

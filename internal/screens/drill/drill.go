// Package drill is the question-and-answer screen.
package drill

import (
	"errors"
	"slices"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/timesmaster/internal/achievements"
	"github.com/abhisek/timesmaster/internal/engine"
	"github.com/abhisek/timesmaster/internal/problemgen"
	"github.com/abhisek/timesmaster/internal/router"
	"github.com/abhisek/timesmaster/internal/screen"
	"github.com/abhisek/timesmaster/internal/screens/summary"
	"github.com/abhisek/timesmaster/internal/session"
	"github.com/abhisek/timesmaster/internal/ui/components"
	"github.com/abhisek/timesmaster/internal/ui/layout"
)

// DrillScreen shows one question at a time and advances on its own after
// the feedback delay. Achievement popups run on their own timer so they
// never hold up the next question.
type DrillScreen struct {
	env     *screen.Env
	input   components.AnswerInput
	result  *engine.Result
	warning string

	// seq and badgeSeq tag timer messages; stale timers are ignored.
	seq      int
	badgeSeq int
	leaving  bool
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)
var _ screen.EscapeHandler = (*DrillScreen)(nil)

// New creates a drill screen backed by env's engine.
func New(env *screen.Env) *DrillScreen {
	return &DrillScreen{
		env:   env,
		input: components.NewAnswerInput("?", false),
	}
}

// Init resumes an unanswered question or asks a new one. A question that
// the current difficulty can no longer produce is replaced.
func (d *DrillScreen) Init() tea.Cmd {
	d.leaving = false
	eng := d.env.Engine

	var cmds []tea.Cmd
	q, ok := eng.Current()
	if ok && !eng.Locked() && slices.Contains(problemgen.CandidatePool(eng.OperandSet()), q.Fact()) {
		cmds = append(cmds, d.input.Reset())
	} else {
		cmds = append(cmds, d.nextQuestion())
	}
	if eng.Badges().State() == achievements.QueuePresenting {
		cmds = append(cmds, d.badgeTimer())
	}
	return tea.Batch(cmds...)
}

func (d *DrillScreen) HandlesEscape() bool {
	return true
}

func (d *DrillScreen) Title() string {
	return "Drill"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.result != nil {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Finish"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "?", Description: "I don't know"},
		{Key: "Esc", Description: "Finish"},
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if msg.owner != d || msg.seq != d.seq || d.leaving {
			return d, nil
		}
		return d, d.nextQuestion()

	case badgeDoneMsg:
		if msg.owner != d || msg.seq != d.badgeSeq {
			return d, nil
		}
		if d.env.Engine.Badges().Complete() {
			return d, d.badgeTimer()
		}
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return d, d.leave()
	case "enter":
		return d.submit()
	case "?":
		return d.dontKnow()
	}

	if d.result != nil {
		return d, nil
	}
	d.warning = ""
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *DrillScreen) submit() (screen.Screen, tea.Cmd) {
	res, err := d.env.Engine.SubmitAnswer(d.input.Value())
	if errors.Is(err, problemgen.ErrInvalidAnswer) {
		d.warning = session.InvalidInputText
		return d, nil
	}
	if err != nil {
		d.env.Logger.Warn("submit answer", "error", err)
		return d, nil
	}
	if res == nil {
		return d, nil
	}

	d.input.Submit(res.Correct())
	delay := d.env.Timing.Incorrect
	if res.Correct() {
		delay = d.env.Timing.Correct
	}
	return d, d.show(res, delay)
}

func (d *DrillScreen) dontKnow() (screen.Screen, tea.Cmd) {
	res := d.env.Engine.SubmitDontKnow()
	if res == nil {
		return d, nil
	}
	d.input.Submit(false)
	return d, d.show(res, d.env.Timing.DontKnow)
}

// show displays res and schedules the next question after delay.
func (d *DrillScreen) show(res *engine.Result, delay time.Duration) tea.Cmd {
	d.result = res
	d.warning = ""

	seq := d.seq
	cmds := []tea.Cmd{
		tea.Tick(delay, func(time.Time) tea.Msg { return advanceMsg{owner: d, seq: seq} }),
	}
	if res.BadgeStarted {
		cmds = append(cmds, d.badgeTimer())
	}
	return tea.Batch(cmds...)
}

func (d *DrillScreen) nextQuestion() tea.Cmd {
	d.seq++
	d.result = nil
	d.warning = ""
	d.env.Engine.GenerateQuestion()
	return d.input.Reset()
}

func (d *DrillScreen) badgeTimer() tea.Cmd {
	d.badgeSeq++
	seq := d.badgeSeq
	return tea.Tick(d.env.Timing.Badge, func(time.Time) tea.Msg {
		return badgeDoneMsg{owner: d, seq: seq}
	})
}

// leave swaps the drill for the session summary. The session itself keeps
// running so Play resumes it.
func (d *DrillScreen) leave() tea.Cmd {
	d.leaving = true
	return router.Swap(summary.New(d.env))
}

package sequencer

import (
	"math/rand"
	"sync"
	"time"

	"gridtone/contrib"
	"gridtone/debug"
)

// Trigger is the sound contract the engine dispatches into. Every
// call is fire-and-forget: implementations schedule audio for the
// given time and never report errors back into the engine.
type Trigger interface {
	Note(scale ScaleID, note Note, at time.Time, dur time.Duration)
	Chord(scale ScaleID, root int, at time.Time, dur time.Duration)
	Kick(at time.Time)
	Snare(at time.Time)
	HiHat(at time.Time, intensity float64)
}

// PlaybackState is the single source of truth read by the UI while a
// session runs. Owned exclusively by the Engine.
type PlaybackState struct {
	Column  int // -1 when stopped
	Scale   ScaleID
	Mood    string
	Tempo   int
	Playing bool
}

func initialState() PlaybackState {
	return PlaybackState{
		Column: -1,
		Scale:  ScalePentatonic,
		Mood:   MoodZen,
		Tempo:  TempoMin,
	}
}

// session is one play/stop cycle. A fresh stop channel per session
// guarantees no straggler events from a stopped session can fire.
type session struct {
	stop chan struct{}
}

// Engine steps through the contribution grid in musical time, one
// column per eighth-note subdivision, deriving mood, chord, drums and
// notes for each column and dispatching them to the Trigger.
type Engine struct {
	mu   sync.Mutex
	trig Trigger

	state    PlaybackState
	autoMood bool
	pinned   ScaleID

	sess *session
	rng  *rand.Rand

	// onStep receives (columnIndex, soundingDayIndices) timed to the
	// audio dispatch; set before Start.
	onStep func(col int, days []int)

	stepOverride time.Duration // tests shrink the subdivision
}

// NewEngine creates a stopped engine dispatching into trig.
func NewEngine(trig Trigger) *Engine {
	return &Engine{
		trig:     trig,
		state:    initialState(),
		autoMood: true,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetOnStep registers the visual-state callback. Called from the
// playback goroutine; keep it non-blocking.
func (e *Engine) SetOnStep(fn func(col int, days []int)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onStep = fn
}

// State returns a snapshot of the playback state.
func (e *Engine) State() PlaybackState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Playing reports whether a session is active.
func (e *Engine) Playing() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sess != nil
}

// Start begins a playback session over grid. A nil grid is a silent
// no-op. An already-running session is stopped first.
func (e *Engine) Start(grid *contrib.Grid) {
	if grid == nil {
		debug.Log("engine", "start without grid - ignored")
		return
	}
	e.Stop()

	e.mu.Lock()
	tempo := TempoFor(grid)
	e.state = initialState()
	e.state.Tempo = tempo
	e.state.Playing = true
	if !e.autoMood && e.pinned != "" {
		e.state.Scale = e.pinned
	}

	s := &session{stop: make(chan struct{})}
	e.sess = s

	step := eighthNote(tempo)
	if e.stepOverride > 0 {
		step = e.stepOverride
	}
	e.mu.Unlock()

	debug.Log("engine", "start %s tempo=%d step=%s", grid.Identity, tempo, step)
	go e.run(s, grid, step)
}

// Stop cancels the running session and resets the playback state to
// its initial values. Safe to call when not playing. After Stop
// returns no further triggers or callbacks fire for the old session.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess == nil {
		return
	}
	close(e.sess.stop)
	e.sess = nil
	e.state = initialState()
	debug.Log("engine", "stop")
}

// Toggle stops if playing, otherwise starts over grid.
func (e *Engine) Toggle(grid *contrib.Grid) {
	if e.Playing() {
		e.Stop()
	} else {
		e.Start(grid)
	}
}

// SetScale switches scale mode. ScaleAuto re-enables automatic mood
// recomputation; a scale name pins the active scale. Either way the
// change lands at the next block boundary, not retroactively.
func (e *Engine) SetScale(value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if value == ScaleAuto {
		e.autoMood = true
		return
	}
	id := ScaleID(value)
	if !ValidScale(id) {
		debug.Log("engine", "unknown scale %q - ignored", value)
		return
	}
	e.autoMood = false
	e.pinned = id
}

// eighthNote is the column subdivision at a tempo: half of one beat.
func eighthNote(tempo int) time.Duration {
	return time.Duration(float64(time.Minute) / float64(tempo) / 2)
}

// run advances the session one column per subdivision. The single
// goroutine makes column visits strictly ordered and non-overlapping;
// the session wraps to column 0 after the last week and plays until
// stopped.
func (e *Engine) run(s *session, grid *contrib.Grid, step time.Duration) {
	next := time.Now().Add(step)
	timer := time.NewTimer(time.Until(next))
	defer timer.Stop()

	col := 0
	for {
		select {
		case <-s.stop:
			return
		case <-timer.C:
		}

		if !e.visit(s, grid, col, next) {
			return
		}

		col++
		if col >= contrib.NumWeeks {
			col = 0
		}
		next = next.Add(step)
		timer.Reset(time.Until(next))
	}
}

// visit dispatches one column. Returns false when the session has
// been cancelled; the cancellation check and all dispatch happen
// under the engine lock, so Stop returning means no more output.
func (e *Engine) visit(s *session, grid *contrib.Grid, col int, at time.Time) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.sess != s {
		return false
	}

	blockSum := BlockSum(grid, col)
	beat := col % 4
	step := eighthNote(e.state.Tempo)
	if e.stepOverride > 0 {
		step = e.stepOverride
	}

	if beat == 0 {
		// Chord sounds on the scale in effect before this block's
		// mood recompute; the new scale governs everything after.
		if WindowActive(grid, col) {
			e.trig.Chord(e.state.Scale, ChordRoot(grid, col), at, 8*step)
		}

		if e.autoMood {
			e.state.Scale, e.state.Mood = MoodForSum(blockSum)
		} else if e.pinned != "" {
			e.state.Scale = e.pinned
		}
	}

	busy, medium := IntensityFlags(blockSum)
	for _, hit := range DrumHitsFor(beat, busy, medium) {
		switch hit.Voice {
		case VoiceKick:
			e.trig.Kick(at)
		case VoiceSnare:
			e.trig.Snare(at)
		case VoiceHiHat:
			e.trig.HiHat(at, hit.Intensity)
		}
	}

	notes := SelectNotes(&grid.Weeks[col], e.rng)
	days := make([]int, 0, len(notes))
	for _, n := range notes {
		e.trig.Note(e.state.Scale, n, at, step)
		days = append(days, n.Day)
	}

	e.state.Column = col
	if e.onStep != nil {
		e.onStep(col, days)
	}
	return true
}

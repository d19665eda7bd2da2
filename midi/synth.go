package midi

import (
	"time"

	"gridtone/sequencer"

	gomidi "gitlab.com/gomidi/midi/v2"
)

// Synth implements the engine's sound-trigger contract over a MIDI
// output. Melody on channel 1, chord pad on channel 2, drums on the
// GM percussion channel.
type Synth struct {
	out *Out
}

// NewSynth creates a synth over the given output.
func NewSynth(out *Out) *Synth {
	return &Synth{out: out}
}

// SetVoice assigns the identity-derived lead voice and the fixed pad
// program. Call whenever a new grid is loaded.
func (s *Synth) SetVoice(voice int) {
	if voice < 0 {
		voice = 0
	}
	program := VoicePrograms[voice%len(VoicePrograms)]
	s.out.Send(gomidi.ProgramChange(MelodyChannel, program))
	s.out.Send(gomidi.ProgramChange(PadChannel, PadProgram))
}

// Note plays one melodic note for dur.
func (s *Synth) Note(scale sequencer.ScaleID, note sequencer.Note, at time.Time, dur time.Duration) {
	pitch := sequencer.MelodicPitch(scale, note.Degree)
	s.play(MelodyChannel, pitch, note.Velocity, at, dur)
}

// Chord sustains a root/third/fifth triad from the chordal-root table.
func (s *Synth) Chord(scale sequencer.ScaleID, root int, at time.Time, dur time.Duration) {
	r, third, fifth := sequencer.ChordDegrees(root)
	for _, degree := range []int{r, third, fifth} {
		s.play(PadChannel, sequencer.ChordPitch(scale, degree), 90, at, dur)
	}
}

// Kick triggers the bass drum.
func (s *Synth) Kick(at time.Time) {
	s.play(DrumChannel, KickNote, 110, at, 50*time.Millisecond)
}

// Snare triggers the snare.
func (s *Synth) Snare(at time.Time) {
	s.play(DrumChannel, SnareNote, 100, at, 50*time.Millisecond)
}

// HiHat triggers the closed hat at the given intensity (0-1).
func (s *Synth) HiHat(at time.Time, intensity float64) {
	if intensity <= 0 {
		return
	}
	if intensity > 1 {
		intensity = 1
	}
	s.play(DrumChannel, HatNote, uint8(127*intensity), at, 30*time.Millisecond)
}

// Silence sends All Notes Off on every channel we use. Called after
// the engine stops so sustained pads don't ring past the session.
func (s *Synth) Silence() {
	for _, ch := range []uint8{MelodyChannel, PadChannel, DrumChannel} {
		s.out.Send(gomidi.ControlChange(ch, 123, 0))
	}
}

// play schedules a note-on at the requested time and its note-off dur
// later. The engine dispatches on the beat, so the delay is normally
// near zero; scheduling keeps late dispatches from smearing.
func (s *Synth) play(channel, pitch, velocity uint8, at time.Time, dur time.Duration) {
	delay := time.Until(at)
	if delay < 0 {
		delay = 0
	}
	time.AfterFunc(delay, func() {
		s.out.Send(gomidi.NoteOn(channel, pitch, velocity))
		time.AfterFunc(dur, func() {
			s.out.Send(gomidi.NoteOff(channel, pitch))
		})
	})
}

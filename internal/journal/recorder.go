package journal

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-skirmish/internal/games/skirmish/sim"
)

// Recorder accumulates a run from engine events until it is saved.
type Recorder struct {
	run       Run
	waves     []WaveRecord
	kills     int
	waveStart uint64
}

// NewRecorder starts recording a run with a fresh ID.
func NewRecorder(gameID string, seed int64) *Recorder {
	return &Recorder{run: Run{ID: uuid.New(), GameID: gameID, Seed: seed, Waves: 1}}
}

// ID returns the run ID the recording will be saved under.
func (r *Recorder) ID() uuid.UUID {
	return r.run.ID
}

// Observe folds the events of one tick into the recording.
// tick and health are read after the Step that produced the events.
func (r *Recorder) Observe(tick uint64, health float64, events []sim.Event) {
	r.run.Ticks = tick
	for _, e := range events {
		switch ev := e.(type) {
		case sim.EnemyKilledEvent:
			r.kills++
		case sim.WaveClearedEvent:
			r.waves = append(r.waves, WaveRecord{
				RunID:  r.run.ID,
				Wave:   ev.Wave,
				Ticks:  tick - r.waveStart,
				Kills:  r.kills,
				Score:  ev.Score,
				Health: health,
			})
			r.run.Score = ev.Score
		case sim.WaveStartedEvent:
			r.run.Waves = max(r.run.Waves, ev.Wave)
			r.waveStart = tick
			r.kills = 0
		case sim.AvatarDefeatedEvent:
			r.run.Defeated = true
			r.run.Waves = max(r.run.Waves, ev.Wave)
			r.run.Score = ev.Score
		}
	}
}

// Finish records the final score and returns the run with its waves.
func (r *Recorder) Finish(score int) (Run, []WaveRecord) {
	r.run.Score = score
	return r.run, r.waves
}

// Save writes the finished run to the journal.
func (r *Recorder) Save(j *Journal, score int) (uuid.UUID, error) {
	run, waves := r.Finish(score)
	return j.SaveRun(run, waves)
}

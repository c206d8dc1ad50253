package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/tictactoe"
)

// Preference keys of a local session.
const (
	PrefHumanWins    = "humanWins"
	PrefComputerWins = "computerWins"
	PrefTies         = "ties"
	PrefDifficulty   = "difficulty"
	PrefSoundEnabled = "soundEnabled"
)

// DefaultComputerDelay is the computer's thinking time.
const DefaultComputerDelay = time.Second

type preferenceStore interface {
	Get(ctx context.Context, profile, key, def string) (string, error)
	Set(ctx context.Context, profile, key, value string) error
}

type LocalState string

const (
	AwaitingHumanMove    LocalState = "AWAITING_HUMAN_MOVE"
	AwaitingComputerMove LocalState = "AWAITING_COMPUTER_MOVE"
	LocalFinished        LocalState = "FINISHED"
)

type Scores struct {
	HumanWins    int `json:"humanWins"`
	ComputerWins int `json:"computerWins"`
	Ties         int `json:"ties"`
}

// LocalSnapshot is a copy of a local session taken under its lock.
type LocalSnapshot struct {
	Board        [tictactoe.BoardSize]string `json:"board"`
	State        LocalState                  `json:"state"`
	Outcome      string                      `json:"outcome"`
	Difficulty   string                      `json:"difficulty"`
	SoundEnabled bool                        `json:"soundEnabled"`
	HumanStarted bool                        `json:"humanStarted"`
	Scores       Scores                      `json:"scores"`
}

type LocalOption func(*LocalGame)

func WithFeedback(sink FeedbackSink) LocalOption {
	return func(that *LocalGame) {
		that.feedback = sink
	}
}

// WithComputerDelay sets the thinking time. Zero or less makes the computer answer inside the same call.
func WithComputerDelay(delay time.Duration) LocalOption {
	return func(that *LocalGame) {
		that.delay = delay
	}
}

// WithChangeHandler registers fn to receive a snapshot after every state change.
func WithChangeHandler(fn func(LocalSnapshot)) LocalOption {
	return func(that *LocalGame) {
		that.onChange = fn
	}
}

func WithEngine(engine *tictactoe.Engine) LocalOption {
	return func(that *LocalGame) {
		that.engine = engine
	}
}

// LocalGame is one human-versus-computer session with persisted scores and settings.
type LocalGame struct {
	logger  *slog.Logger
	prefs   preferenceStore
	profile string

	feedback FeedbackSink
	delay    time.Duration
	onChange func(LocalSnapshot)

	mu           sync.Mutex
	engine       *tictactoe.Engine
	state        LocalState
	outcome      tictactoe.Outcome
	scores       Scores
	soundEnabled bool
	humanStarted bool
	humanNext    bool

	// generation invalidates a scheduled computer move after NewGame or Close.
	generation    uint64
	cancelPending context.CancelFunc
}

// NewLocalGame loads the profile's scores and settings and starts the first game with the human to move.
func NewLocalGame(ctx context.Context, logger *slog.Logger, prefs preferenceStore, profile string, opts ...LocalOption) (*LocalGame, error) {
	that := &LocalGame{
		logger:       logger.With("component", "local-game", "profile", profile),
		prefs:        prefs,
		profile:      profile,
		feedback:     NopFeedback,
		delay:        DefaultComputerDelay,
		soundEnabled: true,
		humanNext:    true,
	}

	for _, opt := range opts {
		opt(that)
	}

	if that.engine == nil {
		that.engine = tictactoe.NewEngine()
	}

	if err := that.load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load local preferences: %w", err)
	}

	that.mu.Lock()
	that.startLocked(ctx)
	that.mu.Unlock()

	return that, nil
}

func (that *LocalGame) load(ctx context.Context) error {
	var err error

	if that.scores.HumanWins, err = that.loadInt(ctx, PrefHumanWins); err != nil {
		return err
	}

	if that.scores.ComputerWins, err = that.loadInt(ctx, PrefComputerWins); err != nil {
		return err
	}

	if that.scores.Ties, err = that.loadInt(ctx, PrefTies); err != nil {
		return err
	}

	name, err := that.prefs.Get(ctx, that.profile, PrefDifficulty, tictactoe.Expert.String())
	if err != nil {
		return err
	}

	difficulty, err := tictactoe.ParseDifficulty(name)
	if err != nil {
		that.logger.Warn("stored difficulty is unknown, using expert", "difficulty", name)
		difficulty = tictactoe.Expert
	}
	that.engine.SetDifficulty(difficulty)

	sound, err := that.prefs.Get(ctx, that.profile, PrefSoundEnabled, "true")
	if err != nil {
		return err
	}

	if that.soundEnabled, err = strconv.ParseBool(sound); err != nil {
		that.soundEnabled = true
	}

	return nil
}

func (that *LocalGame) loadInt(ctx context.Context, key string) (int, error) {
	raw, err := that.prefs.Get(ctx, that.profile, key, "0")
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		that.logger.Warn("stored counter is not a number, resetting", "key", key, "value", raw)
		return 0, nil
	}

	return value, nil
}

// NewGame drops any pending computer move, clears the board and hands the first move to the next starter.
func (that *LocalGame) NewGame(ctx context.Context) LocalSnapshot {
	that.mu.Lock()
	that.startLocked(ctx)
	snapshot := that.snapshotLocked()
	that.mu.Unlock()

	that.notify(snapshot)

	return snapshot
}

func (that *LocalGame) startLocked(ctx context.Context) {
	that.stopPendingLocked()
	that.engine.Reset()
	that.outcome = tictactoe.Continue

	that.humanStarted = that.humanNext
	that.humanNext = !that.humanNext

	if that.humanStarted {
		that.state = AwaitingHumanMove
		return
	}

	that.state = AwaitingComputerMove
	that.scheduleLocked(ctx)
}

// Play applies the human move at position. The board is untouched when the move is rejected.
func (that *LocalGame) Play(ctx context.Context, position int) (LocalSnapshot, error) {
	that.mu.Lock()

	switch {
	case that.state == LocalFinished:
		that.mu.Unlock()
		return LocalSnapshot{}, apperror.ErrGameFinished
	case that.state == AwaitingComputerMove:
		that.mu.Unlock()
		return LocalSnapshot{}, apperror.ErrNotYourTurn
	case position < 0 || position >= tictactoe.BoardSize:
		that.mu.Unlock()
		return LocalSnapshot{}, fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, position)
	}

	if !that.engine.ApplyMove(tictactoe.Human, position) {
		that.mu.Unlock()
		return LocalSnapshot{}, apperror.ErrCellOccupied
	}

	that.emitLocked(that.feedback.FirstPlayerMoved)
	that.settleLocked(ctx, tictactoe.Human)

	if that.state == AwaitingComputerMove {
		that.scheduleLocked(ctx)
	}

	snapshot := that.snapshotLocked()
	that.mu.Unlock()

	that.notify(snapshot)

	return snapshot, nil
}

// scheduleLocked queues the computer move. A non-positive delay plays it right away.
func (that *LocalGame) scheduleLocked(ctx context.Context) {
	that.generation++
	generation := that.generation

	if that.delay <= 0 {
		that.computerMoveLocked(ctx)
		return
	}

	pendingCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	that.cancelPending = cancel

	go func() {
		timer := time.NewTimer(that.delay)
		defer timer.Stop()

		select {
		case <-pendingCtx.Done():
			return
		case <-timer.C:
		}

		that.mu.Lock()
		if generation != that.generation || that.state != AwaitingComputerMove {
			that.mu.Unlock()
			return
		}

		that.cancelPending = nil
		that.computerMoveLocked(pendingCtx)
		snapshot := that.snapshotLocked()
		that.mu.Unlock()

		cancel()
		that.notify(snapshot)
	}()
}

func (that *LocalGame) computerMoveLocked(ctx context.Context) {
	log := that.logger.With("method", "computerMove")

	position := that.engine.SelectComputerMove(that.engine.Difficulty())
	if position == tictactoe.NoMove || !that.engine.ApplyMove(tictactoe.Computer, position) {
		log.Error("computer found no legal move", "position", position)
		that.settleLocked(ctx, tictactoe.Computer)
		return
	}

	log.Debug("computer moved", "position", position, "difficulty", that.engine.Difficulty().String())

	that.emitLocked(that.feedback.SecondPlayerMoved)
	that.settleLocked(ctx, tictactoe.Computer)
}

// settleLocked evaluates the board after mover played and records a finished game.
func (that *LocalGame) settleLocked(ctx context.Context, mover tictactoe.Mark) {
	that.outcome = that.engine.Evaluate()

	if !that.outcome.IsFinished() {
		if mover == tictactoe.Human {
			that.state = AwaitingComputerMove
		} else {
			that.state = AwaitingHumanMove
		}

		return
	}

	that.state = LocalFinished

	var key string
	var value int

	switch that.outcome {
	case tictactoe.HumanWins:
		that.scores.HumanWins++
		key, value = PrefHumanWins, that.scores.HumanWins
	case tictactoe.ComputerWins:
		that.scores.ComputerWins++
		key, value = PrefComputerWins, that.scores.ComputerWins
	default:
		that.scores.Ties++
		key, value = PrefTies, that.scores.Ties
	}

	if err := that.prefs.Set(ctx, that.profile, key, strconv.Itoa(value)); err != nil {
		that.logger.Error("failed to persist score", "key", key, "error", err)
	}
}

// SetDifficulty applies from the next computer move on.
func (that *LocalGame) SetDifficulty(ctx context.Context, name string) (LocalSnapshot, error) {
	difficulty, err := tictactoe.ParseDifficulty(name)
	if err != nil {
		return LocalSnapshot{}, err
	}

	if err = that.prefs.Set(ctx, that.profile, PrefDifficulty, difficulty.String()); err != nil {
		return LocalSnapshot{}, fmt.Errorf("failed to save difficulty: %w", err)
	}

	that.mu.Lock()
	that.engine.SetDifficulty(difficulty)
	snapshot := that.snapshotLocked()
	that.mu.Unlock()

	that.notify(snapshot)

	return snapshot, nil
}

func (that *LocalGame) SetSoundEnabled(ctx context.Context, enabled bool) (LocalSnapshot, error) {
	if err := that.prefs.Set(ctx, that.profile, PrefSoundEnabled, strconv.FormatBool(enabled)); err != nil {
		return LocalSnapshot{}, fmt.Errorf("failed to save sound setting: %w", err)
	}

	that.mu.Lock()
	that.soundEnabled = enabled
	snapshot := that.snapshotLocked()
	that.mu.Unlock()

	that.notify(snapshot)

	return snapshot, nil
}

// ResetScores zeroes all three counters.
func (that *LocalGame) ResetScores(ctx context.Context) (LocalSnapshot, error) {
	for _, key := range []string{PrefHumanWins, PrefComputerWins, PrefTies} {
		if err := that.prefs.Set(ctx, that.profile, key, "0"); err != nil {
			return LocalSnapshot{}, fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}

	that.mu.Lock()
	that.scores = Scores{}
	snapshot := that.snapshotLocked()
	that.mu.Unlock()

	that.notify(snapshot)

	return snapshot, nil
}

func (that *LocalGame) Snapshot() LocalSnapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshotLocked()
}

// Close cancels a pending computer move. The session stays readable.
func (that *LocalGame) Close() {
	that.mu.Lock()
	that.stopPendingLocked()
	that.mu.Unlock()
}

func (that *LocalGame) stopPendingLocked() {
	that.generation++

	if that.cancelPending != nil {
		that.cancelPending()
		that.cancelPending = nil
	}
}

func (that *LocalGame) emitLocked(event func()) {
	if that.soundEnabled {
		event()
	}
}

func (that *LocalGame) snapshotLocked() LocalSnapshot {
	return LocalSnapshot{
		Board:        that.engine.Board().Strings(),
		State:        that.state,
		Outcome:      that.outcome.String(),
		Difficulty:   that.engine.Difficulty().String(),
		SoundEnabled: that.soundEnabled,
		HumanStarted: that.humanStarted,
		Scores:       that.scores,
	}
}

func (that *LocalGame) notify(snapshot LocalSnapshot) {
	if that.onChange != nil {
		that.onChange(snapshot)
	}
}

// LocalGames opens sessions that share one preference store and thinking time.
type LocalGames struct {
	logger *slog.Logger
	prefs  preferenceStore
	delay  time.Duration
}

func NewLocalGames(logger *slog.Logger, prefs preferenceStore, delay time.Duration) *LocalGames {
	return &LocalGames{
		logger: logger,
		prefs:  prefs,
		delay:  delay,
	}
}

// Open starts a session for profile. Options passed here override the shared ones.
func (that *LocalGames) Open(ctx context.Context, profile string, opts ...LocalOption) (*LocalGame, error) {
	opts = append([]LocalOption{WithComputerDelay(that.delay)}, opts...)

	return NewLocalGame(ctx, that.logger, that.prefs, profile, opts...)
}

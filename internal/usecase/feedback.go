package usecase

// FeedbackSink receives move events that a presentation layer maps to sound or vibration.
type FeedbackSink interface {
	// FirstPlayerMoved fires after the human, or the viewer in an online match, moved.
	FirstPlayerMoved()
	// SecondPlayerMoved fires after the computer, or the opponent, moved.
	SecondPlayerMoved()
}

type nopFeedback struct{}

func (nopFeedback) FirstPlayerMoved()  {}
func (nopFeedback) SecondPlayerMoved() {}

// NopFeedback discards every event.
var NopFeedback FeedbackSink = nopFeedback{}

// FeedbackFunc adapts a func taking the event name.
type FeedbackFunc func(event string)

const (
	FeedbackFirstPlayer  = "first-player-moved"
	FeedbackSecondPlayer = "second-player-moved"
)

func (that FeedbackFunc) FirstPlayerMoved() {
	that(FeedbackFirstPlayer)
}

func (that FeedbackFunc) SecondPlayerMoved() {
	that(FeedbackSecondPlayer)
}

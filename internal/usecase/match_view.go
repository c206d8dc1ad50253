package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const (
	msgWaitingForOpponent = "Waiting for opponent..."
	msgYouWon             = "You won!"
	msgDraw               = "It's a draw!"
	msgYouLost            = "You lost"
	msgYourTurn           = "Your turn!"
	msgMatchRemoved       = "The match was closed"

	defaultOpponentWaiting = "Waiting..."
	defaultOpponentFirst   = "Player 1"
)

// MatchView is one viewer's projection of a match.
type MatchView struct {
	Match              *entity.Match `json:"match,omitempty"`
	IsMyTurn           bool          `json:"isMyTurn"`
	MySymbol           string        `json:"mySymbol"`
	OpponentName       string        `json:"opponentName"`
	Message            string        `json:"message"`
	IsGameOver         bool          `json:"isGameOver"`
	WaitingForOpponent bool          `json:"waitingForOpponent"`
	Removed            bool          `json:"removed"`

	// Err ends a Follow stream.
	Err error `json:"-"`
}

// BuildMatchView projects match for viewerID. A nil match means it was removed.
func BuildMatchView(match *entity.Match, viewerID string) MatchView {
	if match == nil {
		return MatchView{Removed: true, IsGameOver: true, Message: msgMatchRemoved}
	}

	isCreator := match.Player1 != nil && match.Player1.PlayerID == viewerID

	view := MatchView{
		Match:              match,
		IsMyTurn:           match.IsPlaying() && match.CurrentTurn == viewerID,
		MySymbol:           entity.SymbolO,
		IsGameOver:         match.IsFinished(),
		WaitingForOpponent: match.IsWaiting(),
	}

	switch {
	case isCreator:
		view.MySymbol = entity.SymbolX
		view.OpponentName = defaultOpponentWaiting
		if match.Player2 != nil {
			view.OpponentName = match.Player2.PlayerName
		}
	case match.Player1 != nil:
		view.OpponentName = match.Player1.PlayerName
	default:
		view.OpponentName = defaultOpponentFirst
	}

	switch {
	case match.IsWaiting():
		view.Message = msgWaitingForOpponent
	case match.IsFinished() && match.Winner == "":
		view.Message = msgDraw
	case match.IsFinished() && match.Winner == view.MySymbol:
		view.Message = msgYouWon
	case match.IsFinished():
		view.Message = msgYouLost
	case view.IsMyTurn:
		view.Message = msgYourTurn
	default:
		view.Message = view.OpponentName + "'s turn"
	}

	return view
}

// Follow turns WatchMatch into views for viewerID and reports board changes to sink.
// The stream closes when ctx is done or after a view carrying Err.
func (that *MatchCoordinator) Follow(ctx context.Context, matchID, viewerID string, sink FeedbackSink) <-chan MatchView {
	if sink == nil {
		sink = NopFeedback
	}

	events := that.WatchMatch(ctx, matchID)
	out := make(chan MatchView)

	go func() {
		defer close(out)

		var previous *entity.Match

		for ev := range events {
			if ev.Err != nil {
				select {
				case out <- MatchView{Err: ev.Err}:
				case <-ctx.Done():
				}
				return
			}

			view := BuildMatchView(ev.Match, viewerID)

			if previous != nil && ev.Match != nil && previous.Board != ev.Match.Board {
				if movedBy(previous, ev.Match) == view.MySymbol {
					sink.FirstPlayerMoved()
				} else {
					sink.SecondPlayerMoved()
				}
			}
			previous = ev.Match

			select {
			case out <- view:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// movedBy returns the symbol placed in the first cell that changed between two boards.
func movedBy(before, after *entity.Match) string {
	for i := range after.Board {
		if before.Board[i] != after.Board[i] && after.Board[i] != entity.EmptyCell {
			return after.Board[i]
		}
	}

	return ""
}

package websocket

import (
	"context"
	"errors"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
)

var (
	errNotConnected     = apperror.New("not-connected", "send connect first")
	errUnknownAction    = apperror.New("unknown-action", "unknown action")
	errMalformedMessage = apperror.New("malformed-message", "message is not valid JSON")
	errBadPayload       = apperror.New("bad-payload", "payload is missing a required field")
)

// pushError reports err to the client. Uncoded errors are not exposed.
func (that *Server) pushError(ctx context.Context, sess *session, action string, err error) {
	payload := ErrorPayload{Action: action, Code: "internal", Error: "internal error"}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		payload.Code, payload.Error = appErr.Code, appErr.Message
	} else {
		that.logger.Error("action failed", "action", action, "error", err)
	}

	that.push(ctx, sess, actionError, payload)
}

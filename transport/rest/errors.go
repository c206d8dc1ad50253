package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
)

var codeStatus = map[string]int{
	apperror.ErrGameNotFound.Code:      http.StatusNotFound,
	apperror.ErrNotYourTurn.Code:       http.StatusConflict,
	apperror.ErrGameFinished.Code:      http.StatusConflict,
	apperror.ErrGameIsNotStarted.Code:  http.StatusConflict,
	apperror.ErrCellOccupied.Code:      http.StatusConflict,
	apperror.ErrGameFull.Code:          http.StatusConflict,
	apperror.ErrGameNotWaiting.Code:    http.StatusConflict,
	apperror.ErrAlreadyInGame.Code:     http.StatusConflict,
	apperror.ErrGameExists.Code:        http.StatusConflict,
	apperror.ErrConcurrentUpdate.Code:  http.StatusConflict,
	apperror.ErrInvalidCell.Code:       http.StatusBadRequest,
	apperror.ErrInvalidPlayer.Code:     http.StatusBadRequest,
	apperror.ErrUnknownDifficulty.Code: http.StatusBadRequest,
	apperror.ErrStoreFailure.Code:      http.StatusServiceUnavailable,
}

type errorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// statusOf maps a coded error to an HTTP status. Uncoded errors are internal.
func statusOf(err error) (int, string) {
	code := apperror.Code(err)
	if status, ok := codeStatus[code]; ok {
		return status, code
	}

	return http.StatusInternalServerError, "internal"
}

func (that *Server) writeError(c *gin.Context, err error) {
	status, code := statusOf(err)

	message := http.StatusText(status)

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	if status >= http.StatusInternalServerError {
		that.logger.Error("request failed", "path", c.FullPath(), "error", err)
	}

	c.JSON(status, errorResponse{Code: code, Error: message})
}

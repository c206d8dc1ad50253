package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-hub/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hub/internal/entity"
)

const lobbySnapshotTimeout = 5 * time.Second

type playerRequest struct {
	PlayerID   string `json:"playerId"   binding:"required"`
	PlayerName string `json:"playerName"`
}

type moveRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Position *int   `json:"position" binding:"required"`
}

// listOpenMatches answers with the first lobby snapshot.
func (that *Server) listOpenMatches(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), lobbySnapshotTimeout)
	defer cancel()

	select {
	case ev, ok := <-that.matches.WatchOpenMatches(ctx):
		if !ok {
			that.writeError(c, apperror.ErrStoreFailure)
			return
		}

		if ev.Err != nil {
			that.writeError(c, ev.Err)
			return
		}

		matches := ev.Matches
		if matches == nil {
			matches = []*entity.Match{}
		}

		c.JSON(http.StatusOK, gin.H{"matches": matches})
	case <-ctx.Done():
		that.writeError(c, apperror.ErrStoreFailure)
	}
}

func (that *Server) createMatch(c *gin.Context) {
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: apperror.ErrInvalidPlayer.Code, Error: err.Error()})
		return
	}

	match, err := that.matches.CreateMatch(c.Request.Context(), req.PlayerName, req.PlayerID)
	if err != nil {
		that.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, match)
}

func (that *Server) getMatch(c *gin.Context) {
	match, err := that.matches.GetMatch(c.Request.Context(), c.Param("id"))
	if err != nil {
		that.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

func (that *Server) joinMatch(c *gin.Context) {
	var req playerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: apperror.ErrInvalidPlayer.Code, Error: err.Error()})
		return
	}

	match, err := that.matches.JoinMatch(c.Request.Context(), c.Param("id"), req.PlayerName, req.PlayerID)
	if err != nil {
		that.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

func (that *Server) submitMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: apperror.ErrInvalidCell.Code, Error: err.Error()})
		return
	}

	match, err := that.matches.SubmitMove(c.Request.Context(), c.Param("id"), *req.Position, req.PlayerID)
	if err != nil {
		that.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, match)
}

func (that *Server) leaveMatch(c *gin.Context) {
	if err := that.matches.LeaveMatch(c.Request.Context(), c.Param("id")); err != nil {
		that.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

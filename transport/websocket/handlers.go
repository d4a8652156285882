package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrMissingGameID  = errors.New("game_id is required")
	ErrMissingMove    = errors.New("move is required")
	errInternalFailed = errors.New("internal error")
)

// dispatch runs the handler registered for msg.Action and wraps its result into a reply.
func (that *Server) dispatch(ctx context.Context, msg *Message) Message {
	handler, ok := that.handlers[msg.Action]
	if !ok {
		return that.errorMessage(actionError, fmt.Errorf("%w: %q", ErrUnknownAction, msg.Action))
	}

	var payload RequestPayload
	if len(msg.Payload) > 0 {
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return that.errorMessage(msg.Action, fmt.Errorf("failed to unmarshal payload: %w", err))
		}
	}

	game, err := handler(ctx, &payload)
	if err != nil {
		return that.errorMessage(msg.Action, err)
	}

	return that.message(msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleNewGame(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	return that.gamePlay.NewGame(ctx, payload.BotFirst)
}

func (that *Server) handleGetGame(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, ErrMissingGameID
	}

	return that.gamePlay.GetGame(ctx, payload.GameID)
}

func (that *Server) handleGameTurn(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, ErrMissingGameID
	}

	if payload.Move == nil {
		return nil, ErrMissingMove
	}

	return that.gamePlay.MakeTurn(ctx, payload.GameID, *payload.Move)
}

func (that *Server) handleRestartGame(ctx context.Context, payload *RequestPayload) (*entity.Game, error) {
	if payload.GameID == "" {
		return nil, ErrMissingGameID
	}

	return that.gamePlay.RestartGame(ctx, payload.GameID)
}

func (that *Server) errorMessage(action string, err error) Message {
	if !isClientError(err) {
		that.logger.Error("action failed", "action", action, "error", err)
		err = errInternalFailed
	}

	return that.message(action, ResponsePayload{Error: err.Error()})
}

func (that *Server) message(action string, payload ResponsePayload) Message {
	raw, err := json.Marshal(payload)
	if err != nil {
		that.logger.Error("failed to marshal payload", "action", action, "error", err)
		raw = []byte(`{"error":"internal error"}`)
	}

	return Message{Action: action, Payload: raw}
}

func isClientError(err error) bool {
	for _, target := range []error{
		apperror.ErrInvalidMove,
		apperror.ErrInvalidMark,
		apperror.ErrNotYourTurn,
		apperror.ErrGameFinished,
		apperror.ErrGameNotFound,
		ErrUnknownAction,
		ErrMissingGameID,
		ErrMissingMove,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError

	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}

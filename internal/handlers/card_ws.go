package handlers

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/scratchcard/internal/config"
	"github.com/vancomm/scratchcard/internal/scratch"
)

var errBadCommand = errors.New("bad command")

type wsCommand string

const (
	wsNoop      wsCommand = "g"
	wsMove      wsCommand = "m"
	wsPointer   wsCommand = "p"
	wsConfigure wsCommand = "c"
)

var commandNargs = map[wsCommand]int{
	wsNoop:      0,
	wsMove:      3,
	wsPointer:   2,
	wsConfigure: 3,
}

type cardSession struct {
	logger   *slog.Logger
	card     *config.Card
	board    *scratch.Board
	revealed []int
}

func newCardSession(
	logger *slog.Logger, card *config.Card, params scratch.Params, rnd *rand.Rand,
) (*cardSession, error) {
	s := &cardSession{logger: logger, card: card}
	board, err := scratch.NewBoard(params, rnd, func(res scratch.Result) {
		logger.Info("card finished", slog.Int("wins", res.Wins), slog.String("result", res.String()))
	})
	if err != nil {
		return nil, err
	}
	s.board = board
	return s, nil
}

func iterBySep(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d must be a number", errBadCommand, i+1)
		}
		out[i] = f
	}
	return out, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: argument %d must be an int", errBadCommand, i+1)
		}
		out[i] = n
	}
	return out, nil
}

func (s *cardSession) execute(line string) error {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	cmd, args := wsCommand(parts[0]), parts[1:]
	nargs, ok := commandNargs[cmd]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", errBadCommand, parts[0])
	}
	if nargs != len(args) {
		return fmt.Errorf("%w: %q takes %d arguments", errBadCommand, parts[0], nargs)
	}

	switch cmd {
	case wsNoop:
		return nil
	case wsMove:
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("%w: cell must be an int", errBadCommand)
		}
		xy, err := parseFloats(args[1:])
		if err != nil {
			return err
		}
		revealed, err := s.board.Scratch(index, scratch.Point{X: xy[0], Y: xy[1]})
		if err != nil {
			return fmt.Errorf("%w: %w", errBadCommand, err)
		}
		if revealed {
			s.revealed = append(s.revealed, index)
		}
		return nil
	case wsPointer:
		xy, err := parseFloats(args)
		if err != nil {
			return err
		}
		if index, revealed := s.board.ScratchAt(scratch.Point{X: xy[0], Y: xy[1]}); revealed {
			s.revealed = append(s.revealed, index)
		}
		return nil
	case wsConfigure:
		n, err := parseInts(args)
		if err != nil {
			return err
		}
		params := scratch.Params{Rows: n[0], Cols: n[1], WinCount: n[2]}
		if err := s.card.Validate(params); err != nil {
			return fmt.Errorf("%w: %w", errBadCommand, err)
		}
		changed, err := s.board.Configure(params)
		if err != nil {
			return fmt.Errorf("%w: %w", errBadCommand, err)
		}
		if changed {
			s.revealed = s.revealed[:0]
			s.logger.Debug("card reconfigured", slog.String("params", params.String()))
		}
		return nil
	}
	return fmt.Errorf("%w: invalid command", errBadCommand)
}

func (s *cardSession) frame() CardFrameDTO {
	view := s.board.Render()
	frame := CardFrameDTO{View: &view}
	if len(s.revealed) > 0 {
		frame.Revealed = append([]int(nil), s.revealed...)
	}
	s.revealed = s.revealed[:0]
	return frame
}

// run serves the card until the peer goes away or sends a bad command.
func (s *cardSession) run(conn *websocket.Conn) error {
	if err := conn.WriteJSON(s.frame()); err != nil {
		return fmt.Errorf("unable to write json: %w", err)
	}

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		text := strings.TrimSpace(string(message))
		s.logger.Debug(fmt.Sprintf("\t> %s", text))
		for _, line := range iterBySep(text, "\n") {
			if err := s.execute(strings.TrimSpace(line)); err != nil {
				if werr := conn.WriteJSON(wrapError(err)); werr != nil {
					s.logger.Warn("unable to send command error", slog.Any("error", werr))
				}
				if werr := conn.WriteMessage(
					websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "bad command"),
				); werr != nil {
					s.logger.Warn("unable to send close frame", slog.Any("error", werr))
				}
				return err
			}
		}

		if err := conn.WriteJSON(s.frame()); err != nil {
			return fmt.Errorf("unable to write json: %w", err)
		}
		s.logger.Debug("\t< <card frame>")
	}
}

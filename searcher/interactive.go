package searcher

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"stonehenge/game"
)

const prompt = "Enter a move: "

// Interactive asks a person for the move. It returns game.NoMove when the
// input does not name a legal cell and leaves re-prompting to the caller.
type Interactive struct {
	game   game.Game
	reader *bufio.Reader
	out    io.Writer
}

func NewInteractive(g game.Game, in io.Reader, out io.Writer) *Interactive {
	return &Interactive{game: g, reader: bufio.NewReader(in), out: out}
}

func (i *Interactive) FindNextMove(state game.State) game.Move {
	if len(state.LegalMoves()) == 0 {
		return game.NoMove
	}

	fmt.Fprint(i.out, prompt)
	line, err := i.reader.ReadString('\n')
	if err != nil && line == "" {
		return game.NoMove
	}

	move := i.game.ParseMove(strings.TrimSpace(line))
	for _, legal := range state.LegalMoves() {
		if legal == move {
			return move
		}
	}
	return game.NoMove
}

package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/rockpaperscissors/internal/game"
	"github.com/lox/rockpaperscissors/internal/tui"
)

// RulesCmd prints the outcome of every pairing
type RulesCmd struct {
	NoColor bool `kong:"help='Disable colour output'"`
}

func (c *RulesCmd) Run() error {
	tui.ConfigureColor(!c.NoColor)
	fmt.Println(renderRules())
	return nil
}

func renderRules() string {
	headers := []string{"you \\ them"}
	for _, m := range game.Moves {
		headers = append(headers, m.Glyph()+" "+m.String())
	}

	rows := make([][]string, 0, len(game.Moves))
	for _, player := range game.Moves {
		row := []string{player.Glyph() + " " + player.String()}
		for _, opponent := range game.Moves {
			row = append(row, game.DetermineOutcome(player, opponent).Message())
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.InfoStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tui.SeatLabelStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	return t.Render()
}

package cmd

import (
	"strconv"

	"practice-ledger/core/player"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// renderStandings renders players as a rounded table with a position column.
func renderStandings(players []player.Player) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Player", "Ranking", "Games"})

	for i, p := range players {
		tw.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			p.Name,
			strconv.Itoa(p.Ranking),
			strconv.Itoa(p.NumberOfGames),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

package main

import (
	"fmt"
	"os"
	"time"

	"elo/pkg/version"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Version     bool   `help:"Print version information and exit." short:"v"`
	Debug       bool   `help:"Whether to enable debug logging."`
	Competition string `help:"Override the active competition for this invocation." short:"c"`

	Match struct {
		Winner string `arg:"" name:"winner" help:"Name of the winning player."`
		Loser  string `arg:"" name:"loser" help:"Name of the losing player."`
	} `cmd:"" help:"Record a match and print both players' new ratings."`

	Ranking struct {
	} `cmd:"" help:"Print all players sorted by rating."`

	GetElo struct {
		Player string `arg:"" name:"player" help:"Name of the player."`
	} `cmd:"" name:"get_elo" help:"Print a single player's rating."`

	EloList struct {
	} `cmd:"" name:"elo_list" help:"Print the ranking with a competition header."`

	Start struct {
		Competition string `arg:"" name:"competition" help:"Name of the competition."`
	} `cmd:"" help:"Set the active competition."`

	ChangeCompetition struct {
		Competition string `arg:"" name:"competition" help:"Name of the competition."`
	} `cmd:"" name:"change_competition" help:"Set the active competition."`

	List struct {
	} `cmd:"" help:"Print the active competition and every competition with recorded matches."`

	Undo struct {
	} `cmd:"" help:"Remove the most recent match from the active competition."`

	Stats struct {
		Player string `arg:"" name:"player" help:"Name of the player."`
	} `cmd:"" help:"Print a player's rating with win and loss counts."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("elo"),
		kong.Description("track match results and ELO ratings across named competitions"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		log.Warn().Msg("debug logging enabled")
	}

	if CLI.Version {
		fmt.Printf(
			"elo %s (commit %s)\n",
			version.Version,
			version.GitCommit,
		)
		fmt.Printf(
			"built %s\n",
			version.BuildTime,
		)
		os.Exit(0)
	}

	var err error

	// Every command frames its output with a blank line on each side.
	fmt.Println()
	switch ctx.Command() {
	case "match <winner> <loser>":
		err = matchCommand(CLI.Match.Winner, CLI.Match.Loser)
	case "ranking":
		err = rankingCommand(false)
	case "get_elo <player>":
		err = getEloCommand(CLI.GetElo.Player)
	case "elo_list":
		err = rankingCommand(true)
	case "start <competition>":
		err = startCommand(CLI.Start.Competition)
	case "change_competition <competition>":
		err = startCommand(CLI.ChangeCompetition.Competition)
	case "list":
		err = listCommand()
	case "undo":
		err = undoCommand()
	case "stats <player>":
		err = statsCommand(CLI.Stats.Player)
	}
	fmt.Println()

	if err != nil {
		writeError(err)
	}
}

package main

import (
	"fmt"
	"math"
	"sort"
	"time"
	"unicode/utf8"

	"elo/pkg/config"
	"elo/pkg/history"
	"elo/pkg/paths"
	"elo/pkg/rating"

	"github.com/repeale/fp-go"
	"github.com/rs/zerolog/log"
)

// env carries the resolved stores and the active competition into a command.
// The competition is always passed along explicitly; no command reads it
// from a process-wide variable.
type env struct {
	config      *config.Config
	configFile  string
	store       *history.Store
	competition string
}

func loadEnv() (*env, error) {
	p, err := paths.Resolve()
	if err != nil {
		return nil, err
	}

	conf, err := config.Load(p.ConfigFile())
	if err != nil {
		return nil, err
	}

	competition := conf.DefaultCompetition
	if CLI.Competition != "" {
		competition = history.Canonical(CLI.Competition)
	}

	log.Debug().
		Str("home", p.Home).
		Str("competition", competition).
		Msg("resolved environment")

	return &env{
		config:      conf,
		configFile:  p.ConfigFile(),
		store:       history.NewStore(p.HistoryDir()),
		competition: competition,
	}, nil
}

type row struct {
	name   string
	rating float64
}

func round(value float64) int {
	return int(math.Round(value))
}

// formatRows renders names left-aligned in a column as wide as the longest
// display name, with the rounded rating right-aligned beside it.
func formatRows(rows []row) []string {
	width := 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(history.Display(r.name)); n > width {
			width = n
		}
	}

	return fp.Map(func(r row) string {
		return fmt.Sprintf("%-*s %4d", width, history.Display(r.name), round(r.rating))
	})(rows)
}

func matchCommand(winner string, loser string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	match := history.Match{
		Winner:    winner,
		Loser:     loser,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	matches, err := e.store.Append(e.competition, match)
	if err != nil {
		return err
	}

	log.Debug().
		Int("matches", len(matches)).
		Str("competition", e.competition).
		Msg("recorded match")

	table := rating.Replay(matches)
	lines := formatRows([]row{
		{name: winner, rating: table.Rating(winner)},
		{name: loser, rating: table.Rating(loser)},
	})
	for _, line := range lines {
		fmt.Println(line)
	}

	return nil
}

func rankingCommand(withHeader bool) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	matches, err := e.store.Load(e.competition)
	if err != nil {
		return err
	}

	if withHeader {
		fmt.Printf("Competition: %s\n\n", history.Display(e.competition))
	}

	table := rating.Replay(matches)

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		a, b := table[names[i]].Rating, table[names[j]].Rating
		if a != b {
			return a > b
		}
		return names[i] < names[j]
	})

	rows := fp.Map(func(name string) row {
		return row{name: name, rating: table[name].Rating}
	})(names)

	for _, line := range formatRows(rows) {
		fmt.Println(line)
	}

	return nil
}

func getEloCommand(player string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	matches, err := e.store.Load(e.competition)
	if err != nil {
		return err
	}

	table := rating.Replay(matches)
	fmt.Printf("%s %d\n", history.Display(player), round(table.Rating(player)))

	return nil
}

func statsCommand(player string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	matches, err := e.store.Load(e.competition)
	if err != nil {
		return err
	}

	standing := rating.Replay(matches).Get(player)
	fmt.Printf(
		"%s %d (%d wins, %d losses)\n",
		history.Display(player),
		round(standing.Rating),
		standing.Wins,
		standing.Losses,
	)

	return nil
}

func startCommand(competition string) error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	// The history file is created lazily by the first recorded match.
	e.config.DefaultCompetition = history.Canonical(competition)
	if err := e.config.Save(e.configFile); err != nil {
		return err
	}

	fmt.Printf("Active competition: %s\n", e.config.DefaultCompetition)

	return nil
}

func listCommand() error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	competitions, err := e.store.List()
	if err != nil {
		return err
	}

	fmt.Printf("Active competition: %s\n", e.competition)
	for _, name := range competitions {
		fmt.Println(name)
	}

	return nil
}

func undoCommand() error {
	e, err := loadEnv()
	if err != nil {
		return err
	}

	removed, err := e.store.RemoveLast(e.competition)
	if err != nil {
		return err
	}

	if removed == nil {
		fmt.Println("Nothing to undo.")
		return nil
	}

	fmt.Printf(
		"Removed match: %s beat %s (%s)\n",
		history.Display(removed.Winner),
		history.Display(removed.Loser),
		removed.Timestamp,
	)

	return nil
}

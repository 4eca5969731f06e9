package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Paths locates the tool's per-user state. Everything lives under a single
// home directory so that ELO_HOME can relocate it wholesale.
type Paths struct {
	Home string `env:"ELO_HOME"`
}

func Resolve() (*Paths, error) {
	p := &Paths{}
	if err := env.Parse(p); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if p.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		p.Home = filepath.Join(home, ".elo")
	}

	return p, nil
}

func (p *Paths) ConfigFile() string {
	return filepath.Join(p.Home, "config.json")
}

func (p *Paths) HistoryDir() string {
	return filepath.Join(p.Home, "match_history")
}

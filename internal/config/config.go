package config

import (
	"io/ioutil"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/silbinarywolf/toy-offside-board/internal/ent"
	"github.com/silbinarywolf/toy-offside-board/internal/offside"
	"github.com/silbinarywolf/toy-offside-board/internal/world"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Window     WindowConfig  `yaml:"window"`
	Canvas     CanvasConfig  `yaml:"canvas"`
	Token      TokenConfig   `yaml:"token"`
	Rules      RulesConfig   `yaml:"rules"`
	History    HistoryConfig `yaml:"history"`
	PitchImage string        `yaml:"pitch_image"` // optional, a generated pitch is used when empty
	Roster     []RosterEntry `yaml:"roster"`      // optional, replaces the default line-up
}

type WindowConfig struct {
	Title string `yaml:"title"`
	Scale int    `yaml:"scale"`
}

// CanvasConfig is the size of the pitch area in pixels, the status and
// button bars are added on top of this
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type TokenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Border int `yaml:"border"` // thickness of the white ring drawn around each token
}

type RulesConfig struct {
	MinGoalsideDefenders int `yaml:"min_goalside_defenders"`
}

type HistoryConfig struct {
	MaxUndo int `yaml:"max_undo"`
}

type RosterEntry struct {
	Role     string `yaml:"role"` // "attacker", "defender" or "goalkeeper"
	Identity string `yaml:"identity"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title: "Offside?",
			Scale: 1,
		},
		Canvas: CanvasConfig{
			Width:  640,
			Height: 480,
		},
		Token: TokenConfig{
			Width:  30,
			Height: 30,
			Border: 6,
		},
		Rules: RulesConfig{
			MinGoalsideDefenders: offside.DefaultMinGoalsideDefenders,
		},
		History: HistoryConfig{
			MaxUndo: 32,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}
	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %s", configPath)
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", configPath)
	}
	return config, nil
}

// EnvConfigPath names the environment variable holding a config path,
// used when no -config flag is given
const EnvConfigPath = "OFFSIDE_CONFIG"

// PathFromEnv loads envFile into the environment and then returns the
// config path from EnvConfigPath. Variables already set in the environment
// take precedence over the file.
//
// The file is optional. Anything that isn't a readable regular file is
// skipped, including when there's no filesystem at all (ie. the browser
// build, where open fails with ENOSYS). A file that exists but doesn't
// parse is still an error.
func PathFromEnv(envFile string) (string, error) {
	if info, err := os.Stat(envFile); err == nil && info.Mode().IsRegular() {
		if err := godotenv.Load(envFile); err != nil {
			return "", errors.Wrapf(err, "failed to load environment file %s", envFile)
		}
	}
	return os.Getenv(EnvConfigPath), nil
}

func (config *Config) Validate() error {
	if config.Canvas.Width <= 0 || config.Canvas.Height <= 0 {
		return errors.Errorf("canvas must have a positive size, not %dx%d", config.Canvas.Width, config.Canvas.Height)
	}
	if config.Token.Width <= 0 || config.Token.Height <= 0 {
		return errors.Errorf("token must have a positive size, not %dx%d", config.Token.Width, config.Token.Height)
	}
	if config.Token.Border < 0 {
		return errors.New("token border cannot be negative")
	}
	if config.Window.Scale <= 0 {
		return errors.New("window scale must be at least 1")
	}
	if config.Rules.MinGoalsideDefenders < 1 {
		return errors.New("rules.min_goalside_defenders must be at least 1")
	}
	if config.History.MaxUndo < 0 {
		return errors.New("history.max_undo cannot be negative")
	}
	if len(config.Roster) == 0 {
		return nil
	}
	hasAttacker := false
	for i, entry := range config.Roster {
		role, err := ParseRole(entry.Role)
		if err != nil {
			return errors.Wrapf(err, "roster entry %d", i)
		}
		if role == ent.RoleAttacker {
			hasAttacker = true
		}
	}
	if !hasAttacker {
		return errors.New("roster needs at least one attacker")
	}
	return nil
}

func (config *Config) TokenSize() ent.Size {
	return ent.Size{
		Width:  config.Token.Width,
		Height: config.Token.Height,
	}
}

func (config *Config) OffsideRules() offside.Rules {
	return offside.Rules{
		MinGoalsideDefenders: config.Rules.MinGoalsideDefenders,
	}
}

// Layout is the configured roster, or the default line-up for the canvas
// when no roster was given
func (config *Config) Layout() (world.Layout, error) {
	if len(config.Roster) == 0 {
		return world.DefaultLayout(config.Canvas.Width, config.Canvas.Height, config.TokenSize()), nil
	}
	layout := make(world.Layout, 0, len(config.Roster))
	for i, entry := range config.Roster {
		role, err := ParseRole(entry.Role)
		if err != nil {
			return nil, errors.Wrapf(err, "roster entry %d", i)
		}
		layout = append(layout, world.Placement{
			Role:     role,
			Identity: entry.Identity,
			Position: ent.Point{X: entry.X, Y: entry.Y},
		})
	}
	return layout, nil
}

// NewScene builds the starting scene described by the config
func (config *Config) NewScene() (*world.Scene, error) {
	layout, err := config.Layout()
	if err != nil {
		return nil, err
	}
	return world.New(config.Canvas.Width, config.Canvas.Height, config.TokenSize(), layout), nil
}

func ParseRole(s string) (ent.Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "attacker":
		return ent.RoleAttacker, nil
	case "defender":
		return ent.RoleDefender, nil
	case "goalkeeper", "keeper":
		return ent.RoleGoalkeeper, nil
	}
	return 0, errors.Errorf("unknown role %q", s)
}

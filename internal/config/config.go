package config

import (
	"errors"
	"flag"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	cerr "github.com/saeidalz13/battleship-terminal/internal/error"
	mb "github.com/saeidalz13/battleship-terminal/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	EnvStage      = "BATTLESHIP_STAGE"
	EnvGridSize   = "BATTLESHIP_BOARD_SIZE"
	EnvSeed       = "BATTLESHIP_SEED"
	EnvFleetFile  = "BATTLESHIP_FLEET_FILE"
	EnvLogLevel   = "BATTLESHIP_LOG_LEVEL"
	EnvMaxRetries = "BATTLESHIP_MAX_STRIKE_ATTEMPTS"

	MinGridSize = 2
	MaxGridSize = 26

	DefaultMaxStrikeAttempts = 10000
	DefaultLogLevel          = "warn"
)

// Config is built once at startup and never modified afterwards.
type Config struct {
	GridSize   int
	RandomUser bool
	Cheat      bool
	Quiet      bool
	Automated  bool
	Help       bool

	// Seed of the random source. Zero picks a time based seed.
	Seed              int64
	FleetFile         string
	Fleet             []mb.ShipSpec
	LogLevel          string
	MaxStrikeAttempts int
}

func Default() Config {
	return Config{
		GridSize:          mb.DefaultGridSize,
		Fleet:             mb.CanonicalFleet(),
		LogLevel:          DefaultLogLevel,
		MaxStrikeAttempts: DefaultMaxStrikeAttempts,
	}
}

// Load builds the configuration from defaults, the env file (outside of
// prod), the environment and finally the command line arguments.
func Load(envFile string, args []string) (Config, error) {
	if os.Getenv(EnvStage) != StageProd {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, cerr.ErrConfig("env file %s: %s", envFile, err)
		}
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.applyArgs(args); err != nil {
		return Config{}, err
	}
	if cfg.Help {
		return cfg, nil
	}

	if cfg.FleetFile != "" {
		fleet, err := LoadFleet(cfg.FleetFile)
		if err != nil {
			return Config{}, err
		}
		cfg.Fleet = fleet
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvGridSize); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return cerr.ErrConfig("%s must be an integer, got %q", EnvGridSize, v)
		}
		c.GridSize = size
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cerr.ErrConfig("%s must be an integer, got %q", EnvSeed, v)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvMaxRetries); v != "" {
		attempts, err := strconv.Atoi(v)
		if err != nil {
			return cerr.ErrConfig("%s must be an integer, got %q", EnvMaxRetries, v)
		}
		c.MaxStrikeAttempts = attempts
	}
	if v := os.Getenv(EnvFleetFile); v != "" {
		c.FleetFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	return nil
}

// shortFlags may be combined, as in -rq.
const shortFlags = "rcqah"

func (c *Config) applyArgs(args []string) error {
	flags := flag.NewFlagSet("battleship", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	flags.BoolVar(&c.RandomUser, "r", c.RandomUser, "generate a random user board")
	flags.BoolVar(&c.RandomUser, "random-user", c.RandomUser, "generate a random user board")
	flags.BoolVar(&c.Cheat, "c", c.Cheat, "print enemy board to speed up game")
	flags.BoolVar(&c.Cheat, "cheat", c.Cheat, "print enemy board to speed up game")
	flags.BoolVar(&c.Quiet, "q", c.Quiet, "suppress intro message")
	flags.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress intro message")
	flags.BoolVar(&c.Automated, "a", c.Automated, "automated gameplay")
	flags.BoolVar(&c.Automated, "automated", c.Automated, "automated gameplay")
	flags.BoolVar(&c.Help, "h", c.Help, "help page")
	flags.BoolVar(&c.Help, "help", c.Help, "help page")
	flags.IntVar(&c.GridSize, "size", c.GridSize, "board size")
	flags.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	flags.StringVar(&c.FleetFile, "fleet", c.FleetFile, "fleet catalog yaml file")
	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")

	if err := flags.Parse(expandShortFlags(args)); err != nil {
		return cerr.ErrConfig("did not understand given flag: %s", err)
	}
	if flags.NArg() > 0 {
		return cerr.ErrConfig("did not understand given argument %q", flags.Arg(0))
	}

	if c.Automated {
		c.RandomUser = true
	}
	return nil
}

// expandShortFlags turns -rq into -r -q. Anything else is left untouched.
func expandShortFlags(args []string) []string {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if len(arg) <= 2 || arg[0] != '-' || arg[1] == '-' || strings.ContainsRune(arg, '=') {
			expanded = append(expanded, arg)
			continue
		}
		cluster := arg[1:]
		if strings.Trim(cluster, shortFlags) != "" {
			expanded = append(expanded, arg)
			continue
		}
		for _, f := range cluster {
			expanded = append(expanded, "-"+string(f))
		}
	}
	return expanded
}

func (c Config) Validate() error {
	if c.GridSize < MinGridSize || c.GridSize > MaxGridSize {
		return cerr.ErrConfig("board size must be within [%d, %d], got %d", MinGridSize, MaxGridSize, c.GridSize)
	}
	if c.MaxStrikeAttempts <= 0 {
		return cerr.ErrConfig("max strike attempts must be positive, got %d", c.MaxStrikeAttempts)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return cerr.ErrConfig("log level %q: %s", c.LogLevel, err)
	}
	return ValidateFleet(c.Fleet, c.GridSize)
}

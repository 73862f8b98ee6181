package platform

import (
	"errors"
	"fmt"
	"strings"
)

// Config names the three inputs of a run
type Config struct {
	ZipsOfInterest string // ZIP codes to calculate SLCSP for
	Plans          string // plan catalogue
	ZipAreas       string // ZIP code to rate area mapping
}

// ErrUsage marks a command line that does not carry exactly the three input paths
var ErrUsage = errors.New("usage error")

// ConfigFromArgs builds a Config from positional arguments, in order
func ConfigFromArgs(args []string) (Config, error) {
	if len(args) != 3 {
		return Config{}, fmt.Errorf("%w: expected 3 arguments (slcsp, plans, zips), got %d", ErrUsage, len(args))
	}
	cfg := Config{
		ZipsOfInterest: args[0],
		Plans:          args[1],
		ZipAreas:       args[2],
	}
	return cfg, cfg.Validate()
}

// Validate rejects blank paths
func (c Config) Validate() error {
	for _, arg := range []struct{ name, path string }{
		{"slcsp", c.ZipsOfInterest},
		{"plans", c.Plans},
		{"zips", c.ZipAreas},
	} {
		if strings.TrimSpace(arg.path) == "" {
			return fmt.Errorf("%w: %s path is empty", ErrUsage, arg.name)
		}
	}
	return nil
}

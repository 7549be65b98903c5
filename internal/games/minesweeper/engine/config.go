package engine

import (
	"errors"
	"fmt"
)

// Board dimension limits.
const (
	MinDimension = 2
	MaxDimension = 50
)

// ErrInvalidConfiguration is matched by every ValidationError.
var ErrInvalidConfiguration = errors.New("engine: invalid configuration")

// Configuration describes the board to generate.
// It is immutable once a board has been generated from it.
type Configuration struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	Mines     int `yaml:"mines"`
	TimeLimit int `yaml:"time_limit"` // Elapsed units that end the game, 0 = no limit
}

// Cells returns the total number of cells on the board.
func (c Configuration) Cells() int {
	return c.Width * c.Height
}

// SafeCells returns the number of mine-free cells that must be revealed to win.
func (c Configuration) SafeCells() int {
	return c.Cells() - c.Mines
}

// HasTimeLimit reports whether reaching TimeLimit ends the game.
func (c Configuration) HasTimeLimit() bool {
	return c.TimeLimit > 0
}

// String returns a compact "WxH/M" representation.
func (c Configuration) String() string {
	return fmt.Sprintf("%dx%d/%d", c.Width, c.Height, c.Mines)
}

// ValidationError reports which field of a Configuration is out of bounds.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("engine: invalid %s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrInvalidConfiguration) succeed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// Validate checks the configuration bounds.
func (c Configuration) Validate() error {
	if c.Width < MinDimension || c.Width > MaxDimension {
		return &ValidationError{
			Field:   "width",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinDimension, MaxDimension, c.Width),
		}
	}
	if c.Height < MinDimension || c.Height > MaxDimension {
		return &ValidationError{
			Field:   "height",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinDimension, MaxDimension, c.Height),
		}
	}
	if c.Mines < 1 {
		return &ValidationError{
			Field:   "mines",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Mines),
		}
	}
	// At least one cell has to stay safe
	if c.Mines > c.Cells()-1 {
		return &ValidationError{
			Field:   "mines",
			Message: fmt.Sprintf("cannot have more mines than cells in the grid (max %d, got %d)", c.Cells()-1, c.Mines),
		}
	}
	if c.TimeLimit < 0 {
		return &ValidationError{
			Field:   "time_limit",
			Message: fmt.Sprintf("must not be negative, got %d", c.TimeLimit),
		}
	}
	return nil
}

// Validate returns the configuration unchanged if it is valid.
func Validate(c Configuration) (Configuration, error) {
	if err := c.Validate(); err != nil {
		return Configuration{}, err
	}
	return c, nil
}

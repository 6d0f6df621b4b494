package player

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/callebjorkell/lightshow/internal/lightshow"
)

type Kind string

const (
	KindStart   Kind = "start"
	KindNext    Kind = "next"
	KindFade    Kind = "fade"
	KindStop    Kind = "stop"
	KindSolid   Kind = "solid"
	KindFlash   Kind = "flash"
	KindPulse   Kind = "pulse"
	KindRainbow Kind = "rainbow"
)

// Command is one instruction for the player. Only the fields that the kind
// uses are set.
type Command struct {
	Kind     Kind
	Show     int
	Duration time.Duration
	Color    lightshow.Pixel
	Interval uint32
	Steps    uint32
}

func (c Command) String() string {
	switch c.Kind {
	case KindStart:
		return fmt.Sprintf("%s %d", c.Kind, c.Show)
	case KindFade:
		return fmt.Sprintf("%s %v %v", c.Kind, c.Duration, c.Color)
	case KindStop:
		if c.Duration > 0 {
			return fmt.Sprintf("%s %v", c.Kind, c.Duration)
		}
	case KindSolid:
		return fmt.Sprintf("%s %v", c.Kind, c.Color)
	case KindFlash:
		return fmt.Sprintf("%s %v %d", c.Kind, c.Color, c.Interval)
	case KindPulse:
		return fmt.Sprintf("%s %v %d %d", c.Kind, c.Color, c.Interval, c.Steps)
	case KindRainbow:
		return fmt.Sprintf("%s %d", c.Kind, c.Interval)
	}
	return string(c.Kind)
}

// ParseCommand reads the text form of a command, for example "start 2",
// "fade 1s #ff0000" or "pulse #0000ff 1 100".
func ParseCommand(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	c := Command{Kind: Kind(strings.ToLower(fields[0]))}
	args := fields[1:]

	var err error
	switch c.Kind {
	case KindStart:
		if err = arity(c.Kind, args, 1); err != nil {
			break
		}
		c.Show, err = strconv.Atoi(args[0])
	case KindNext:
		err = arity(c.Kind, args, 0)
	case KindFade:
		if err = arity(c.Kind, args, 2); err != nil {
			break
		}
		if c.Duration, err = parseDuration(args[0]); err != nil {
			break
		}
		c.Color, err = lightshow.ParseHex(args[1])
	case KindStop:
		if len(args) > 1 {
			err = fmt.Errorf("%s takes at most one argument", c.Kind)
			break
		}
		if len(args) == 1 {
			c.Duration, err = parseDuration(args[0])
		}
	case KindSolid:
		if err = arity(c.Kind, args, 1); err != nil {
			break
		}
		c.Color, err = lightshow.ParseHex(args[0])
	case KindFlash:
		if err = arity(c.Kind, args, 2); err != nil {
			break
		}
		if c.Color, err = lightshow.ParseHex(args[0]); err != nil {
			break
		}
		c.Interval, err = parseCount(args[1])
	case KindPulse:
		if err = arity(c.Kind, args, 3); err != nil {
			break
		}
		if c.Color, err = lightshow.ParseHex(args[0]); err != nil {
			break
		}
		if c.Interval, err = parseCount(args[1]); err != nil {
			break
		}
		c.Steps, err = parseCount(args[2])
	case KindRainbow:
		if err = arity(c.Kind, args, 1); err != nil {
			break
		}
		c.Interval, err = parseCount(args[0])
	default:
		err = fmt.Errorf("unknown command %q", fields[0])
	}

	if err != nil {
		return Command{}, err
	}
	return c, nil
}

func arity(k Kind, args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("%s takes %d argument(s), got %d", k, n, len(args))
	}
	return nil
}

func parseDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration %v cannot be negative", d)
	}
	return d, nil
}

func parseCount(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q: %w", s, err)
	}
	return uint32(n), nil
}

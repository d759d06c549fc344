package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration read from text like "10s". It can be used
// in the configuration file and as a command line flag.
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Set implements flag.Value.
func (d *Duration) Set(s string) error {
	return d.UnmarshalText([]byte(s))
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses the duration, rejecting negative values.
func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	if p < 0 {
		return fmt.Errorf("negative duration %q", text)
	}
	*d = Duration(p)
	return nil
}

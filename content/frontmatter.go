package content

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v2"
)

// formats are the accepted front matter delimiters.
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// dateLayouts are the timestamp forms accepted in YAML front matter.
var dateLayouts = []string{
	"2006-1-2T15:4:5.999999999Z07:00",
	"2006-1-2t15:4:5.999999999Z07:00",
	"2006-1-2 15:4:5.999999999",
	"2006-1-2",
}

// parseFrontMatter splits the front matter from the Markdown body and
// unmarshals it into md. Sources without front matter are returned as-is.
func parseFrontMatter(src []byte, md *Metadata) ([]byte, error) {
	body, err := frontmatter.Parse(bytes.NewReader(src), md, formats...)
	if err != nil {
		return nil, fmt.Errorf("parseFrontMatter: %w", err)
	}
	return body, nil
}

// UnmarshalYAML reads YAML front matter. Order and date may also be given
// as quoted strings. Fields that convert are kept when another one fails.
func (m *Metadata) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw struct {
		Type        Type     `yaml:"type"`
		Title       string   `yaml:"title"`
		Date        string   `yaml:"date"`
		Description string   `yaml:"description"`
		Order       *string  `yaml:"order"`
		Tags        []string `yaml:"tags"`
	}
	err := unmarshal(&raw)
	if err != nil {
		return err
	}
	m.Type = raw.Type
	m.Title = raw.Title
	m.Description = raw.Description
	m.Tags = raw.Tags

	var errs []error
	if raw.Order != nil {
		o, err := parseOrder(*raw.Order)
		if err != nil {
			errs = append(errs, err)
		} else {
			m.Order = &o
		}
	}
	if raw.Date != "" {
		d, err := parseDate(raw.Date)
		if err != nil {
			errs = append(errs, err)
		} else {
			m.Date = d
		}
	}
	return errors.Join(errs...)
}

func parseOrder(s string) (float64, error) {
	o, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), "_", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("order %q is not a number", s)
	}
	return o, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q is not a date", s)
}

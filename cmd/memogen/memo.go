package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	memogen "github.com/Walidelmasri/MemoGeneratorV1"
)

// memoFile is the YAML input format.
type memoFile struct {
	To             string  `yaml:"to"`
	Through        string  `yaml:"through"`
	From           string  `yaml:"from"`
	Subject        string  `yaml:"subject"`
	Body           string  `yaml:"body"`
	Format         string  `yaml:"format"`
	Classification string  `yaml:"classification"`
	MemoNumber     string  `yaml:"memo_number"`
	Date           string  `yaml:"date"`
	Banner         string  `yaml:"banner"`
	Footer         string  `yaml:"footer"`
	Margin         float64 `yaml:"margin"`

	// dir is the directory of the memo file; relative image paths resolve there.
	dir string
}

func readMemo(path string) (*memoFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read memo file: %w", err)
	}
	var m memoFile
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse memo file: %w", err)
	}
	m.dir = filepath.Dir(path)
	return &m, nil
}

// imageLoader is satisfied by *memogen.Generator.
type imageLoader interface {
	LoadImage(ref string) ([]byte, error)
}

func (m *memoFile) input(l imageLoader) (memogen.Input, error) {
	in := memogen.Input{
		To:             m.To,
		Through:        m.Through,
		From:           m.From,
		Subject:        m.Subject,
		Body:           m.Body,
		Format:         memogen.Format(m.Format),
		Classification: m.Classification,
		MemoNumber:     m.MemoNumber,
		Margin:         m.Margin,
	}
	if m.Date != "" {
		d, err := time.Parse("2006-01-02", m.Date)
		if err != nil {
			return in, fmt.Errorf("invalid date %q: %w", m.Date, err)
		}
		in.Date = d
	}
	var err error
	if m.Banner != "" {
		if in.Banner, err = l.LoadImage(m.Banner); err != nil {
			return in, fmt.Errorf("banner: %w", err)
		}
	}
	if m.Footer != "" {
		if in.Footer, err = l.LoadImage(m.Footer); err != nil {
			return in, fmt.Errorf("footer: %w", err)
		}
	}
	return in, nil
}

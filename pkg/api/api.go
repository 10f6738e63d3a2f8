package api

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/document"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/layout"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/pagination"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/render/pdf"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/res"
)

// Input is one memo generation request.
type Input = document.Input

// Format selects how Input.Body is read.
type Format = document.Format

const (
	FormatHTML     = document.FormatHTML
	FormatMarkdown = document.FormatMarkdown
)

// Plan is the assembled, renderer-agnostic memo.
type Plan = document.Plan

// Renderer turns an assembled plan into document bytes.
type Renderer interface {
	Render(p *document.Plan) ([]byte, error)
}

// Generator is the main API for producing memos
type Generator struct {
	options   Options
	assembler *document.Assembler
	renderer  Renderer
	loader    *res.Loader
	log       *logrus.Logger
}

// New creates a new memo generator with default options
func New() *Generator {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates a new memo generator with the specified options
func NewWithOptions(options Options) *Generator {
	if options.Now == nil {
		options.Now = DefaultOptions().Now
	}
	log := options.Logger
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.WarnLevel)
	}
	if options.Debug && !log.IsLevelEnabled(logrus.DebugLevel) {
		log = debugLogger(log)
	}

	fonts := layout.Fonts{Latin: options.LatinFont.Family, Arabic: options.ArabicFont.Family}
	renderer := options.Renderer
	if renderer == nil {
		renderer = pdf.NewRenderer(pdf.Options{
			FontDir: options.FontDirectory,
			Fonts:   fontSpecs(options.LatinFont, options.ArabicFont),
			Author:  options.Author,
			Creator: options.Creator,
			Logger:  log,
			Debug:   options.Debug,
		})
	}

	loader := res.NewLoader("")
	for _, path := range options.ResourcePaths {
		loader.AddSearchPath(path)
	}

	return &Generator{
		options: options,
		assembler: document.NewAssembler(document.Config{
			PageSize:     pageSize(options),
			Margin:       options.Margin,
			BodyGap:      options.BodyGap,
			SpacerHeight: options.SpacerHeight,
			Fonts:        fonts,
			Logger:       log,
			Now:          options.Now,
		}),
		renderer: renderer,
		loader:   loader,
		log:      log,
	}
}

// debugLogger returns a copy of base logging at Debug level, leaving base and
// its other users untouched.
func debugLogger(base *logrus.Logger) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(base.Out)
	l.SetFormatter(base.Formatter)
	l.SetReportCaller(base.ReportCaller)
	hooks := make(logrus.LevelHooks, len(base.Hooks))
	for level, hs := range base.Hooks {
		hooks[level] = append([]logrus.Hook(nil), hs...)
	}
	l.ReplaceHooks(hooks)
	l.SetLevel(logrus.DebugLevel)
	return l
}

func fontSpecs(specs ...pdf.FontSpec) []pdf.FontSpec {
	var out []pdf.FontSpec
	for _, s := range specs {
		if s.Family != "" {
			out = append(out, s)
		}
	}
	return out
}

// pageSize applies the orientation to the configured dimensions. Zero
// dimensions select A4.
func pageSize(o Options) pagination.PageSize {
	size := pagination.PageSize{Width: o.PageWidth, Height: o.PageHeight, Name: "Custom"}
	if size.Width <= 0 || size.Height <= 0 {
		size = pagination.PageSizeA4
	}
	switch o.PageOrientation {
	case PageOrientationLandscape:
		size = size.Landscape()
	default:
		if size.Width > size.Height {
			size.Width, size.Height = size.Height, size.Width
		}
	}
	return size
}

// Plan assembles in without rendering it.
func (g *Generator) Plan(in Input) *Plan {
	return g.assembler.Assemble(in)
}

// Generate renders in and returns the document bytes together with a
// suggested file name.
func (g *Generator) Generate(in Input) ([]byte, string, error) {
	plan := g.assembler.Assemble(in)
	data, err := g.renderer.Render(plan)
	if err != nil {
		return nil, "", fmt.Errorf("failed to render memo: %w", err)
	}
	name := document.Filename(plan.Created)
	g.log.WithFields(logrus.Fields{
		"file":  name,
		"bytes": len(data),
	}).Debug("generated memo")
	return data, name, nil
}

// GenerateTo renders in to w and returns the suggested file name.
func (g *Generator) GenerateTo(in Input, w io.Writer) (string, error) {
	data, name, err := g.Generate(in)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to write memo: %w", err)
	}
	return name, nil
}

// GenerateToFile renders in into dir under the suggested file name and
// returns the path written.
func (g *Generator) GenerateToFile(in Input, dir string) (string, error) {
	data, name, err := g.Generate(in)
	if err != nil {
		return "", err
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write memo: %w", err)
	}
	g.log.WithField("path", path).Info("memo written")
	return path, nil
}

// LoadImage reads a banner or footer image from a file path, search path,
// data URL or http(s) URL and returns its bytes in a form ready for Input.
func (g *Generator) LoadImage(ref string) ([]byte, error) {
	img, err := g.loader.LoadImage(ref)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}
	return img.Data, nil
}

// Options returns a copy of the generator's options.
func (g *Generator) Options() Options {
	return g.options
}

// WithOptions returns a new generator with the specified options
func (g *Generator) WithOptions(options Options) *Generator {
	return NewWithOptions(options)
}

// WithOption returns a new generator with the specified option set
func (g *Generator) WithOption(option Option) *Generator {
	newOptions := g.options
	option(&newOptions)
	return NewWithOptions(newOptions)
}

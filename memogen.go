// Package memogen generates bilingual (English/Arabic) memo PDFs from a set of
// header fields and a rich-text body.
package memogen

import (
	"github.com/Walidelmasri/MemoGeneratorV1/internal/render/pdf"
	"github.com/Walidelmasri/MemoGeneratorV1/pkg/api"
)

type Generator = api.Generator
type Options = api.Options
type Option = api.Option
type Input = api.Input
type Format = api.Format
type Plan = api.Plan
type Renderer = api.Renderer
type PageOrientation = api.PageOrientation
type FontSpec = pdf.FontSpec

func New() *Generator                           { return api.New() }
func NewWithOptions(options Options) *Generator { return api.NewWithOptions(options) }
func DefaultOptions() Options                   { return api.DefaultOptions() }

var (
	WithPageSize        = api.WithPageSize
	WithPageSizeA4      = api.WithPageSizeA4
	WithPageSizeLetter  = api.WithPageSizeLetter
	WithPageSizeLegal   = api.WithPageSizeLegal
	WithPageSizeA3      = api.WithPageSizeA3
	WithPageSizeA5      = api.WithPageSizeA5
	WithPageOrientation = api.WithPageOrientation
	WithMargin          = api.WithMargin
	WithBodyGap         = api.WithBodyGap
	WithSpacerHeight    = api.WithSpacerHeight
	WithFontDirectory   = api.WithFontDirectory
	WithFonts           = api.WithFonts
	WithResourcePath    = api.WithResourcePath
	WithAuthor          = api.WithAuthor
	WithCreator         = api.WithCreator
	WithDebug           = api.WithDebug
	WithLogger          = api.WithLogger
	WithClock           = api.WithClock
	WithRenderer        = api.WithRenderer
)

var (
	LatinFonts  = pdf.LatinFonts
	ArabicFonts = pdf.ArabicFonts
)

const (
	FormatHTML     = api.FormatHTML
	FormatMarkdown = api.FormatMarkdown

	PageOrientationPortrait  = api.PageOrientationPortrait
	PageOrientationLandscape = api.PageOrientationLandscape
)

package api

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/pagination"
	"github.com/Walidelmasri/MemoGeneratorV1/internal/render/pdf"
)

// Options represents configuration options for the memo generator
type Options struct {
	// Page dimensions
	PageWidth  float64
	PageHeight float64
	// Page orientation: portrait or landscape
	PageOrientation PageOrientation

	// Margin applies to every side of the page
	Margin float64
	// BodyGap separates the header fields from the body
	BodyGap float64
	// SpacerHeight is the height of a blank body line
	SpacerHeight float64

	// Fonts
	FontDirectory string
	LatinFont     pdf.FontSpec
	ArabicFont    pdf.FontSpec

	// Resource paths searched for banner and footer files
	ResourcePaths []string

	// Document metadata
	Author  string
	Creator string

	Debug  bool
	Logger *logrus.Logger

	// Now is the clock used for the memo date and the suggested filename
	Now func() time.Time

	// Renderer draws the assembled plan; nil selects the PDF renderer
	Renderer Renderer
}

// Option is a function that modifies Options
type Option func(*Options)

// PageOrientation represents page orientation
type PageOrientation string

const (
	// PageOrientationPortrait sets the page to portrait orientation
	PageOrientationPortrait PageOrientation = "portrait"
	// PageOrientationLandscape sets the page to landscape orientation
	PageOrientationLandscape PageOrientation = "landscape"
)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		// A4 portrait with half-inch margins
		PageWidth:       pagination.PageSizeA4.Width,
		PageHeight:      pagination.PageSizeA4.Height,
		PageOrientation: PageOrientationPortrait,
		Margin:          pagination.DefaultMargin,

		LatinFont:  pdf.LatinFonts,
		ArabicFont: pdf.ArabicFonts,

		ResourcePaths: []string{},

		Creator: "MemoGenerator",
		Now:     time.Now,
	}
}

// WithPageSize sets the page size
func WithPageSize(width, height float64) Option {
	return func(o *Options) {
		o.PageWidth = width
		o.PageHeight = height
	}
}

// WithPageSizeA4 sets the page size to A4
func WithPageSizeA4() Option {
	return WithPageSize(pagination.PageSizeA4.Width, pagination.PageSizeA4.Height)
}

// WithPageSizeLetter sets the page size to US Letter
func WithPageSizeLetter() Option {
	return WithPageSize(pagination.PageSizeLetter.Width, pagination.PageSizeLetter.Height)
}

// WithPageSizeLegal sets the page size to US Legal
func WithPageSizeLegal() Option {
	return WithPageSize(pagination.PageSizeLegal.Width, pagination.PageSizeLegal.Height)
}

// WithPageSizeA3 sets the page size to A3
func WithPageSizeA3() Option {
	return WithPageSize(pagination.PageSizeA3.Width, pagination.PageSizeA3.Height)
}

// WithPageSizeA5 sets the page size to A5
func WithPageSizeA5() Option {
	return WithPageSize(pagination.PageSizeA5.Width, pagination.PageSizeA5.Height)
}

// WithPageOrientation sets the page orientation
func WithPageOrientation(orientation PageOrientation) Option {
	return func(o *Options) {
		o.PageOrientation = orientation
	}
}

// WithMargin sets the page margin
func WithMargin(margin float64) Option {
	return func(o *Options) {
		o.Margin = margin
	}
}

// WithBodyGap sets the space between the header fields and the body
func WithBodyGap(gap float64) Option {
	return func(o *Options) {
		o.BodyGap = gap
	}
}

// WithSpacerHeight sets the height of blank body lines
func WithSpacerHeight(h float64) Option {
	return func(o *Options) {
		o.SpacerHeight = h
	}
}

// WithFontDirectory sets the directory holding the TrueType font files
func WithFontDirectory(dir string) Option {
	return func(o *Options) {
		o.FontDirectory = dir
	}
}

// WithFonts replaces the Latin and Arabic font families
func WithFonts(latin, arabic pdf.FontSpec) Option {
	return func(o *Options) {
		o.LatinFont = latin
		o.ArabicFont = arabic
	}
}

// WithResourcePath adds a path to search for banner and footer files
func WithResourcePath(path string) Option {
	return func(o *Options) {
		o.ResourcePaths = append(o.ResourcePaths, path)
	}
}

// WithAuthor sets the document author
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}

// WithCreator sets the document creator
func WithCreator(creator string) Option {
	return func(o *Options) {
		o.Creator = creator
	}
}

// WithDebug sets the debug mode
func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

// WithLogger sets the logger
func WithLogger(logger *logrus.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

// WithClock sets the clock used for dates and filenames
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		o.Now = now
	}
}

// WithRenderer replaces the PDF renderer
func WithRenderer(r Renderer) Option {
	return func(o *Options) {
		o.Renderer = r
	}
}

package pdf

import (
	"io"
	"sort"
	"strings"
	"sync"

	"codeberg.org/go-pdf/fpdf"
	"github.com/sirupsen/logrus"

	"github.com/Walidelmasri/MemoGeneratorV1/internal/res"
)

// FontSpec names the TrueType files of one family keyed by fpdf style
// ("", "B", "I", "BI").
type FontSpec struct {
	Family string
	Files  map[string]string
}

// Default families. Missing files fall back to FallbackFamily.
var (
	LatinFonts = FontSpec{
		Family: "DejaVuSans",
		Files: map[string]string{
			"":   "DejaVuSans.ttf",
			"B":  "DejaVuSans-Bold.ttf",
			"I":  "DejaVuSans-Oblique.ttf",
			"BI": "DejaVuSans-BoldOblique.ttf",
		},
	}
	ArabicFonts = FontSpec{
		Family: "Amiri",
		Files: map[string]string{
			"":   "Amiri-Regular.ttf",
			"B":  "Amiri-Bold.ttf",
			"I":  "Amiri-Italic.ttf",
			"BI": "Amiri-BoldItalic.ttf",
		},
	}
)

// FallbackFamily is the core PDF font used when a family has no regular face.
const FallbackFamily = "Helvetica"

// FontRegistry reads font files once and installs them into every document.
type FontRegistry struct {
	once  sync.Once
	dir   string
	specs []FontSpec
	log   logrus.FieldLogger
	faces map[string]map[string][]byte
}

var (
	registriesMu sync.Mutex
	registries   = map[string]*FontRegistry{}
)

// Fonts returns the process-wide registry for dir and specs. Files are read
// on first use; later calls with the same arguments share that result.
func Fonts(dir string, log logrus.FieldLogger, specs ...FontSpec) *FontRegistry {
	key := registryKey(dir, specs)

	registriesMu.Lock()
	defer registriesMu.Unlock()
	if r, ok := registries[key]; ok {
		return r
	}
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	r := &FontRegistry{dir: dir, specs: specs, log: log}
	registries[key] = r
	return r
}

func registryKey(dir string, specs []FontSpec) string {
	parts := []string{dir}
	for _, s := range specs {
		styles := make([]string, 0, len(s.Files))
		for st, f := range s.Files {
			styles = append(styles, st+"="+f)
		}
		sort.Strings(styles)
		parts = append(parts, s.Family+"{"+strings.Join(styles, ",")+"}")
	}
	return strings.Join(parts, "|")
}

func (r *FontRegistry) load() {
	r.faces = make(map[string]map[string][]byte)
	if r.dir == "" {
		r.log.Debug("no font directory configured, using core fonts")
		return
	}
	loader := res.NewLoader(r.dir)
	for _, spec := range r.specs {
		for style, file := range spec.Files {
			font, err := loader.LoadFont(file)
			if err != nil {
				r.log.WithError(err).WithFields(logrus.Fields{
					"family": spec.Family,
					"style":  style,
				}).Debug("font face unavailable")
				continue
			}
			if r.faces[spec.Family] == nil {
				r.faces[spec.Family] = make(map[string][]byte)
			}
			r.faces[spec.Family][style] = font.Data
		}
	}
}

// install adds every loaded face to doc and returns the resulting face table.
func (r *FontRegistry) install(doc *fpdf.Fpdf) faceTable {
	r.once.Do(r.load)
	for family, styles := range r.faces {
		if _, ok := styles[""]; !ok {
			continue
		}
		for style, data := range styles {
			doc.AddUTF8FontFromBytes(family, style, data)
		}
	}
	return faceTable(r.faces)
}

// faceTable maps family to the styles installed for it.
type faceTable map[string]map[string][]byte

// resolve picks the installed face closest to family/style. style may carry
// "U", which is passed through. utf8 reports whether the face is a UTF-8
// TrueType face rather than a core font.
func (t faceTable) resolve(family, style string) (fam, st string, utf8 bool) {
	underline := strings.Contains(style, "U")
	emph := strings.ReplaceAll(style, "U", "")
	suffix := ""
	if underline {
		suffix = "U"
	}

	styles, ok := t[family]
	if !ok || styles[""] == nil {
		return FallbackFamily, emph + suffix, false
	}
	for _, candidate := range []string{emph, strings.ReplaceAll(emph, "I", ""), ""} {
		if _, ok := styles[candidate]; ok {
			return family, candidate + suffix, true
		}
	}
	return family, suffix, true
}

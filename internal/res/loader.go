package res

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// ErrNotFound is returned when a local asset exists neither at its path nor
// in any search path.
var ErrNotFound = errors.New("resource not found")

// ResourceType represents the type of resource
type ResourceType int

const (
	// ResourceTypeUnknown is an unknown resource type
	ResourceTypeUnknown ResourceType = iota
	// ResourceTypeImage is an image resource
	ResourceTypeImage
	// ResourceTypeFont is a font resource
	ResourceTypeFont
	// ResourceTypeOther is any other resource
	ResourceTypeOther
)

// Resource represents a loaded resource
type Resource struct {
	URL      string
	Type     ResourceType
	Data     []byte
	MimeType string
}

// Loader fetches banner, footer and font assets. Results are cached by the
// reference they were requested with.
type Loader struct {
	// Base URL or file path for resolving relative references
	BaseURL string

	cache     map[string]*Resource
	cacheLock sync.RWMutex

	searchPaths []string

	client *http.Client
}

// NewLoader creates a new resource loader
func NewLoader(baseURL string) *Loader {
	return &Loader{
		BaseURL:     baseURL,
		cache:       make(map[string]*Resource),
		searchPaths: []string{},
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

// AddSearchPath adds a directory to search for local resources
func (l *Loader) AddSearchPath(path string) {
	l.searchPaths = append(l.searchPaths, path)
}

// Load loads a resource from a URL, data URL or file path
func (l *Loader) Load(ref string) (*Resource, error) {
	l.cacheLock.RLock()
	if res, ok := l.cache[ref]; ok {
		l.cacheLock.RUnlock()
		return res, nil
	}
	l.cacheLock.RUnlock()

	var (
		res *Resource
		err error
	)
	switch {
	case strings.HasPrefix(ref, "data:"):
		res, err = parseDataURL(ref)
	default:
		var resolved string
		resolved, err = l.resolveURL(ref)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %q: %w", ref, err)
		}
		if isRemote(resolved) {
			res, err = l.loadRemote(resolved)
		} else {
			res, err = l.loadLocal(resolved)
		}
	}
	if err != nil {
		return nil, err
	}

	l.cacheLock.Lock()
	l.cache[ref] = res
	l.cacheLock.Unlock()

	return res, nil
}

func isRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// parseDataURL parses a data URL (RFC 2397) and returns a Resource.
// Examples:
//
//	data:image/png;base64,<base64>
//	data:text/plain,Hello%20World
func parseDataURL(u string) (*Resource, error) {
	s := strings.TrimPrefix(u, "data:")
	meta, dataPart, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("invalid data URL")
	}

	mime := "application/octet-stream"
	isBase64 := false
	if meta != "" {
		comps := strings.Split(meta, ";")
		if comps[0] != "" {
			mime = comps[0]
		}
		for _, c := range comps[1:] {
			if strings.EqualFold(strings.TrimSpace(c), "base64") {
				isBase64 = true
			}
		}
	}

	var data []byte
	if isBase64 {
		var err error
		data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(dataPart))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 data URL: %w", err)
		}
	} else if d, err := url.QueryUnescape(dataPart); err == nil {
		data = []byte(d)
	} else {
		data = []byte(dataPart)
	}

	r := &Resource{URL: u, Data: data, MimeType: mime}
	r.Type = determineResourceType(mime, "")
	return r, nil
}

// resolveURL resolves a reference relative to the base URL
func (l *Loader) resolveURL(ref string) (string, error) {
	if isRemote(ref) || filepath.IsAbs(ref) || l.BaseURL == "" {
		return ref, nil
	}

	if !isRemote(l.BaseURL) {
		return filepath.Join(l.BaseURL, ref), nil
	}

	baseURL, err := url.Parse(l.BaseURL)
	if err != nil {
		return "", err
	}
	relURL, err := url.Parse(ref)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(relURL).String(), nil
}

func (l *Loader) loadRemote(urlStr string) (*Resource, error) {
	resp, err := l.client.Get(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch %s: HTTP %s", urlStr, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", urlStr, err)
	}

	res := &Resource{
		URL:      urlStr,
		Data:     data,
		MimeType: resp.Header.Get("Content-Type"),
	}
	res.Type = determineResourceType(res.MimeType, urlStr)
	return res, nil
}

func (l *Loader) loadLocal(path string) (*Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return l.loadFromSearchPaths(path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return newLocalResource(path, data), nil
}

func (l *Loader) loadFromSearchPaths(filename string) (*Resource, error) {
	base := filepath.Base(filename)
	for _, dir := range l.searchPaths {
		path := filepath.Join(dir, base)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return newLocalResource(path, data), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, filename)
}

func newLocalResource(path string, data []byte) *Resource {
	res := &Resource{URL: path, Data: data, MimeType: determineMimeType(path)}
	res.Type = determineResourceType(res.MimeType, path)
	return res
}

// determineMimeType determines the MIME type of a file
func determineMimeType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".tiff", ".tif":
		return "image/tiff"
	case ".bmp":
		return "image/bmp"
	case ".svg":
		return "image/svg+xml"
	case ".ttf":
		return "font/ttf"
	case ".otf":
		return "font/otf"
	default:
		return "application/octet-stream"
	}
}

// determineResourceType determines the type of a resource
func determineResourceType(mimeType, path string) ResourceType {
	if strings.HasPrefix(mimeType, "image/") {
		return ResourceTypeImage
	}
	if strings.HasPrefix(mimeType, "font/") {
		return ResourceTypeFont
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".tiff", ".tif", ".bmp":
		return ResourceTypeImage
	case ".ttf", ".otf":
		return ResourceTypeFont
	}
	return ResourceTypeOther
}

// LoadImage loads and normalizes an image asset.
func (l *Loader) LoadImage(ref string) (*Image, error) {
	res, err := l.Load(ref)
	if err != nil {
		return nil, err
	}
	img, err := NormalizeImage(res.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", ref, err)
	}
	return img, nil
}

// LoadFont loads a font resource
func (l *Loader) LoadFont(ref string) (*Resource, error) {
	res, err := l.Load(ref)
	if err != nil {
		return nil, err
	}
	if res.Type != ResourceTypeFont {
		return nil, fmt.Errorf("resource is not a font: %s", ref)
	}
	return res, nil
}

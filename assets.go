package guwen

import (
	"errors"

	"github.com/alnah/go-guwen/internal/assets"
)

// Built-in asset names.
const (
	DefaultStyle  = assets.DefaultStyleName  // stylesheet written by --write-style
	PageTemplate  = assets.PageTemplateName  // one study day
	IndexTemplate = assets.IndexTemplateName // optional home page
)

// AssetLoader supplies the stylesheet and page templates.
// Names carry no extension. Implementations report a missing asset with
// ErrStyleNotFound or ErrTemplateNotFound.
type AssetLoader interface {
	LoadStyle(name string) (string, error)
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader returns the built-in assets, overlaid by basePath when set.
// A custom directory holds styles/{name}.css and templates/{name}.html and
// needs only the files it overrides.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, publicAssetError(err, ErrStyleNotFound)
	}
	return &assetLoaderAdapter{resolver: resolver}, nil
}

// assetLoaderAdapter keeps internal sentinels out of the public API.
type assetLoaderAdapter struct {
	resolver *assets.AssetResolver
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	css, err := a.resolver.LoadStyle(name)
	return css, publicAssetError(err, ErrStyleNotFound)
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	tmpl, err := a.resolver.LoadTemplate(name)
	return tmpl, publicAssetError(err, ErrTemplateNotFound)
}

// assetErrorMap pairs internal asset sentinels with their public meaning.
// A nil public entry stands for the caller's own not-found sentinel: an
// invalid name can never be found.
var assetErrorMap = []struct {
	internal error
	public   error
}{
	{assets.ErrStyleNotFound, ErrStyleNotFound},
	{assets.ErrTemplateNotFound, ErrTemplateNotFound},
	{assets.ErrInvalidBasePath, ErrInvalidAssetPath},
	{assets.ErrInvalidAssetName, nil},
}

// publicAssetError rewraps err so errors.Is matches a public sentinel while
// Error() keeps the internal detail. Unknown errors pass through.
func publicAssetError(err, notFound error) error {
	if err == nil {
		return nil
	}
	for _, m := range assetErrorMap {
		if !errors.Is(err, m.internal) {
			continue
		}
		public := m.public
		if public == nil {
			public = notFound
		}
		return &assetError{public: public, detail: err}
	}
	return err
}

// assetError reports detail but unwraps to the public sentinel only.
type assetError struct {
	public error
	detail error
}

func (e *assetError) Error() string { return e.detail.Error() }
func (e *assetError) Unwrap() error { return e.public }

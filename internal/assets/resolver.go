package assets

import "errors"

// AssetResolver asks a chain of loaders in order and moves to the next one
// only when the current one reports "not found". The embedded loader always
// closes the chain, so a custom directory needs only the files it overrides.
type AssetResolver struct {
	chain []AssetLoader
}

// NewAssetResolver creates an AssetResolver. An empty customBasePath means
// embedded assets only; a non-empty one must be a readable directory.
func NewAssetResolver(customBasePath string) (*AssetResolver, error) {
	var chain []AssetLoader
	if customBasePath != "" {
		custom, err := NewFilesystemLoader(customBasePath)
		if err != nil {
			return nil, err
		}
		chain = append(chain, custom)
	}
	return &AssetResolver{chain: append(chain, NewEmbeddedLoader())}, nil
}

// LoadStyle loads a stylesheet from the first layer that has it.
func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadStyle(name) })
}

// LoadTemplate loads a template from the first layer that has it.
func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.first(func(l AssetLoader) (string, error) { return l.LoadTemplate(name) })
}

// Layers reports how many loaders the resolver consults, embedded included.
func (r *AssetResolver) Layers() int {
	return len(r.chain)
}

// first returns the first successful load. Validation and I/O errors stop
// the walk; the last layer's not-found error is returned when all miss.
func (r *AssetResolver) first(load func(AssetLoader) (string, error)) (string, error) {
	var err error
	for _, l := range r.chain {
		var content string
		if content, err = load(l); err == nil {
			return content, nil
		}
		if !errors.Is(err, ErrStyleNotFound) && !errors.Is(err, ErrTemplateNotFound) {
			return "", err
		}
	}
	return "", err
}

var _ AssetLoader = (*AssetResolver)(nil)

package guwen

import (
	"errors"

	"github.com/alnah/go-guwen/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrFrontMatter    = pipeline.ErrFrontMatter
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPageRender     = pipeline.ErrPageRender
	ErrIndexRender    = pipeline.ErrIndexRender

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style not found")
	ErrTemplateNotFound = errors.New("template not found")
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

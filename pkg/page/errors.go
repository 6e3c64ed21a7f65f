package page

import "errors"

var (
	ErrPageNotFound       = errors.New("page: content not found")
	ErrLayoutNotFound     = errors.New("page: layout not found")
	ErrRenderFailed       = errors.New("page: render failed")
	ErrInvalidFrontmatter = errors.New("page: invalid front matter")
)

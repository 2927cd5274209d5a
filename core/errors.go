package core

import "errors"

var (
	ErrInvalidMode  = errors.New("invalid mode")
	ErrNoFilePath   = errors.New("no file associated with buffer")
	ErrFailedToOpen = errors.New("failed to open file")
	ErrFailedToSave = errors.New("failed to save file")
)

type ErrorId int

const (
	ErrInvalidModeId ErrorId = iota
	ErrNoFilePathId
	ErrFailedToOpenId
	ErrFailedToSaveId
)

// EditorError pairs a stable id (for consumers switching on error kinds)
// with the underlying error.
type EditorError struct {
	id  ErrorId
	err error
}

func (e *EditorError) ID() ErrorId {
	return e.id
}

func (e *EditorError) Error() error {
	return e.err
}

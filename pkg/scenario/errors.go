package scenario

import "errors"

var (
	ErrFailedToParseYAML = errors.New("scenario: failed to parse YAML")
	ErrInvalidScenario   = errors.New("scenario: invalid scenario")
	ErrUnknownOperation  = errors.New("scenario: unknown operation")
	ErrReadingFile       = errors.New("scenario: failed to read file")
	ErrParsingCancelled  = errors.New("scenario: parsing cancelled")
)

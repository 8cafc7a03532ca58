package util

import "errors"

var (
	ErrTierNotFound       = errors.New("tier not found")
	ErrTierLocked         = errors.New("tier is locked")
	ErrNoGatekeeperExam   = errors.New("tier has no gatekeeper exam")
	ErrInvalidScore       = errors.New("score must be between 0 and 100")
	ErrCurriculumNotFound = errors.New("curriculum not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrInvalidTab         = errors.New("unknown activity tab")
	ErrEmptyContent       = errors.New("note content is empty")
	ErrPaperNotFound      = errors.New("paper not found")
	ErrPaperExists        = errors.New("paper already exists")
)

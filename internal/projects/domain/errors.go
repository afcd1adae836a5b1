package domain

import "errors"

var (
	ErrNotFound            = errors.New("project not found")
	ErrProjectExists       = errors.New("project id already exists")
	ErrAchievementNotFound = errors.New("achievement not found")
)

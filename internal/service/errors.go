package service

import "errors"

var (
	ErrDocsNotFound  = errors.New("docs directory not found")
	ErrIndexNotFound = errors.New("governance index not found")
)

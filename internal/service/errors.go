package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrAnnotationDisabled = errors.New("routing rule annotation is disabled")
)

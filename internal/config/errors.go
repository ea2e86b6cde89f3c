package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoLabels is returned when a label list is empty after trimming.
var ErrNoLabels = errors.New("at least one label is required")

// InvalidError reports every field that keeps a config from reaching the
// generation engine.
type InvalidError struct {
	Fields []string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", strings.Join(e.Fields, ", "))
}

// CategoriesError indicates the categories block could not be decoded or
// did not have the expected shape.
type CategoriesError struct {
	Err error
}

func (e *CategoriesError) Error() string {
	return fmt.Sprintf("invalid categories: %v", e.Err)
}

func (e *CategoriesError) Unwrap() error { return e.Err }

package models

import "errors"

var (
	// ErrGeneral is used for unexpected errors where we do not want to
	// expose details to the user.
	ErrGeneral = errors.New("an error occurred on the server during your request")

	ErrCategoryExists      = errors.New("this category already exists")
	ErrCategoryNotFound    = errors.New("this category does not exist")
	ErrKeywordExists       = errors.New("this keyword already exists for the category")
	ErrKeywordEmpty        = errors.New("the keyword must not be empty")
	ErrTransactionNotFound = errors.New("this transaction does not exist")

	// ErrPersist wraps failures to write the category store. These must
	// surface since a swallowed write failure silently loses learned
	// keywords.
	ErrPersist = errors.New("the category store could not be saved")
)

package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrMalformedEvent = errors.New("event is missing a start or end time")
)

package dberrors

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Mongo duplicate key error code
const duplicateKeyCode = 11000

// IsDuplicateKey reports whether err is a unique index violation
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == duplicateKeyCode {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == duplicateKeyCode {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}

// IsNoDocuments reports whether err means the query matched nothing
func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

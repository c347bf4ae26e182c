// Package validation provides centralized input validation logic.
// This includes bucket name validation and object key validation.
//
// Inputs are validated before being sent to the storage backend so malformed
// names fail locally instead of surfacing as opaque API errors.
package validation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ajroetker/datafusion-gcs/errors"
)

// ValidateBucketName validates that a bucket name complies with Cloud Storage
// naming rules. Returns ErrInvalidInput if the bucket name is invalid.
func ValidateBucketName(bucket string) error {
	if bucket == "" {
		return errors.NewError("validateBucketName", errors.ErrInvalidInput).
			WithMessage("bucket name cannot be empty")
	}

	// Names without dots are limited to 63 characters; dotted names may be
	// longer but each dot-separated component keeps the same limit.
	if len(bucket) < 3 || len(bucket) > 222 {
		return errors.NewError("validateBucketName", errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name must be between 3 and 222 characters long")
	}
	for _, component := range strings.Split(bucket, ".") {
		if len(component) == 0 || len(component) > 63 {
			return errors.NewError("validateBucketName", errors.ErrInvalidInput).
				WithBucket(bucket).
				WithMessage("each dot-separated component must be between 1 and 63 characters long")
		}
	}

	if err := validateBucketNameCharacters(bucket); err != nil {
		return err
	}

	first := bucket[0]
	last := bucket[len(bucket)-1]
	if !isLowerAlphaNum(first) || !isLowerAlphaNum(last) {
		return errors.NewError("validateBucketName", errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name must start and end with a letter or number")
	}

	return nil
}

// ValidateObjectKey validates that an object key is valid according to Cloud
// Storage object naming rules.
func ValidateObjectKey(key string) error {
	if key == "" {
		return errors.NewError("validateObjectKey", errors.ErrInvalidInput).
			WithMessage("object key cannot be empty")
	}

	// Object names are limited to 1024 bytes of UTF-8
	if len(key) > 1024 {
		return errors.NewError("validateObjectKey", errors.ErrInvalidInput).
			WithKey(key).
			WithMessage("object key cannot exceed 1024 bytes")
	}

	if !utf8.ValidString(key) {
		return errors.NewError("validateObjectKey", errors.ErrInvalidInput).
			WithKey(key).
			WithMessage("object key must be valid UTF-8")
	}

	if key == "." || key == ".." {
		return errors.NewError("validateObjectKey", errors.ErrInvalidInput).
			WithKey(key).
			WithMessage("object key cannot be '.' or '..'")
	}

	if hasControlCharacters(key) {
		return errors.NewError("validateObjectKey", errors.ErrInvalidInput).
			WithKey(key).
			WithMessage("object key cannot contain control characters")
	}

	return nil
}

// validateBucketNameCharacters validates the character set of a bucket name
func validateBucketNameCharacters(bucket string) error {
	for _, r := range bucket {
		if r >= 'a' && r <= 'z' {
			continue
		}
		if r >= '0' && r <= '9' {
			continue
		}
		if r == '-' || r == '_' || r == '.' {
			continue
		}
		return errors.NewError("validateBucketName", errors.ErrInvalidInput).
			WithBucket(bucket).
			WithMessage("bucket name can only contain lowercase letters, numbers, dashes, underscores, and dots")
	}
	return nil
}

// hasControlCharacters reports whether a key contains control characters,
// including carriage returns and line feeds which Cloud Storage rejects
func hasControlCharacters(key string) bool {
	for _, r := range key {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}

func isLowerAlphaNum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Material errors
	ErrMsgMaterialNotFound        = "material not found"
	ErrMsgMissingField            = "missing mandatory field"
	ErrMsgInvalidDamageAdjectives = "dmg_adj must contain exactly 4 entries"
	ErrMsgTooManyBurnLevels       = "too many burn_data entries"
	ErrMsgUnknownCopyFrom         = "copy-from references an unknown material"
	ErrMsgInvalidDefinition       = "invalid material definition"
	ErrMsgWrongRecordType         = "record type is not material"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"

	// Input errors
	ErrMsgInvalidInput      = "invalid input"
	ErrMsgInvalidDamageType = "unknown damage type"
	ErrMsgUnsupportedFormat = "unsupported content format"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Material errors
	ErrMaterialNotFound        = errors.New(ErrMsgMaterialNotFound)
	ErrMissingField            = errors.New(ErrMsgMissingField)
	ErrInvalidDamageAdjectives = errors.New(ErrMsgInvalidDamageAdjectives)
	ErrTooManyBurnLevels       = errors.New(ErrMsgTooManyBurnLevels)
	ErrUnknownCopyFrom         = errors.New(ErrMsgUnknownCopyFrom)
	ErrInvalidDefinition       = errors.New(ErrMsgInvalidDefinition)
	ErrWrongRecordType         = errors.New(ErrMsgWrongRecordType)

	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Database errors
	ErrDatabase = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput      = errors.New(ErrMsgInvalidInput)
	ErrInvalidDamageType = errors.New(ErrMsgInvalidDamageType)
	ErrUnsupportedFormat = errors.New(ErrMsgUnsupportedFormat)
)

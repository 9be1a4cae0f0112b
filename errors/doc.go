/*
Package errors provides semantic error types for jobentity.

Codec errors are raised when a property bag read from storage does not
honour the job record schema:

	var (
	    ErrMissingField = errors.New("missing field")
	    ErrTypeMismatch = errors.New("type mismatch")
	)

Store errors are raised by the property bag stores:

	var (
	    ErrNotFound        = errors.New("entity not found")
	    ErrAlreadyExists   = errors.New("entity already exists")
	    ErrInvalidInput    = errors.New("invalid input")
	    ErrConditionFailed = errors.New("condition check failed")
	)

Usage:

	rec, err := entity.ToRecord(bag)
	if err != nil {
	    if errors.IsMissingField(err) {
	        // the stored item predates the schema
	    }
	    return err
	}

Every typed error implements Is, so wrapped errors keep matching their
sentinel through errors.Is and the IsXxx helpers.
*/
package errors

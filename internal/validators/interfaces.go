// Package validators checks inbound request payloads before any service
// logic runs. Validation is structural and syntactic only (required fields,
// email syntax, password length); domain rules such as email uniqueness
// stay with the services and the storage constraints.
package validators

import "context"

// Validator checks an arbitrary value. Passing field names restricts the
// check to those fields; with none given the whole value is validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}

// Package binder turns an HTTP request into a validator.Record.
//
// Record merges every parameter source of a request into one flat map so a
// rule set can be checked against it without caring where a value came from:
//
//	record, err := binder.Record(r)
//	if err != nil {
//		return handler.BadRequest(err.Error())
//	}
//	if err := v.Validate(record); err != nil {
//		return err
//	}
//
// Sources are applied in this order, later ones overwriting earlier keys:
// chi path parameters, the query string, then the body. JSON bodies must be
// objects and keep their nesting, so dotted rule paths such as "user.email"
// resolve into them. Urlencoded and multipart form values are flattened:
// single values become strings and repeated keys stay []string.
package binder

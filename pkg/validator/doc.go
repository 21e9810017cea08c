// Package validator is a declarative field-validation rule engine. It checks a
// plain record (for example merged query and body parameters) against
// ordered per-field rules and renders user-facing messages from a template
// catalog.
//
// Rules are declared either with the compact grammar or as structured values;
// both produce the same FieldRuleSet:
//
//	set := validator.MustParse(
//		"name|Name", "require|length:3,4",
//		"age", "number|between:1,120",
//		"password2", "require|confirm:password",
//	)
//
//	set = validator.Set(
//		validator.Rules("name|Name", validator.NewRule("require"), validator.NewRule("length", 3, 4)),
//		validator.Rules("age", validator.NewRule("number"), validator.NewRule("between", 1, 120)),
//	)
//
// # Evaluation
//
// Fields are checked in declaration order. The value of a field is resolved
// with Resolve, which follows dotted paths into nested maps. Within a field
// the rules run in order and stop at the first failure. Every kind except
// require, confirm, different and callable rules passes when the value is
// absent; nil, "", false, numeric zero and NaN count as absent, "0" does not.
//
// # Failure policies
//
//   - Aggregate collects every failing field and never returns a ValidationError.
//   - FailFast collects every failing field and, with auto-throw on, returns a
//     single ValidationError for the first failure once the pass is complete.
//   - ThrowOnFirst returns a ValidationError at the first failing rule.
//
// # Messages
//
// A failure message comes from, in order: an override for "field.kind", an
// override for "field", the rule's own message, the catalog template for the
// kind, and the catalog fallback. Templates substitute :attribute, :rule and
// :1 to :3. English and Chinese catalogs are embedded; WithLocale picks one.
//
// # Errors
//
// Declaration problems surface as SpecificationError, UnknownRuleError or
// ErrMissingParams, normally from New. ValidationError is the only error meant
// for end users; it carries the message, an application error code and a
// snapshot of all field errors.
//
// A Validator keeps the errors of its last check and must not be shared
// between concurrent checks; rule sets and catalogs are immutable and may be.
package validator

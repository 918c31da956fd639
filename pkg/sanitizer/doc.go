// Package sanitizer provides value transforms for the validation engine's
// sanitize stage.
//
// Every helper returns a func(any) any, the shape a formkit schema accepts in
// Sanitize. Transforms rewrite a field's working copy before its rules run;
// the caller's original data is never touched. A transform that receives a
// value of an unexpected dynamic type passes it through unchanged, so a
// misbehaving client sending a number where a string belongs reaches the
// rules as-is and fails there with a proper message instead of panicking in
// the sanitize stage.
//
// # Usage
//
//	schema := formkit.NewSchema("signup").
//		Sanitize("email", sanitizer.Pipeline(sanitizer.Trim(), sanitizer.ToLower())).
//		Field("email", formkit.Named("IsRequired"), formkit.Named("Email"))
//
// Typed transforms of your own lift into the same shape with Lift:
//
//	schema.Sanitize("slug", sanitizer.Lift(mySlugify))
package sanitizer

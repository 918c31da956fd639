// Package webform exposes validation schemas over HTTP, so browser forms can
// be checked server-side without writing a handler per form.
//
// A Service holds named schemas and serves two endpoints per form: full
// payload validation and single-field validation for as-you-type feedback.
// Payloads are extracted with the binder package, so JSON, form-encoded and
// query inputs all work, and failure messages are localized from the
// Accept-Language header.
//
//	svc := webform.New(
//		webform.WithSchema(signupSchema),
//		webform.WithLogger(log),
//	)
//	err := webform.Run(ctx, cfg, svc.Router(), log)
//
// Routes:
//
//	GET  /healthz
//	GET  /forms
//	GET  /forms/{form}
//	POST /forms/{form}/validate
//	POST /forms/{form}/fields/{field}/validate
//
// The field endpoint validates the raw submitted value; sanitizers only run
// during full payload validation, where the cleaned data is echoed back.
package webform

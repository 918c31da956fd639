// Package schemafile loads validation schemas from YAML or JSON documents,
// so payload shapes can live in config files instead of Go code.
//
// A document maps schema names to fields, and each field to its rule chain.
// A rule is either a bare name or a single-key map binding parameters:
//
//	signup:
//	  email:
//	    - IsRequired
//	    - Email
//	  age:
//	    - IsNumber
//	    - Between: [18, 130]
//	  role:
//	    - OneOf: [admin, editor, viewer]
//
// Field order in the document is evaluation order. Rule names are not
// checked against any registry at load time; an unknown name surfaces as a
// validation failure when the schema runs, the same as one declared in code.
//
// JSON documents go through the same parser, since YAML is a superset.
package schemafile

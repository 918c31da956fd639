// Package dbrule provides storage-backed validation rules: the expensive,
// I/O-bound checks a form runs last, such as "this email is not taken yet".
//
// Each constructor returns a formkit.RuleFunc bound to a backend handle, so
// schemas declare them inline:
//
//	schema := formkit.NewSchema("signup").
//		Field("email",
//			formkit.Named("IsRequired"),
//			formkit.Named("Email"),
//			formkit.Inline(dbrule.UniqueInTable(pool, "users", "email")),
//		)
//
// Because field chains fail fast, the database is only consulted after the
// cheap shape checks declared before the rule have passed. Rules honor the
// call's context, so request cancellation aborts in-flight lookups.
//
// Backends accept narrow interfaces (a row querier, a command runner, a
// document counter) satisfied by pgxpool.Pool, redis.Client and
// mongo.Collection respectively; tests substitute fakes. Connect helpers
// with env-tagged Configs are included for applications that own their
// backend lifecycle here.
package dbrule

package dbrule

import "errors"

var (
	ErrInvalidIdentifier = errors.New("dbrule: table and column names must be plain identifiers")
	ErrQueryFailed       = errors.New("dbrule: storage lookup failed")

	ErrFailedToParseDBConfig    = errors.New("dbrule: failed to parse postgres config")
	ErrFailedToOpenDBConnection = errors.New("dbrule: failed to open postgres connection")
	ErrFailedToParseRedisURL    = errors.New("dbrule: failed to parse redis connection url")
	ErrRedisNotReady            = errors.New("dbrule: redis is not ready")
	ErrFailedToConnectToMongo   = errors.New("dbrule: failed to connect to mongo")
)

package middleware

// contextKey is the type of keys this package stores in request contexts.
// Using a custom type prevents collisions.
type contextKey string

const loggerCtxKey = contextKey("logger")

// sessionAuthKey is the session value marking a logged-in owner.
const sessionAuthKey = "authenticated"

// analyticsDistinctIDKey is the gin context key holding the analytics identity.
const analyticsDistinctIDKey = "analyticsDistinctID"

package portal

const DatesLayout = "2006-01-02 15:04:05"

// ---- Middleware / HTTP

const RequestIDHeader = "X-Request-ID"
const UsernameHeader = "X-Auth-Username"

// ---- Middleware / Context

type contextKey string

const AuthAccountNameKey contextKey = "auth.account_name"
const RequestIDKey contextKey = "request.id"

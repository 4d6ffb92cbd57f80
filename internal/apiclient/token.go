package apiclient

// TokenProvider yields the current bearer token for outgoing requests.
//
// The client consults the provider on every call; an empty string means no
// Authorization header is attached at all. The client never writes or
// refreshes tokens; token lifecycle is owned by the auth collaborator.
type TokenProvider interface {
	Token() string
}

// TokenProviderFunc adapts a plain function to the TokenProvider interface.
type TokenProviderFunc func() string

// Token implements TokenProvider.
func (f TokenProviderFunc) Token() string {
	return f()
}

// StaticToken returns a provider that always yields the given token.
// Useful for tests and one-off scripts.
func StaticToken(token string) TokenProvider {
	return TokenProviderFunc(func() string { return token })
}

// NoToken returns a provider that never yields a token, so all requests go
// out unauthenticated.
func NoToken() TokenProvider {
	return TokenProviderFunc(func() string { return "" })
}

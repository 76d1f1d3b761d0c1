package middleware

import "net/http"

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Stack is an ordered middleware list. The first entry sees the request first.
type Stack []Middleware

// Chain returns a Stack of mws.
func Chain(mws ...Middleware) Stack {
	return Stack(mws)
}

// With returns a copy of s extended by mws.
func (s Stack) With(mws ...Middleware) Stack {
	out := make(Stack, 0, len(s)+len(mws))
	out = append(out, s...)
	return append(out, mws...)
}

// Then wraps h with the whole stack.
func (s Stack) Then(h http.Handler) http.Handler {
	for i := len(s) - 1; i >= 0; i-- {
		h = s[i](h)
	}
	return h
}

// ThenFunc is Then for a plain handler function.
func (s Stack) ThenFunc(fn http.HandlerFunc) http.Handler {
	return s.Then(fn)
}

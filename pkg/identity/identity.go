package identity

import "context"

// Actor is the authenticated worker performing an operation
type Actor struct {
	ID   string
	Role string
}

// Provider resolves the current actor for an operation. A nil actor means no
// one is authenticated; callers fail the whole operation in that case.
type Provider interface {
	CurrentActor(ctx context.Context) *Actor
}

type ctxKey struct{}

// WithActor returns a context carrying the given actor
func WithActor(ctx context.Context, actor *Actor) context.Context {
	return context.WithValue(ctx, ctxKey{}, actor)
}

// ContextProvider reads the actor out of the request context, where the HTTP
// auth middleware placed it
type ContextProvider struct{}

func (ContextProvider) CurrentActor(ctx context.Context) *Actor {
	actor, _ := ctx.Value(ctxKey{}).(*Actor)
	return actor
}

// StaticProvider always returns the same actor. Used by CLI commands that run
// as a configured operator rather than behind a session.
type StaticProvider struct {
	Actor *Actor
}

func (p StaticProvider) CurrentActor(ctx context.Context) *Actor {
	return p.Actor
}

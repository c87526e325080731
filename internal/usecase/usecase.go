package usecase

import "context"

// UseCase is one application operation taking input I and producing output O.
// Handlers depend on this shape so tests can swap in fakes.
type UseCase[I any, O any] interface {
	Execute(ctx context.Context, in *I) (*O, error)
}

package apctx

import (
	"context"

	"github.com/google/uuid"
)

const (
	uuidGeneratorKey = "uuidGenerator"
)

// UuidGenerator is an interface to an object that will provide random UUIDs. The default implementation delegates
// to uuid.New(). Tests use WithFixedUuidGenerator to make login state ids and correlation ids deterministic.
type UuidGenerator interface {
	New() uuid.UUID
	NewString() string
}

type realUuidGenerator struct{}

func (g *realUuidGenerator) New() uuid.UUID {
	return uuid.New()
}

func (g *realUuidGenerator) NewString() string {
	return uuid.NewString()
}

var realUuidGeneratorVal UuidGenerator = &realUuidGenerator{}

// GetUuidGenerator retrieves a UUID generator from the context if one has been set. If not, it returns the real
// generator.
func GetUuidGenerator(ctx context.Context) UuidGenerator {
	val := ctx.Value(uuidGeneratorKey)
	if val == nil {
		return realUuidGeneratorVal
	}

	return val.(UuidGenerator)
}

// WithUuidGenerator sets a UUID generator on the context.
func WithUuidGenerator(ctx context.Context, generator UuidGenerator) context.Context {
	return context.WithValue(ctx, uuidGeneratorKey, generator)
}

type fixedUuidGenerator struct {
	u uuid.UUID
}

func (g *fixedUuidGenerator) New() uuid.UUID {
	return g.u
}

func (g *fixedUuidGenerator) NewString() string {
	return g.u.String()
}

// WithFixedUuidGenerator sets a fixed UUID generator on the context that will always return the same UUID.
func WithFixedUuidGenerator(ctx context.Context, u uuid.UUID) context.Context {
	return WithUuidGenerator(ctx, &fixedUuidGenerator{u: u})
}

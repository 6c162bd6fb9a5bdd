package domain

import "context"

// ServicePort is consumed by handlers
type ServicePort interface {
	Recommend(ctx context.Context, in Input) (Output, error)
}

// Advisor completes a chat prompt into a JSON value; mistral.Client satisfies it
type Advisor interface {
	CompleteJSON(ctx context.Context, system, user string, out any) error
}

package cache

import "context"

// Noop is a Cache that stores nothing.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (Noop) Set(context.Context, string, []byte) {}

func (Noop) Invalidate(context.Context, string) {}

func (Noop) Clear(context.Context) {}

func (Noop) Stop() {}

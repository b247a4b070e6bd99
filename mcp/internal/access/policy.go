package access

import "context"

// Policy is the allow-list gating activity creation. Membership is exact
// string, case-sensitive. The set is injected at construction and never
// mutated afterwards, so it is safe for concurrent reads.
type Policy struct {
	allowed map[string]struct{}
}

// NewPolicy builds a Policy from the configured handles. Empty handles are
// ignored; an empty list means nobody may create activities.
func NewPolicy(handles []string) *Policy {
	p := &Policy{allowed: make(map[string]struct{}, len(handles))}
	for _, h := range handles {
		if h == "" {
			continue
		}
		p.allowed[h] = struct{}{}
	}
	return p
}

// Allows reports whether the handle may use the mutating tool.
func (p *Policy) Allows(handle string) bool {
	_, ok := p.allowed[handle]
	return ok
}

// AllowsContext reports whether the invocation's caller may use the
// mutating tool. Invocations without a principal fail closed.
func (p *Policy) AllowsContext(ctx context.Context) bool {
	pr, ok := PrincipalFrom(ctx)
	return ok && p.Allows(pr.Handle)
}

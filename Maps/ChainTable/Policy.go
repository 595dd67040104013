package ChainTable

// Policy decides how a table owns its values. A table with a Policy stores Clone(v) for every
// successful add and calls Release exactly once on that clone when the entry is removed or the
// table is destroyed. A table without one stores the caller's values as they are and never
// releases them.
type Policy[V any] interface {
	Clone(V) V
	Release(V)
}

// PolicyFuncs builds a Policy from two optional functions. A nil CloneF stores values as they
// are, a nil ReleaseF releases nothing.
type PolicyFuncs[V any] struct {
	CloneF   func(V) V
	ReleaseF func(V)
}

func (p PolicyFuncs[V]) Clone(v V) V {
	if p.CloneF == nil {
		return v
	}
	return p.CloneF(v)
}

func (p PolicyFuncs[V]) Release(v V) {
	if p.ReleaseF != nil {
		p.ReleaseF(v)
	}
}

package world

// Condition is an availability predicate evaluated against the world. Check
// must not mutate the world.
type Condition interface {
	Initialize(w *World)
	Check(w *World) bool
}

// ConditionFunc adapts a function into a Condition.
type ConditionFunc func(w *World) bool

func (f ConditionFunc) Initialize(*World) {}

func (f ConditionFunc) Check(w *World) bool { return f(w) }

// Always holds unconditionally.
func Always() Condition {
	return ConditionFunc(func(*World) bool { return true })
}

// Never never holds.
func Never() Condition {
	return ConditionFunc(func(*World) bool { return false })
}

type combined struct {
	conds []Condition
	all   bool
}

func (c combined) Initialize(w *World) {
	for _, cond := range c.conds {
		cond.Initialize(w)
	}
}

func (c combined) Check(w *World) bool {
	for _, cond := range c.conds {
		ok := cond.Check(w)
		if c.all && !ok {
			return false
		}
		if !c.all && ok {
			return true
		}
	}
	return c.all
}

// And holds when every condition holds. Evaluation short-circuits.
func And(conds ...Condition) Condition {
	return combined{conds: conds, all: true}
}

// Or holds when any condition holds. Evaluation short-circuits.
func Or(conds ...Condition) Condition {
	return combined{conds: conds}
}

type negated struct {
	inner Condition
}

func (n negated) Initialize(w *World) { n.inner.Initialize(w) }
func (n negated) Check(w *World) bool { return !n.inner.Check(w) }

// Not inverts cond.
func Not(cond Condition) Condition {
	return negated{inner: cond}
}

// ResourceExists holds while a resource of type T is present.
func ResourceExists[T any]() Condition {
	return ConditionFunc(func(w *World) bool { return Contains[T](w) })
}

// ResourceEquals holds while the resource of type T is present, readable and
// equal to want.
func ResourceEquals[T comparable](want T) Condition {
	return ConditionFunc(func(w *World) bool {
		v, ok := Get[T](w)
		return ok && *v == want
	})
}

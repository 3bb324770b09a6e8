package world

// Command is a deferred mutation of the world.
type Command func(w *World)

// Commands buffers mutations requested while a system runs. The owning system
// applies them right after it returns.
type Commands struct {
	queue []Command
}

// Add appends cmd to the buffer.
func (c *Commands) Add(cmd Command) {
	if cmd == nil {
		return
	}
	c.queue = append(c.queue, cmd)
}

// Len returns the number of buffered commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Apply drains the buffer in insertion order. Commands added while applying
// run in the same call.
func (c *Commands) Apply(w *World) {
	for len(c.queue) > 0 {
		cmd := c.queue[0]
		c.queue[0] = nil
		c.queue = c.queue[1:]
		cmd(w)
	}
	c.queue = nil
}

// Context is handed to function systems on every run.
type Context struct {
	World    *World
	Commands *Commands
}

// System is a unit of logic taking one input of type I. Initialize runs once
// at registration, ApplyDeferred after every Run.
type System[I any] interface {
	Initialize(w *World)
	Run(in I, w *World)
	ApplyDeferred(w *World)
}

type funcSystem[I any] struct {
	fn       func(ctx *Context, in I)
	init     func(w *World)
	commands Commands
}

// IntoSystem adapts a plain function into a System.
func IntoSystem[I any](fn func(ctx *Context, in I)) System[I] {
	return &funcSystem[I]{fn: fn}
}

// IntoSystemWithInit adapts fn and runs init once when the system is
// registered, typically to insert resources fn depends on.
func IntoSystemWithInit[I any](fn func(ctx *Context, in I), init func(w *World)) System[I] {
	return &funcSystem[I]{fn: fn, init: init}
}

func (s *funcSystem[I]) Initialize(w *World) {
	if s.init != nil {
		s.init(w)
	}
}

func (s *funcSystem[I]) Run(in I, w *World) {
	s.fn(&Context{World: w, Commands: &s.commands}, in)
}

func (s *funcSystem[I]) ApplyDeferred(w *World) {
	s.commands.Apply(w)
}

// Plugin installs resources into a world.
type Plugin interface {
	Build(w *World)
}

// PluginFunc adapts a function into a Plugin.
type PluginFunc func(w *World)

func (f PluginFunc) Build(w *World) { f(w) }

// AddPlugins builds each plugin in order.
func AddPlugins(w *World, plugins ...Plugin) {
	for _, p := range plugins {
		p.Build(w)
	}
}

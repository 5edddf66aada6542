package router

import (
	"errors"
	"sort"

	"github.com/bwmarrin/discordgo"
)

var (
	// ErrNotMatched is returned when an unknown command is invoked
	ErrNotMatched = errors.New("command not matched")
)

// Router implements slash-command dispatch
type Router struct {
	Commands   map[string]*Command
	Groups     []*Group
	Middleware []MiddlewareFunc
}

// NewRouter returns new router instance
func NewRouter() *Router {
	return &Router{
		Commands: make(map[string]*Command),
	}
}

// Group returns group with given name, creating it if absent
func (router *Router) Group(name string) (cand *Group) {
	for _, g := range router.Groups {
		if g.Name == name {
			return g
		}
	}

	cand = &Group{
		Name:   name,
		Router: router,
	}

	router.Groups = append(router.Groups, cand)

	return
}

// Command returns command with given parameters, creating it if absent
func (router *Router) Command(name, desc string, tier Tier, handler HandlerFunc) (cmd *Command) {
	var ok bool
	if cmd, ok = router.Commands[name]; !ok {
		cmd = &Command{
			Name:        name,
			Description: desc,
			Tier:        tier,
			Handler:     handler,
			Router:      router,
		}
		router.Commands[name] = cmd
	}

	return
}

// ApplicationCommands returns registration payloads for all commands in
// stable name order
func (router *Router) ApplicationCommands() (commands []*discordgo.ApplicationCommand) {
	names := make([]string, 0, len(router.Commands))

	for name := range router.Commands {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		commands = append(commands, router.Commands[name].ApplicationCommand())
	}

	return
}

// Dispatch executes the command matching given interaction
func (router *Router) Dispatch(session *discordgo.Session, interaction *discordgo.InteractionCreate) error {
	data := interaction.ApplicationCommandData()

	cmd, ok := router.Commands[data.Name]
	if !ok {
		return ErrNotMatched
	}

	// baked exactly once; concurrent dispatches of the same command share it
	cmd.bakeOnce.Do(func() {
		var middlewares []MiddlewareFunc

		middlewares = append(middlewares, router.Middleware...)

		if cmd.Group != nil {
			middlewares = append(middlewares, cmd.Group.Middleware...)
		}

		middlewares = append(middlewares, cmd.Middleware...)

		cmd.Baked = cmd.Handler
		for i := len(middlewares) - 1; i >= 0; i-- {
			cmd.Baked = middlewares[i](cmd.Baked)
		}
	})

	return cmd.Baked(newContext(session, interaction, cmd))
}

// AppendMiddleware appends middleware to end of the chain
func (router *Router) AppendMiddleware(middleware MiddlewareFunc) {
	router.Middleware = append(router.Middleware, middleware)
}

// PrependMiddleware appends middleware to beginning of the chain
func (router *Router) PrependMiddleware(middleware MiddlewareFunc) {
	router.Middleware = append([]MiddlewareFunc{middleware}, router.Middleware...)
}

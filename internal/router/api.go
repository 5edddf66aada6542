// Package router provides slash-command registration and dispatch
package router

import (
	"sync"

	"github.com/bwmarrin/discordgo"
)

// Tier is the access level required to invoke a command
type Tier int

// Access tiers, lowest first
const (
	TierAnyone Tier = iota
	TierModerator
	TierAdministrator
)

func (t Tier) String() string {
	switch t {
	case TierModerator:
		return "Mod"
	case TierAdministrator:
		return "Admin"
	default:
		return "Anyone"
	}
}

// HandlerFunc implements command execution
type HandlerFunc func(ctx *Context) error

// MiddlewareFunc implements command wrapping
type MiddlewareFunc func(handler HandlerFunc) HandlerFunc

// Command describes a single slash command
type Command struct {
	Name        string
	Description string
	Tier        Tier
	Options     []*discordgo.ApplicationCommandOption
	Handler     HandlerFunc
	Baked       HandlerFunc
	Middleware  []MiddlewareFunc
	Group       *Group
	Router      *Router

	bakeOnce sync.Once
}

// WithOptions sets typed parameters for the command
func (cmd *Command) WithOptions(options ...*discordgo.ApplicationCommandOption) *Command {
	cmd.Options = options

	return cmd
}

// ApplicationCommand returns the platform registration payload
func (cmd *Command) ApplicationCommand() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        cmd.Name,
		Description: "[" + cmd.Tier.String() + "] " + cmd.Description,
		Options:     cmd.Options,
	}
}

// Group groups commands for help listing and shared middleware
type Group struct {
	Name        string
	Description string
	Commands    []*Command
	Middleware  []MiddlewareFunc
	Router      *Router
}

// SetDescription sets group description
func (group *Group) SetDescription(desc string) *Group {
	group.Description = desc

	return group
}

// On adds a command to the group
func (group *Group) On(name, desc string, tier Tier, handler HandlerFunc) (cmd *Command) {
	cmd = group.Router.Command(name, desc, tier, handler)
	cmd.Group = group
	group.Commands = append(group.Commands, cmd)

	return
}

// Rejection is a user-visible refusal: the command aborts with an ephemeral
// message and is not treated as a failure.
type Rejection struct {
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

// Reject returns a Rejection with given user-visible message
func Reject(message string) error {
	return &Rejection{Message: message}
}

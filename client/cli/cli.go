// Package cli implements the terminal client of the socialpost application:
// signup/login/logout, the paginated feed, and post/like/comment commands.
// The auth session (token plus profile) lives in a local session file; each
// invocation loads it and sends the token as a bearer credential.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/socialpost-go/client/api"
	"github.com/user/socialpost-go/client/session"
)

// Cli holds the client's dependencies.
type Cli struct {
	api      *api.Client
	sessions *session.Store
	io       IO
}

// New creates a Cli.
func New(apiClient *api.Client, sessions *session.Store, io IO) *Cli {
	return &Cli{
		api:      apiClient,
		sessions: sessions,
		io:       io,
	}
}

// Run dispatches a command with its arguments.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "signup":
		return c.runSignup(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout()
	case "whoami":
		return c.runWhoami(ctx)
	case "feed":
		return c.runFeed(ctx, args)
	case "post":
		return c.runPost(ctx, args)
	case "like":
		return c.runLike(ctx, args)
	case "comment":
		return c.runComment(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// requireSession loads the stored session and arms the API client with its
// token. Commands that mutate anything call this first.
func (c *Cli) requireSession() (*session.Session, error) {
	sess, err := c.sessions.Load()
	if err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			return nil, fmt.Errorf("not logged in. Run 'spostctl login' first")
		}
		return nil, err
	}
	c.api.SetToken(sess.Token)
	return sess, nil
}

// PrintUsage prints the command overview.
func PrintUsage() {
	fmt.Println("spostctl - socialpost terminal client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  spostctl [OPTIONS] COMMAND [ARGS]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --server URL   Server URL (default: http://localhost:4000, or SOCIALPOST_SERVER)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  signup                      Register and log in")
	fmt.Println("  login                       Log in")
	fmt.Println("  logout                      Forget the stored session")
	fmt.Println("  whoami                      Show the logged-in profile")
	fmt.Println("  feed [-page N] [-limit N]   Show the public feed")
	fmt.Println("  post [-text S] [-image F]   Create a post")
	fmt.Println("  like POST_ID                Toggle a like on a post")
	fmt.Println("  comment POST_ID TEXT...     Comment on a post")
}

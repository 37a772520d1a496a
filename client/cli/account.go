// Account commands: signup, login, logout, whoami.
package cli

import (
	"context"
	"fmt"

	"github.com/user/socialpost-go/auth"
	"github.com/user/socialpost-go/client/session"
)

func (c *Cli) runSignup(ctx context.Context) error {
	c.io.Println("=== Sign up ===")

	name, err := c.io.ReadInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if name == "" || email == "" || password == "" {
		return fmt.Errorf("name, email and password are all required")
	}

	resp, err := c.api.Signup(ctx, auth.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return err
	}

	if err := c.saveSession(resp); err != nil {
		return err
	}
	c.io.Printf("Signed up as %s <%s>\n", resp.User.Name, resp.User.Email)
	return nil
}

func (c *Cli) runLogin(ctx context.Context) error {
	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if email == "" || password == "" {
		return fmt.Errorf("email and password are both required")
	}

	resp, err := c.api.Login(ctx, auth.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	if err := c.saveSession(resp); err != nil {
		return err
	}
	c.io.Printf("Logged in as %s <%s>\n", resp.User.Name, resp.User.Email)
	return nil
}

func (c *Cli) runLogout() error {
	if err := c.sessions.Clear(); err != nil {
		return err
	}
	c.io.Println("Logged out.")
	return nil
}

// runWhoami shows the stored profile after re-validating the token against
// the server, so a deleted account or expired token surfaces here rather
// than on the next write.
func (c *Cli) runWhoami(ctx context.Context) error {
	if _, err := c.requireSession(); err != nil {
		return err
	}

	resp, err := c.api.Me(ctx)
	if err != nil {
		return err
	}

	c.io.Printf("%s <%s>\n", resp.User.Name, resp.User.Email)
	c.io.Printf("id: %s, joined: %s\n", resp.User.ID, resp.User.CreatedAt.Format("2006-01-02"))
	return nil
}

func (c *Cli) saveSession(resp *auth.AuthResponse) error {
	return c.sessions.Save(&session.Session{Token: resp.Token, User: resp.User})
}

package cli

import (
	"fmt"

	"github.com/ecotrack/ecotrack-cli/internal/keyring"
)

type AuthCmd struct {
	Set   AuthSetCmd   `cmd:"" help:"Store session credentials in the OS keyring."`
	Clear AuthClearCmd `cmd:"" help:"Remove stored credentials."`
	Show  AuthShowCmd  `cmd:"" help:"Show whether credentials are stored."`
}

type AuthSetCmd struct {
	Session string `arg:"" help:"Session cookie value."`
	CSRF    string `help:"CSRF token (sent as X-CSRFToken on mutating requests)."`
}

func (c *AuthSetCmd) Run(ctx *Context) error {
	if err := keyring.Set(keyring.Credentials{Session: c.Session, CSRF: c.CSRF}); err != nil {
		return err
	}
	fmt.Println("Credentials stored in OS keyring.")
	if c.CSRF == "" {
		fmt.Println("No CSRF token stored; mutating requests may be rejected by the server.")
	}
	return nil
}

type AuthClearCmd struct{}

func (c *AuthClearCmd) Run(ctx *Context) error {
	if err := keyring.Delete(); err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No credentials stored.")
			return nil
		}
		return err
	}
	fmt.Println("Credentials removed.")
	return nil
}

type AuthShowCmd struct{}

func (c *AuthShowCmd) Run(ctx *Context) error {
	creds, err := keyring.Get()
	if err != nil {
		if err == keyring.ErrNotFound {
			fmt.Println("No credentials stored.")
			return nil
		}
		return err
	}

	// Never echo the secrets themselves.
	fmt.Println("Session cookie: stored")
	if creds.CSRF != "" {
		fmt.Println("CSRF token:     stored")
	} else {
		fmt.Println("CSRF token:     not stored")
	}
	return nil
}

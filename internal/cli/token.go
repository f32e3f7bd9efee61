package cli

import (
	"errors"
	"fmt"

	"github.com/akozyreva/medcab/internal/keyring"
)

// TokenSetCmd stores the receipt recognition API token in the OS keyring
type TokenSetCmd struct {
	Token string `arg:"" help:"API token for the receipt recognition service."`
}

func (c *TokenSetCmd) Run(ctx *Context) error {
	if err := keyring.SetToken(c.Token); err != nil {
		return fmt.Errorf("failed to store token in keyring: %w", err)
	}
	fmt.Println("Token stored in OS keyring.")
	return nil
}

// TokenGetCmd shows whether a token is stored
type TokenGetCmd struct{}

func (c *TokenGetCmd) Run(ctx *Context) error {
	token, err := keyring.GetToken()
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no token found in keyring, use 'medcab token set' to store one")
		}
		return err
	}

	// Don't print the secret itself
	masked := "****"
	if len(token) > 4 {
		masked = token[:2] + "****" + token[len(token)-2:]
	}
	fmt.Printf("Token is set: %s\n", masked)
	return nil
}

// TokenDeleteCmd removes the stored token
type TokenDeleteCmd struct{}

func (c *TokenDeleteCmd) Run(ctx *Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no token stored")
		}
		return err
	}
	fmt.Println("Token deleted from OS keyring.")
	return nil
}

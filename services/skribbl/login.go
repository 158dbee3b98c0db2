package skribbl

import (
	"context"
	"fmt"
	"log"
	"os"

	"skribbl/constants/events"
	"skribbl/models"
	"skribbl/services/transport"
)

// Options configure a join attempt. The zero value requests a public
// English room over the production transport.
type Options struct {
	// AccessKey authorizes account-linked sessions. Usually empty.
	AccessKey string
	// JoinCode selects a private room; empty requests a public one.
	JoinCode string
	// Language defaults to models.DefaultLanguage.
	Language models.Language

	// LoginURL overrides the login gateway (tests).
	LoginURL string
	// Dial overrides the transport (tests). Defaults to DialSocketIO.
	Dial transport.Dialer
	// Logger receives session diagnostics. Defaults to a stderr logger.
	Logger *log.Logger
}

func (o Options) dial() transport.Dialer {
	if o.Dial != nil {
		return o.Dial
	}
	return transport.DialSocketIO
}

func (o Options) loginURL() string {
	if o.LoginURL != "" {
		return o.LoginURL
	}
	return events.LoginURL
}

func (o Options) language() models.Language {
	if o.Language != "" {
		return o.Language
	}
	return models.DefaultLanguage
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(os.Stderr, "[skribbl] ", log.LstdFlags)
}

// login performs the one-shot handshake against the login gateway: emit
// the canonical profile as "login", wait for exactly one "result" carrying
// {code, host}. A zero code, or the gateway closing the connection without
// answering, is an AuthenticationError. The handshake connection never
// outlives this call, on any path.
func login(ctx context.Context, player models.Player, opts Options) (string, models.UserProfile, error) {
	logger := opts.logger()

	profile := models.UserProfile{
		Code:          opts.AccessKey,
		Join:          opts.JoinCode,
		Language:      opts.language(),
		CreatePrivate: false,
		Name:          player.Name,
		Avatar:        player.Avatar,
	}

	conn := opts.dial()(opts.loginURL())
	defer func() {
		conn.Disconnect()
		conn.Wait()
	}()

	result := make(chan resultPayload, 1)
	conn.On(events.Result, func(args ...interface{}) {
		var r resultPayload
		if len(args) < 1 {
			logger.Printf("[LOGIN-ERROR] result event without payload")
			return
		}
		if err := decodePayload(events.Result, args[0], &r); err != nil {
			logger.Printf("[LOGIN-ERROR] %v", err)
			return
		}
		select {
		case result <- r:
		default:
		}
	})

	closed := make(chan struct{})
	go func() {
		conn.Wait()
		close(closed)
	}()

	if err := conn.Connect(ctx); err != nil {
		return "", models.UserProfile{}, fmt.Errorf("login connect: %w", err)
	}
	if err := conn.Emit(events.Login, profile); err != nil {
		return "", models.UserProfile{}, fmt.Errorf("login emit: %w", err)
	}

	var r resultPayload
	var answered bool
	select {
	case r = <-result:
		answered = true
	case <-closed:
		// The gateway closes the connection right after answering, so the
		// close often lands together with the result. Only a close with no
		// result behind it is a failure.
		select {
		case r = <-result:
			answered = true
		default:
		}
	case <-ctx.Done():
		return "", models.UserProfile{}, ctx.Err()
	}

	if !answered {
		return "", models.UserProfile{}, &AuthenticationError{Reason: "connection closed before login result"}
	}
	if r.Code == 0 {
		return "", models.UserProfile{}, &AuthenticationError{Reason: "Server returned bad code"}
	}
	logger.Printf("[LOGIN] accepted, host %s", r.Host)
	return r.Host, profile, nil
}

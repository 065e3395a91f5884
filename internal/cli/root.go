package cli

import (
	"github.com/mkuznetsova/habitadm/internal/api"
	"github.com/mkuznetsova/habitadm/internal/session"
)

// Context carries the shared API client and session manager into every
// subcommand.
type Context struct {
	Client  *api.Client
	Session *session.Manager
}

// NewContext wires the client and session manager together. The client's
// unauthorized hook tears the session down so a rejected token never
// lingers in the keyring.
func NewContext(serverURL string) *Context {
	var mgr *session.Manager
	client := api.NewClient(serverURL, api.WithUnauthorizedHook(func() {
		if mgr != nil {
			mgr.Teardown()
		}
	}))
	mgr = session.New(client, session.KeyringStore{})
	return &Context{Client: client, Session: mgr}
}

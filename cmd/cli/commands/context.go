package commands

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kambari/kambari-agent/internal/config"
	"github.com/kambari/kambari-agent/pkg/clients/genclient"
	"github.com/kambari/kambari-agent/pkg/clients/gmailclient"
	"github.com/kambari/kambari-agent/pkg/db"
	"github.com/kambari/kambari-agent/pkg/utils"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database db.Database

	// GenClient is nil when no API key is configured; question generation
	// then falls back to the fixed lists
	GenClient *genclient.Client

	Logger *zap.Logger
	Ctx    context.Context
	Env    string

	gmailClient *gmailclient.Client
}

// GmailClient lazily builds the Gmail client, running the OAuth flow on first
// use. Only the sendReminders command needs it, so commands that never email
// don't prompt for authorization.
func (app *AppContext) GmailClient() (*gmailclient.Client, error) {
	if app.gmailClient != nil {
		return app.gmailClient, nil
	}
	if app.Cfg.GmailSender == "" {
		return nil, fmt.Errorf("gmailSender is not configured")
	}

	oauthCfg, err := config.LoadOAuthClientWithEnv(app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build OAuth config: %w", err)
	}

	token, err := utils.GetTokenWithFlow(app.Ctx, oauthConfig, app.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to obtain OAuth token: %w", err)
	}

	client, err := gmailclient.NewClient(app.Ctx, oauthCfg, token, app.Cfg.GmailSender)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	app.gmailClient = client
	return client, nil
}

package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/prospectly/prospectctl/internal/api"
	"github.com/prospectly/prospectctl/internal/batch"
	"github.com/prospectly/prospectctl/internal/config"
	"github.com/prospectly/prospectctl/internal/credstore"
	"github.com/prospectly/prospectctl/internal/errors"
	"github.com/prospectly/prospectctl/internal/log"
	"github.com/prospectly/prospectctl/internal/prospect"
	"github.com/prospectly/prospectctl/internal/session"
	"github.com/prospectly/prospectctl/internal/settings"
)

// app wires the client stack for one command invocation: configuration,
// credential store, API client, and the services on top of it.
type app struct {
	cfg       *config.Config
	logger    *log.Logger
	creds     credstore.Store
	client    *api.Client
	sessions  *session.Manager
	prospects *prospect.Service
	settings  *settings.Service
	batches   *batch.Orchestrator
}

// newApp builds the stack from the resolved configuration and the
// command's persistent flags.
func newApp(cmd *cobra.Command) (*app, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	if cfgPath == "" {
		var err error
		cfgPath, err = config.DefaultPath()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "failed to resolve config path", err)
		}
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	if apiURL, _ := cmd.Flags().GetString("api-url"); apiURL != "" {
		cfg.APIURL = apiURL
	}

	logger := log.DefaultLogger()

	credsPath := cfg.CredentialsFile
	if credsPath == "" {
		credsPath, err = credstore.DefaultPath()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "failed to resolve credentials path", err)
		}
	}
	creds := credstore.NewFileStore(credsPath)

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := api.New(cfg.APIURL, creds,
		api.WithTimeout(timeout),
		api.WithLogger(logger))

	prospects := prospect.NewService(client)

	return &app{
		cfg:       cfg,
		logger:    logger,
		creds:     creds,
		client:    client,
		sessions:  session.NewManager(client, creds, session.WithLogger(logger)),
		prospects: prospects,
		settings:  settings.NewService(client),
		batches:   batch.NewOrchestrator(prospects, batch.WithLogger(logger)),
	}, nil
}

// requireAuth fails fast when no session is stored, before any request
// goes out.
func (a *app) requireAuth() error {
	if !a.sessions.IsAuthenticated() {
		return errors.NewUnauthenticatedError()
	}
	return nil
}

// provider resolves the research provider: flag value if set, else the
// configured default.
func (a *app) provider(flagValue string) prospect.Provider {
	if flagValue != "" {
		return prospect.Provider(flagValue)
	}
	return prospect.Provider(a.cfg.Provider)
}

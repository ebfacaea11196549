package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-opvault/internal/config"
	"github.com/MKhiriev/go-opvault/internal/logger"
	"github.com/MKhiriev/go-opvault/internal/vault"
	"github.com/MKhiriev/go-opvault/models"
)

func newRootCmd(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "opvault",
		Short: "Read and verify 1Password OPVault containers",
		Long: `opvault reads an OPVault directory without modifying it.

The vault location comes from --vault or OPVAULT_PATH. Commands that need
item data unlock the vault with the master password from OPVAULT_PASSWORD.`,
		SilenceUsage: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newInfoCmd(),
		newItemsCmd(),
		newVerifyCmd(),
		newVersionCmd(info),
	)
	return root
}

// session is what every vault command needs: the merged config, a logger
// writing to the command's stderr and a context bounded by the timeout.
type session struct {
	cfg    *config.StructuredConfig
	log    *logger.Logger
	ctx    context.Context
	cancel context.CancelFunc
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err = cfg.RequireVault(); err != nil {
		return nil, err
	}

	log := logger.New(cmd.ErrOrStderr(), "cli", cfg.Log.Level)

	ctx := log.WithContext(cmd.Context())
	cancel := context.CancelFunc(func() {})
	if cfg.Vault.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, cfg.Vault.Timeout)
	}

	return &session{cfg: cfg, log: log, ctx: ctx, cancel: cancel}, nil
}

func (s *session) open() (*vault.Vault, error) {
	v, err := vault.Open(s.ctx, s.cfg.Vault.Path, vault.WithLogger(s.log))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.cfg.Vault.Path, err)
	}
	return v, nil
}

// unlock opens the vault and loads its items with the configured password.
func (s *session) unlock() (*vault.Vault, vault.Keys, error) {
	if err := s.cfg.RequirePassword(); err != nil {
		return nil, vault.Keys{}, err
	}

	v, err := s.open()
	if err != nil {
		return nil, vault.Keys{}, err
	}

	keys, err := v.OpenItems(s.ctx, s.cfg.Vault.Password)
	if err != nil {
		return nil, vault.Keys{}, err
	}
	return v, keys, nil
}

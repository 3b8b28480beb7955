// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/CBlanco0220/Raffle-tracker/cliparse"
	"github.com/CBlanco0220/Raffle-tracker/raffle"
	"github.com/CBlanco0220/Raffle-tracker/storage"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	cfg     cliparse.Config
	verbose bool
}

// NewRootCmd builds the full command tree. Each call returns fresh state.
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "rafflectl",
		Short: "rafflectl - administer raffle tracker data",
		Long: `rafflectl reads and writes the same store the raffle tracker server uses.

Stop the server before writing with rafflectl: the server keeps the full
manager list in memory and overwrites the store on its next change.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := root.PersistentFlags()
	f.StringVarP(&opts.cfg.StoreType, "store", "t", "", "Store type (file, sqlite, postgres, pgx, redis, badger, s3)")
	f.StringVarP(&opts.cfg.DatabaseURL, "database", "d", "", "Database URL for sqlite, postgres, pgx or redis")
	f.StringVarP(&opts.cfg.DataFile, "file", "f", "", "JSON data file for the file store")
	f.StringVar(&opts.cfg.BadgerDir, "badger-dir", "", "Badger data directory")
	f.StringVar(&opts.cfg.RedisKey, "redis-key", "", "Redis key holding the manager list")
	f.StringVar(&opts.cfg.S3Bucket, "s3-bucket", "", "S3 bucket")
	f.StringVar(&opts.cfg.S3Key, "s3-key", "", "S3 object key")
	f.StringVar(&opts.cfg.S3Region, "s3-region", "", "S3 region")
	f.StringVar(&opts.cfg.S3Endpoint, "s3-endpoint", "", "S3 endpoint override")
	f.BoolVar(&opts.verbose, "verbose", false, "Log store activity")

	root.AddCommand(
		listCmd(opts),
		addCmd(opts),
		setCmd(opts),
		resetCmd(opts),
		exportCmd(opts),
		importCmd(opts),
		provisionCmd(opts),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute(version string) error {
	return NewRootCmd(version).Execute()
}

// session is an opened store with a service loaded from it.
type session struct {
	persister storage.Persister
	svc       *raffle.Service
}

func (s *session) Close() error {
	return s.persister.Close()
}

// resolve fills the remaining configuration from the environment.
func (o *rootOptions) resolve() (cliparse.Config, error) {
	return cliparse.Resolve(o.cfg)
}

func (o *rootOptions) openPersister(ctx context.Context) (storage.Persister, error) {
	cfg, err := o.resolve()
	if err != nil {
		return nil, err
	}
	return storage.Open(ctx, cfg)
}

func (o *rootOptions) openSession(ctx context.Context) (*session, error) {
	p, err := o.openPersister(ctx)
	if err != nil {
		return nil, err
	}
	records, err := p.Load(ctx)
	if err != nil {
		p.Close()
		return nil, err
	}
	store, err := raffle.NewRecordStore(records)
	if err != nil {
		p.Close()
		return nil, err
	}
	return &session{persister: p, svc: raffle.NewService(store, p)}, nil
}

func newPrinter(cmd *cobra.Command) printer {
	return printer{out: cmd.OutOrStdout(), err: cmd.ErrOrStderr()}
}

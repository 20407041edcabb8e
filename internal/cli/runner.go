// Package cli implements the tripventure demo shell: a thin command layer
// that drives the auth and trip stores the way the original UI did, one
// synchronous store call per invocation.
package cli

import (
	"github.com/jessevdk/go-flags"

	"github.com/tripventure/tripventure-go/internal/auth"
	"github.com/tripventure/tripventure-go/internal/config"
	"github.com/tripventure/tripventure-go/internal/storage"
	"github.com/tripventure/tripventure-go/internal/trips"
)

// Run parses args, opens the persisted catalogue, and dispatches a single
// command against the stores.
func Run(args []string) error {
	options := &Options{}
	if _, err := flags.ParseArgs(options, args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	dir := cfg.Storage.Dir
	if options.DataDir != "" {
		dir = options.DataDir
	}

	st, err := storage.New(dir)
	if err != nil {
		return err
	}
	authStore, err := auth.NewStore(st)
	if err != nil {
		return err
	}
	tripStore, err := trips.NewStore(st, authStore)
	if err != nil {
		return err
	}

	app := &App{auth: authStore, trips: tripStore}
	return app.Dispatch(options)
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gogpu/indiepixel/server"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve PATH",
		Short: "Serve previews of a definition file or directory, reloading on change",
		Args:  cobra.ExactArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			mustBind(a.v, "server.addr", cmd.Flags().Lookup("addr"))
			mustBind(a.v, "render.duration", cmd.Flags().Lookup("duration"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx, args[0])
		},
	}
	cmd.Flags().String("addr", "", "listen address (default from server.addr)")
	cmd.Flags().Duration("duration", 0, "frame duration for trees without a root (default from render.duration)")
	return cmd
}

func (a *app) serve(ctx context.Context, path string) error {
	catalog, err := server.NewCatalog(path)
	if err != nil {
		return err
	}

	go func() {
		if err := catalog.Watch(ctx); err != nil {
			log.WithError(err).Warn("Hot reload disabled")
		}
	}()

	srv := server.New(catalog, server.Config{
		Addr:     a.v.GetString("server.addr"),
		Duration: a.v.GetDuration("render.duration"),
		Fonts:    a.fonts,
		Location: a.loc,
	})
	return srv.ListenAndServe(ctx)
}

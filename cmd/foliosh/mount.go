package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Cyclone1070/foliosh/internal/mountfs"
)

const (
	mountUse              = "mount <dir>"
	mountShortDescription = "mount the portfolio tree read-only with FUSE"
	mountLongDescription  = `Serve the same tree the shell browses as a read-only FUSE file system at dir,
until interrupted.`
	debugFlagName = "debug"
)

func newMountCommand(opts *options) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   mountUse,
		Short: mountShortDescription,
		Long:  mountLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			stop := a.serveMetrics()
			defer stop()

			server, err := mountfs.Mount(args[0], a.root, &mountfs.Config{
				CacheTimeout: time.Hour,
				Debug:        debug,
			})
			if err != nil {
				return fmt.Errorf("mount failed: %w", err)
			}
			a.logger.Info("mounted", zap.String("dir", args[0]))
			fmt.Fprintf(cmd.OutOrStdout(), "mounted at %s, press Ctrl+C to unmount\n", args[0])

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()
			go func() {
				<-ctx.Done()
				if err := server.Unmount(); err != nil {
					a.logger.Error("unmount failed", zap.Error(err))
				}
			}()

			server.Wait()
			return nil
		},
	}
	cmd.Flags().BoolVar(&debug, debugFlagName, false, "log FUSE requests")
	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/SergeyBogomolovv/shop-admin/internal/app"
	"github.com/SergeyBogomolovv/shop-admin/internal/auth"
	"github.com/SergeyBogomolovv/shop-admin/internal/entities"
	"github.com/SergeyBogomolovv/shop-admin/internal/events"
	"github.com/SergeyBogomolovv/shop-admin/internal/handler"
	"github.com/SergeyBogomolovv/shop-admin/internal/middleware"
	"github.com/SergeyBogomolovv/shop-admin/internal/service"
	"github.com/SergeyBogomolovv/shop-admin/internal/xlsx"
)

// cliActor marks events triggered from the command line.
const cliActor = "cli"

func (c *cli) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			d, err := newDeps(ctx, c.conf, c.logger)
			if err != nil {
				return err
			}
			sheetsClient, err := d.sheetsClient(ctx)
			if err != nil {
				d.Close()
				return err
			}

			exporter, err := d.exportService(sheetsClient)
			if err != nil {
				d.Close()
				return err
			}
			catalog := d.catalogService(sheetsClient, c.conf.Google.CatalogSheetID)
			backups := d.backupService(sheetsClient)

			verifier := auth.NewVerifier(ctx, c.conf.Auth.ProjectID)
			requireAdmin := middleware.RequireAdmin(c.logger, verifier, d.admins)

			service.RegisterMetrics()

			application := app.New(c.logger, c.conf)
			application.SetHTTPHandlers(handler.NewHTTPHandler(c.logger, requireAdmin, catalog, exporter, backups))
			application.SetStarters(d.adminCache)
			application.SetClosers(d)

			runErr := application.Start(ctx)
			if err := application.Stop(); err != nil {
				c.logger.Error("failed to stop application", "err", err)
			}
			return runErr
		},
	}
}

func (c *cli) syncCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Replace the catalog collections with the content of the catalog spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := auth.WithEmail(cmd.Context(), cliActor)

			d, err := newDeps(ctx, c.conf, c.logger)
			if err != nil {
				return err
			}
			defer d.Close()

			var catalog handler.CatalogSyncer
			if file != "" {
				catalog = d.catalogService(xlsx.New(""), file)
			} else {
				sheetsClient, err := d.sheetsClient(ctx)
				if err != nil {
					return err
				}
				catalog = d.catalogService(sheetsClient, c.conf.Google.CatalogSheetID)
			}

			res, err := catalog.Sync(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, collection := range slices.Sorted(maps.Keys(res.Written)) {
				fmt.Fprintf(out, "%s\t%d\n", collection, res.Written[collection])
			}
			for _, tab := range res.Skipped {
				fmt.Fprintf(out, "skipped\t%s\n", tab)
			}
			fmt.Fprintln(out, "success")
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "read the catalog from a local .xlsx file instead of Google Sheets")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the orders report and print where it was published",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := auth.WithEmail(cmd.Context(), cliActor)

			d, err := newDeps(ctx, c.conf, c.logger)
			if err != nil {
				return err
			}
			defer d.Close()

			publisher, err := c.publisher(cmd, d, outDir)
			if err != nil {
				return err
			}
			exporter, err := d.exportService(publisher)
			if err != nil {
				return err
			}

			url, err := exporter.Export(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "write an .xlsx file into this directory instead of Google Sheets")
	return cmd
}

func (c *cli) backupCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Dump every collection into a spreadsheet",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := auth.WithEmail(cmd.Context(), cliActor)

			d, err := newDeps(ctx, c.conf, c.logger)
			if err != nil {
				return err
			}
			defer d.Close()

			publisher, err := c.publisher(cmd, d, outDir)
			if err != nil {
				return err
			}

			url, err := d.backupService(publisher).Backup(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out", "", "write an .xlsx file into this directory instead of Google Sheets")
	return cmd
}

func (c *cli) publisher(cmd *cobra.Command, d *deps, outDir string) (service.Publisher, error) {
	if outDir != "" {
		return xlsx.New(outDir), nil
	}
	return d.sheetsClient(cmd.Context())
}

func (c *cli) eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Print admin operation events from Kafka as JSON lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.conf.Kafka.Enabled {
				return fmt.Errorf("kafka is disabled, set KAFKA_ENABLED=true")
			}

			consumer := events.NewKafkaConsumer(c.logger, c.conf.Kafka)
			defer consumer.Close()

			enc := json.NewEncoder(cmd.OutOrStdout())
			err := consumer.Consume(cmd.Context(), func(event entities.Event) error {
				return enc.Encode(event)
			})
			if err != nil && cmd.Context().Err() == nil {
				return err
			}
			return nil
		},
	}
}

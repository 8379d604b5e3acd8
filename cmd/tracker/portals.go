package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/devtrackhq/jobgrid/internal/models"
)

func portalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portals",
		Short: "Manage the job portal list",
		RunE: func(cmd *cobra.Command, args []string) error {
			portals := newRemote().FetchPortals(context.Background())
			renderPortals(portals)
			return nil
		},
	}
	cmd.AddCommand(portalAddCmd())
	cmd.AddCommand(portalSetCmd())
	cmd.AddCommand(portalDeleteCmd())
	return cmd
}

func renderPortals(portals []models.JobPortal) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "ID", "Name", "URL", "Category"})
	for i, p := range portals {
		table.Append([]string{strconv.Itoa(i + 1), shortID(p.ID), p.Name, p.URL, p.Category})
	}
	table.Render()
}

func portalAddCmd() *cobra.Command {
	var name, url, category string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new portal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client := newRemote()
			g := newPortalGrid()
			g.Load(client.FetchPortals(ctx))

			rec := g.AddBlank()
			for field, value := range map[string]string{"name": name, "url": url, "category": category} {
				if value == "" {
					continue
				}
				g.BeginEdit(rec.ID, field)
				g.CommitEdit(rec.ID, field, value)
			}

			msg, err := client.SyncPortals(ctx, g.Records())
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "portal name")
	cmd.Flags().StringVar(&url, "url", "", "portal URL")
	cmd.Flags().StringVar(&category, "category", "", "portal category")
	return cmd
}

func portalSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <field> <value>",
		Short: "Edit one cell of a portal",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client := newRemote()
			g := newPortalGrid()
			g.Load(client.FetchPortals(ctx))

			id := args[0]
			if _, ok := g.Find(id); !ok {
				return fmt.Errorf("no portal with id %q", id)
			}
			g.BeginEdit(id, args[1])
			g.CommitEdit(id, args[1], args[2])

			msg, err := client.SyncPortals(ctx, g.Records())
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func portalDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a portal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client := newRemote()
			g := newPortalGrid()
			g.Load(client.FetchPortals(ctx))

			if _, ok := g.Find(args[0]); !ok {
				return fmt.Errorf("no portal with id %q", args[0])
			}
			if !confirm("Delete Portal? This will remove the portal from your list") {
				fmt.Println("Cancelled")
				return nil
			}

			// Portals have no targeted remote delete; the bulk sync carries
			// the removal.
			g.Remove(args[0])
			msg, err := client.SyncPortals(ctx, g.Records())
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

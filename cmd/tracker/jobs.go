package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/devtrackhq/jobgrid/internal/assistant"
	"github.com/devtrackhq/jobgrid/internal/docimport"
	"github.com/devtrackhq/jobgrid/internal/history"
	"github.com/devtrackhq/jobgrid/internal/importer"
	"github.com/devtrackhq/jobgrid/internal/models"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the job application table",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := newRemote().FetchJobs(context.Background())
			renderJobs(jobs)
			return nil
		},
	}
}

func renderJobs(jobs []models.JobApplication) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "ID", "Date", "Company", "Position", "Status", "Location", "Salary"})
	for i, j := range jobs {
		table.Append([]string{
			strconv.Itoa(i + 1),
			shortID(j.ID),
			shortDate(j.Date),
			j.Company,
			j.Title,
			j.Status,
			j.Location,
			j.Salary,
		})
	}
	table.Render()
}

func addCmd() *cobra.Command {
	var fields = map[string]*string{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a new job application",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client := newRemote()
			g := newJobGrid()
			g.Load(client.FetchJobs(ctx))

			rec := g.AddBlank()
			for field, value := range fields {
				if *value == "" {
					continue
				}
				g.BeginEdit(rec.ID, field)
				g.CommitEdit(rec.ID, field, *value)
			}

			msg, err := client.SyncJobs(ctx, g.Records())
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	for _, name := range models.JobFieldNames {
		if name == "date" {
			continue
		}
		fields[name] = cmd.Flags().String(name, "", "initial value for the "+name+" column")
	}
	return cmd
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <id> <field> <value>",
		Short: "Edit one cell of a job application",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client := newRemote()
			g := newJobGrid()
			g.Load(client.FetchJobs(ctx))

			id, err := resolveJobID(g.Records(), args[0])
			if err != nil {
				return err
			}
			field, value := args[1], args[2]

			editor := models.JobEditorFor(field)
			if editor.Kind == models.EditorSelect && value != "" && !contains(editor.Options, value) {
				// Unrecognized values are preserved, not rejected.
				fmt.Printf("note: %q is not one of the usual %s values (%s)\n",
					value, field, strings.Join(editor.Options, ", "))
			}
			if field == "date" {
				value = importer.ParseDate(value)
			}

			g.BeginEdit(id, field)
			g.CommitEdit(id, field, value)

			msg, err := client.SyncJobs(ctx, g.Records())
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a job application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			client := newRemote()
			g := newJobGrid()
			g.Load(client.FetchJobs(ctx))

			id, err := resolveJobID(g.Records(), args[0])
			if err != nil {
				return err
			}
			if !confirm("Delete Job? This will remove the job from your tracker") {
				fmt.Println("Cancelled")
				return nil
			}
			if err := client.DeleteJob(ctx, id); err != nil {
				// Local state stays untouched when the remote call fails.
				return err
			}
			g.Remove(id)
			return nil
		},
	}
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file-or-url>",
		Short: "Import jobs from JSON/CSV/TSV text or a shared document URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			src := args[0]

			var text string
			if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
				fetched, err := docimport.Fetch(ctx, src)
				if err != nil {
					return err
				}
				text = fetched
			} else {
				raw, err := os.ReadFile(src)
				if err != nil {
					return err
				}
				text = string(raw)
			}

			drafts, err := importer.Parse(text)
			if err != nil {
				if errors.Is(err, importer.ErrNoRecords) {
					return fmt.Errorf("no valid records found in %s", src)
				}
				return err
			}

			client := newRemote()
			g := newJobGrid()
			g.Load(client.FetchJobs(ctx))
			g.Append(drafts...)

			msg, err := client.SyncJobs(ctx, g.Records())
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d job(s). %s\n", len(drafts), msg)
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save a point-in-time JSON snapshot of the tracker",
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := newRemote().FetchJobs(context.Background())
			path, err := history.Export(jobs, dir, time.Now())
			if err != nil {
				return err
			}
			fmt.Println("Saved history to", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory for the export file")
	return cmd
}

func generateCmd() *cobra.Command {
	var useContext bool
	cmd := &cobra.Command{
		Use:   "generate <prompt>",
		Short: "Generate job entries from a prompt (AI-assisted bulk entry)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			prompt := strings.Join(args, " ")

			svc, err := assistant.NewService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return err
			}

			client := newRemote()
			g := newJobGrid()
			g.Load(client.FetchJobs(ctx))

			var drafts []models.JobApplication
			if useContext {
				drafts, err = svc.GenerateJobsWithContext(ctx, prompt, g.Records(), client.FetchPortals(ctx))
			} else {
				drafts, err = svc.GenerateJobs(ctx, prompt)
			}
			if err != nil {
				if errors.Is(err, importer.ErrInvalidFormat) {
					return fmt.Errorf("invalid format in generated response")
				}
				return err
			}

			renderJobs(drafts)
			if !confirm(fmt.Sprintf("Add %d generated job(s) to the tracker?", len(drafts))) {
				fmt.Println("Discarded")
				return nil
			}

			g.Append(drafts...)
			msg, err := client.SyncJobs(ctx, g.Records())
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useContext, "context", false, "prime the model with existing data")
	return cmd
}

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <message>",
		Short: "Talk to the tracking assistant; proposed changes need approval",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			message := strings.Join(args, " ")

			svc, err := assistant.NewService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
			if err != nil {
				return err
			}

			client := newRemote()
			jobs := client.FetchJobs(ctx)
			portals := client.FetchPortals(ctx)

			session := assistant.NewSession()
			reply, action, err := svc.Chat(ctx, session, message, jobs, portals)
			if err != nil {
				return err
			}
			fmt.Println(reply)

			if action == nil {
				return nil
			}
			if !confirm("Proposed action: " + assistant.Describe(action) + ". Approve?") {
				session.Reject()
				printLastMessage(session)
				return nil
			}

			jobs = session.Approve(jobs)
			printLastMessage(session)

			msg, err := client.SyncJobs(ctx, jobs)
			if err != nil {
				return err
			}
			fmt.Println(msg)
			return nil
		},
	}
}

func printLastMessage(session *assistant.Session) {
	msgs := session.History()
	if len(msgs) > 0 {
		fmt.Println(msgs[len(msgs)-1].Content)
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

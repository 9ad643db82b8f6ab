package cli

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"user-container-demo/cmd/api/app"
	"user-container-demo/cmd/api/server"
	"user-container-demo/internal/usecase/user"
)

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the REST and gRPC servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := opts.bootstrap(false)
			if err != nil {
				return err
			}

			ctx, release := server.WithSignal(cmd.Context(), l)
			defer release()

			a, err := app.New(ctx, cfg, l)
			if err != nil {
				_ = app.SyncLogger(l)
				return err
			}
			return a.Run(ctx)
		},
	}
}

type addOptions struct {
	firstName string
	lastName  string
	email     string
	age       string
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	in := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a user to the database",
		Example: `  user-container-demo add --first-name Ada --last-name Lovelace \
    --email ada@example.com --age 36`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUsecase(cmd.Context(), func(uc user.Usecase) error {
				resp, err := uc.AddUser(cmd.Context(), user.AddUserRequest{
					FirstName: in.firstName,
					LastName:  in.lastName,
					Email:     in.email,
					Age:       in.age,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "User added successfully (id %d).\n", resp.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&in.firstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&in.lastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&in.email, "email", "", "email address, unique per user")
	cmd.Flags().StringVar(&in.age, "age", "", "age in years, a positive whole number")
	return cmd
}

func newLoadCommand(opts *rootOptions) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Render every stored user through a container kind",
		Example: `  user-container-demo load --kind stack
  user-container-demo kinds   # list the available kinds`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.withUsecase(cmd.Context(), func(uc user.Usecase) error {
				resp, err := uc.RenderUsers(cmd.Context(), user.RenderUsersRequest{Kind: kind})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprint(out, resp.Report)
				if resp.Report != "" && !strings.HasSuffix(resp.Report, "\n") {
					fmt.Fprintln(out)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "list", "container kind key")
	return cmd
}

func newKindsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the container kinds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetAutoFormatHeaders(false)
			table.SetAutoWrapText(false)
			table.SetHeader([]string{"KEY", "TITLE", "DESCRIPTION"})
			for _, k := range user.Kinds() {
				table.Append([]string{k.Key, k.Title, k.Description})
			}
			table.Render()
			return nil
		},
	}
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	dashboardv1 "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/api/dashboard/v1"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func newEmployeesCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "List and inspect employees",
	}
	cmd.AddCommand(newEmployeesListCmd(opts))
	cmd.AddCommand(newEmployeesGetCmd(opts))
	return cmd
}

func newEmployeesListCmd(opts *rootOptions) *cobra.Command {
	var (
		search     string
		department string
		rating     string
	)

	cmd := &cobra.Command{
		Use:   "list [--search text] [--department name] [--rating 1-5]",
		Short: "List employees matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := predicateRequest(search, department, rating)
			if err != nil {
				return err
			}
			return opts.withClient(cmd, func(ctx context.Context, client dashboardv1.DashboardServiceClient, p *printer) error {
				resp, err := client.ListEmployees(ctx, req)
				if err != nil {
					return err
				}
				return p.employees(resp)
			})
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match on name, email or department")
	cmd.Flags().StringVar(&department, "department", "All", "department filter")
	cmd.Flags().StringVar(&rating, "rating", "All", "exact rating filter (1-5 or All)")
	return cmd
}

func newEmployeesGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one employee with projects and feedback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.withClient(cmd, func(ctx context.Context, client dashboardv1.DashboardServiceClient, p *printer) error {
				resp, err := client.GetEmployee(ctx, wrapperspb.Int64(id))
				if err != nil {
					return err
				}
				return p.employee(resp)
			})
		},
	}
}

func newBookmarksCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookmarks",
		Short: "Manage bookmarked employees",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List bookmarked employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client dashboardv1.DashboardServiceClient, p *printer) error {
				resp, err := client.ListBookmarkedEmployees(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				return p.employees(resp)
			})
		},
	})

	cmd.AddCommand(newBookmarkMutationCmd(opts, "add", "Bookmark an employee", "bookmarked",
		func(ctx context.Context, client dashboardv1.DashboardServiceClient, id int64) error {
			_, err := client.AddBookmark(ctx, wrapperspb.Int64(id))
			return err
		}))
	cmd.AddCommand(newBookmarkMutationCmd(opts, "remove", "Remove a bookmark", "removed bookmark for",
		func(ctx context.Context, client dashboardv1.DashboardServiceClient, id int64) error {
			_, err := client.RemoveBookmark(ctx, wrapperspb.Int64(id))
			return err
		}))
	return cmd
}

func newBookmarkMutationCmd(opts *rootOptions, use, short, verb string, mutate func(context.Context, dashboardv1.DashboardServiceClient, int64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return opts.withClient(cmd, func(ctx context.Context, client dashboardv1.DashboardServiceClient, p *printer) error {
				if err := mutate(ctx, client, id); err != nil {
					return err
				}
				return p.message(fmt.Sprintf("%s employee %d", verb, id))
			})
		},
	}
}

func newAnalyticsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analytics",
		Short: "Show department, rating and bookmark statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client dashboardv1.DashboardServiceClient, p *printer) error {
				resp, err := client.GetAnalytics(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				return p.analytics(resp)
			})
		},
	}
}

func newStatusCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the employee directory load state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client dashboardv1.DashboardServiceClient, p *printer) error {
				resp, err := client.GetDirectoryStatus(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				return p.status(resp)
			})
		},
	}
}

func newReloadCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Fetch the employee directory again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withClient(cmd, func(ctx context.Context, client dashboardv1.DashboardServiceClient, p *printer) error {
				resp, err := client.ReloadEmployees(ctx, &emptypb.Empty{})
				if err != nil {
					return err
				}
				return p.status(resp)
			})
		},
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid employee id %q", raw)
	}
	return id, nil
}

func predicateRequest(search, department, rating string) (*structpb.Struct, error) {
	fields := map[string]any{
		"search":     search,
		"department": department,
	}

	rating = strings.TrimSpace(rating)
	if rating == "" || strings.EqualFold(rating, "All") {
		fields["rating"] = "All"
	} else {
		n, err := strconv.Atoi(rating)
		if err != nil {
			return nil, fmt.Errorf("invalid rating %q: must be 1-5 or All", rating)
		}
		fields["rating"] = n
	}

	return structpb.NewStruct(fields)
}

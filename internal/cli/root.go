// Package cli は DashboardService を操作するコマンドラインクライアントを提供します。
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	dashboardv1 "github.com/ogurasousui/codex-hr-dashboard/internal/adapters/grpc/api/dashboard/v1"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const (
	defaultAddr    = "localhost:50051"
	defaultTimeout = 10 * time.Second
)

// DialFunc は addr の DashboardService へ接続し、クライアントと接続の解放関数を返します。
type DialFunc func(addr string) (dashboardv1.DashboardServiceClient, io.Closer, error)

// DialGRPC は平文の gRPC で DashboardService へ接続します。
func DialGRPC(addr string) (dashboardv1.DashboardServiceClient, io.Closer, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", addr, err)
	}
	return dashboardv1.NewDashboardServiceClient(conn), conn, nil
}

type rootOptions struct {
	addr    string
	output  string
	timeout time.Duration
	dial    DialFunc
}

// withClient は接続とタイムアウト付きコンテキストを用意して fn を実行します。
func (o *rootOptions) withClient(cmd *cobra.Command, fn func(context.Context, dashboardv1.DashboardServiceClient, *printer) error) error {
	p, err := newPrinter(cmd.OutOrStdout(), o.output)
	if err != nil {
		return err
	}

	client, closer, err := o.dial(o.addr)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), o.timeout)
	defer cancel()

	return fn(ctx, client, p)
}

// NewRootCmd は hrctl のルートコマンドを構築します。dial が nil の場合は DialGRPC を使います。
func NewRootCmd(dial DialFunc) *cobra.Command {
	opts := &rootOptions{dial: dial}
	if opts.dial == nil {
		opts.dial = DialGRPC
	}

	cmd := &cobra.Command{
		Use:           "hrctl",
		Short:         "Browse the HR dashboard: employees, bookmarks and analytics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.addr, "addr", defaultAddr, "DashboardService address")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", outputTable, "output format (table|json)")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", defaultTimeout, "per-command timeout")

	cmd.AddCommand(newEmployeesCmd(opts))
	cmd.AddCommand(newBookmarksCmd(opts))
	cmd.AddCommand(newAnalyticsCmd(opts))
	cmd.AddCommand(newStatusCmd(opts))
	cmd.AddCommand(newReloadCmd(opts))
	return cmd
}

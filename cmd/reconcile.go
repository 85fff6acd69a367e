package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"asset-reconciler/core/container"
	"asset-reconciler/core/errors"
	"asset-reconciler/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	yesConfirm    bool
	dryRunRec     bool
	placementFlag string
)

// reconcileCmd updates a container loaded from one version of an asset to
// another version.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile <current> <new>",
	Short: "Update a layer container to a new version of its source",
	Long: `Loads <current> into a fresh session and reconciles it to <new>.

Layers whose name is in both versions keep their identity and only have their
source swapped. Layers that disappeared are removed and new layers are added
after a confirmation prompt. Any failure leaves the container untouched.

Examples:
  # Interactive confirmation when layers are added or removed
  reconcile /shots/sh010/bg.v001.yaml /shots/sh010/bg.v002.yaml

  # Non-interactive
  reconcile /shots/sh010/bg.v001.yaml /shots/sh010/bg.v002.yaml --yes

  # Report only
  reconcile /shots/sh010/bg.v001.yaml /shots/sh010/bg.v002.yaml --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm layer additions and removals (non-interactive)")
	reconcileCmd.Flags().BoolVar(&dryRunRec, "dry-run", false, "Compute the diff without modifying the container")
	reconcileCmd.Flags().StringVar(&placementFlag, "placement", "", "Where added layers go: append or anchored (defaults to RECONCILE_PLACEMENT)")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	var confirmer reconcile.Confirmer = promptConfirmer(os.Stdin, os.Stdout)
	if yesConfirm {
		confirmer = reconcile.StaticConfirmer{Accept: true}
	}

	r, err := a.reconciler(container.NewSession(), confirmer, placementFlag)
	if err != nil {
		return err
	}

	c, err := r.Load(ctx, args[0])
	if err != nil {
		return err
	}
	a.logger.Info("Loaded container",
		zap.String("container", c.Name),
		zap.String("path", c.Path),
		zap.Int("elements", len(c.Elements)),
	)

	var out *reconcile.Outcome
	if dryRunRec {
		out, err = r.Plan(ctx, c.ID, args[1])
	} else {
		out, err = r.Reconcile(ctx, c.ID, args[1])
	}
	if out != nil {
		printReconcileReport(a.logger, out)
	}
	if err != nil {
		if errors.KindOf(err) == errors.KindRejected {
			a.logger.Warn("Operation cancelled. No changes were made.")
			return nil
		}
		return err
	}

	if dryRunRec {
		a.logger.Info("Dry-run mode: No changes were made.")
	}
	return nil
}

// printReconcileReport logs the outcome of one reconcile.
func printReconcileReport(l *zap.Logger, out *reconcile.Outcome) {
	l.Info("Reconcile report",
		zap.String("from", out.From),
		zap.String("to", out.To),
		zap.String("state", string(out.State)),
		zap.Int("matched", len(out.Matched)),
		zap.Int("added", len(out.Added)),
		zap.Int("removed", len(out.Removed)),
		zap.Bool("prompted", out.Prompted),
		zap.Duration("duration", out.Duration),
	)

	if len(out.Added) > 0 {
		l.Info("Added layers", zap.Strings("names", out.Added))
	}
	if len(out.Removed) > 0 {
		l.Info("Removed layers", zap.Strings("names", out.Removed))
	}
	if out.FailedAt != "" && out.FailedAt != reconcile.StateIdle {
		l.Warn("Reconcile failed", zap.String("failed_at", string(out.FailedAt)))
	}
}

package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"asset-reconciler/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixFlag     bool
	sourcesJSON bool
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the asset library and journal",
	Long:  `Checks the bucket folder structure, the versioned manifests, and the journal schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := integrityService()
		if err != nil {
			return err
		}
		defer l.Sync()

		if err := runStructure(cmd, svc, l, false); err != nil {
			return err
		}
		if err := runSources(cmd, svc, l); err != nil {
			return err
		}
		runJournal(svc, l)
		return nil
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix folder structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := integrityService()
		if err != nil {
			return err
		}
		defer l.Sync()
		return runStructure(cmd, svc, l, fixFlag)
	},
}

// sourcesCmd represents the integrity sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Check that every manifest is versioned",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := integrityService()
		if err != nil {
			return err
		}
		defer l.Sync()
		return runSources(cmd, svc, l)
	},
}

// journalCmd represents the integrity journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Check the journal table against its model",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, l, err := integrityService()
		if err != nil {
			return err
		}
		defer l.Sync()
		runJournal(svc, l)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, sourcesCmd, journalCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Fix missing folders")
	sourcesCmd.Flags().BoolVar(&sourcesJSON, "json", false, "Print the full report as JSON")
}

func integrityService() (*integrity.Service, *zap.Logger, error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, err
	}
	return integrity.NewService(a.store, a.cfg.Storage.Bucket, a.logger, a.db), a.logger, nil
}

func runStructure(cmd *cobra.Command, svc *integrity.Service, l *zap.Logger, fix bool) error {
	ctx := cmd.Context()
	l.Info("Checking folder structure...")
	missing, err := svc.CheckStructure(ctx)
	if err != nil {
		return fmt.Errorf("structure check failed: %w", err)
	}

	if len(missing) == 0 {
		l.Info("Structure is intact.")
		return nil
	}
	l.Warn("Missing folders detected", zap.Strings("missing", missing))

	if !fix {
		l.Info("Run with --fix to create missing folders.")
		return nil
	}
	l.Info("Fixing missing folders...")
	if err := svc.FixStructure(ctx, missing); err != nil {
		return fmt.Errorf("failed to fix structure: %w", err)
	}
	l.Info("Structure fixed successfully.")
	return nil
}

func runSources(cmd *cobra.Command, svc *integrity.Service, l *zap.Logger) error {
	l.Info("Checking versioned manifests...")
	report, err := svc.CheckSources(cmd.Context())
	if err != nil {
		return fmt.Errorf("sources check failed: %w", err)
	}

	if sourcesJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(data))
	}

	assets := make([]string, 0, len(report.Versions))
	for name := range report.Versions {
		assets = append(assets, name)
	}
	sort.Strings(assets)
	for _, name := range assets {
		l.Debug("Asset versions",
			zap.String("asset", name),
			zap.Strings("versions", report.Versions[name]),
			zap.String("latest", report.Latest(name)),
		)
	}

	l.Info("Manifests checked",
		zap.Int("total", report.Total),
		zap.Int("assets", len(report.Versions)),
		zap.Int("invalid", len(report.Invalid)),
	)
	if len(report.Invalid) > 0 {
		l.Warn("Unversioned manifests detected", zap.Strings("keys", report.Invalid))
	}
	return nil
}

func runJournal(svc *integrity.Service, l *zap.Logger) {
	l.Info("Checking journal schema...")
	report, err := svc.CheckJournal()
	if err != nil {
		l.Error("Journal schema check failed", zap.Error(err))
		return
	}

	if report.Matched {
		l.Info("Journal schema matches the model.", zap.String("table", report.Table))
		return
	}
	l.Warn("Journal schema mismatches found", zap.String("table", report.Table))
	if len(report.MissingColumns) > 0 {
		l.Warn("Missing Columns", zap.Strings("columns", report.MissingColumns))
	}
	if len(report.TypeMismatches) > 0 {
		l.Warn("Type Mismatches", zap.Strings("mismatches", report.TypeMismatches))
	}
	for _, e := range report.Errors {
		l.Error("Inspection Error", zap.String("error", e))
	}
}

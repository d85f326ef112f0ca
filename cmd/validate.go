package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/fetcher"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/schema"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check which semantic columns resolve in each configured feed",
	Long: `Reads every configured source table and the contact directory, runs the
column resolver against each header row, and reports resolved and missing
semantic targets. Missing targets degrade the dashboard (null fees, LOW risk,
empty managers) without blocking it; this command makes the degradation
visible before handlers notice.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	_, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader, err := initLoader(cfg)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tPATH\tRESOLVED\tMISSING")

	for _, src := range loader.Sources {
		table, err := fetcher.ReadTable(src.Path)
		if err != nil {
			fmt.Fprintf(w, "%s\t%s\tUNAVAILABLE: %v\t\n", src.Category, src.Path, err)
			continue
		}
		res := schema.Resolve(table.Headers, schema.RecordTargets, loader.Synonyms)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", src.Category, src.Path,
			targetList(res, schema.RecordTargets), missingList(res))
	}

	if loader.ContactPath != "" {
		table, err := fetcher.ReadTable(loader.ContactPath)
		if err != nil {
			fmt.Fprintf(w, "contacts\t%s\tUNAVAILABLE: %v\t\n", loader.ContactPath, err)
		} else {
			res := schema.Resolve(table.Headers, schema.DirectoryTargets, loader.Synonyms)
			fmt.Fprintf(w, "contacts\t%s\t%s\t%s\n", loader.ContactPath,
				targetList(res, schema.DirectoryTargets), missingList(res))
		}
	}

	return w.Flush()
}

func targetList(res schema.Resolution, targets []schema.Target) string {
	var resolved []string
	for _, t := range targets {
		if col, ok := res.Columns[t]; ok {
			resolved = append(resolved, fmt.Sprintf("%s→%s", t, col))
		}
	}
	sort.Strings(resolved)
	return strings.Join(resolved, ", ")
}

func missingList(res schema.Resolution) string {
	missing := make([]string, len(res.Missing))
	for i, m := range res.Missing {
		missing[i] = string(m)
	}
	sort.Strings(missing)
	return strings.Join(missing, ", ")
}

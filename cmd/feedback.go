package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/ledger"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/model"
	"github.com/bough38-web/haeji-voc-dashboard-sub000/internal/normalize"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Append or list complaint handling notes",
}

var feedbackAddFlags struct {
	contractID string
	response   string
	author     string
	note       string
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Append one handling note to the ledger",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		idNorm := normalize.ContractID(feedbackAddFlags.contractID)
		if idNorm == "" {
			return eris.New("--id must contain at least one alphanumeric character")
		}

		led, err := initLedger(ctx, cfg)
		if err != nil {
			return err
		}
		defer led.Close()

		entry := model.FeedbackEntry{
			ContractIDNorm: idNorm,
			ResponseText:   feedbackAddFlags.response,
			Author:         feedbackAddFlags.author,
			RecordedAt:     time.Now().UTC(),
			Note:           feedbackAddFlags.note,
		}
		if err := led.Append(ctx, entry); err != nil {
			return err
		}

		zap.L().Info("feedback appended",
			zap.String("contract_id_norm", idNorm),
			zap.String("author", entry.Author))
		return nil
	},
}

var feedbackListID string

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List ledger entries, optionally for one contract",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		led, err := initLedger(ctx, cfg)
		if err != nil {
			return err
		}
		defer led.Close()

		entries, err := led.LoadAll(ctx)
		if err != nil {
			return err
		}
		if feedbackListID != "" {
			entries = ledger.ForContract(entries, normalize.ContractID(feedbackListID))
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CONTRACT\tRECORDED\tAUTHOR\tRESPONSE\tNOTE")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.ContractIDNorm, e.RecordedAt.Format("2006-01-02 15:04"),
				e.Author, e.ResponseText, e.Note)
		}
		return w.Flush()
	},
}

func init() {
	f := feedbackAddCmd.Flags()
	f.StringVar(&feedbackAddFlags.contractID, "id", "", "contract identifier (required; normalized before storage)")
	f.StringVar(&feedbackAddFlags.response, "response", "", "handling response text")
	f.StringVar(&feedbackAddFlags.author, "author", "", "handler name (required)")
	f.StringVar(&feedbackAddFlags.note, "note", "", "free-form note")
	_ = feedbackAddCmd.MarkFlagRequired("id")
	_ = feedbackAddCmd.MarkFlagRequired("author")

	feedbackListCmd.Flags().StringVar(&feedbackListID, "id", "", "only entries for this contract identifier")

	feedbackCmd.AddCommand(feedbackAddCmd)
	feedbackCmd.AddCommand(feedbackListCmd)
	rootCmd.AddCommand(feedbackCmd)
}

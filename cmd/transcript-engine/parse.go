// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/transcript-engine/internal/parse"
	"github.com/pdiddy/transcript-engine/internal/pdftext"
	"github.com/pdiddy/transcript-engine/internal/store"
	"github.com/pdiddy/transcript-engine/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse [pdf]",
	Short: "Extract course records from a transcript PDF",
	Long: `Parse extracts the transcript's text, segments it into semester blocks
and course rows, and writes the projected records as an indented JSON
array to the output file and to stdout. Non-ASCII characters are
preserved verbatim.

Rows that fail both extraction paths are skipped silently; run with
--verbose to see the skip count. With --store the parsed transcript is
also saved to the local database under --student.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringP("output", "o", defaultOutputPath, "output JSON file")
	parseCmd.Flags().String("template", "", "YAML file overriding the built-in document template lists")
	parseCmd.Flags().Bool("store", false, "also save the parsed transcript to the store")
	parseCmd.Flags().String("student", "", "student ID to save the transcript under (required with --store)")
	parseCmd.Flags().String("db", defaultDBPath, "SQLite database file for --store")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg := types.ParseConfig{
		InputPath:    defaultInputPath,
		OutputPath:   setting(cmd, "output", "parse.output"),
		TemplatePath: setting(cmd, "template", "parse.template"),
	}
	if viper.IsSet("parse.input") {
		cfg.InputPath = viper.GetString("parse.input")
	}
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	tpl := parse.DefaultTemplate()
	if cfg.TemplatePath != "" {
		var err error
		tpl, err = parse.LoadTemplate(cfg.TemplatePath)
		if err != nil {
			return err
		}
	}

	parser, err := parse.New(tpl)
	if err != nil {
		return err
	}

	text, err := pdftext.NewPDFExtractor().Extract(cfg.InputPath)
	if err != nil {
		return err
	}

	records := parser.Parse(text)
	summaries := types.Summarize(records)

	log.Debug().
		Int("courses", len(records)).
		Int("rows_skipped", parser.Skipped()).
		Msg("extraction complete")

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summaries); err != nil {
		return fmt.Errorf("encoding course records: %w", err)
	}

	if err := os.WriteFile(cfg.OutputPath, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.OutputPath, err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing to stdout: %w", err)
	}

	log.Info().
		Str("output", cfg.OutputPath).
		Int("courses", len(summaries)).
		Msg("wrote course records")

	saveToStore, _ := cmd.Flags().GetBool("store")
	if !saveToStore {
		return nil
	}

	studentID, _ := cmd.Flags().GetString("student")
	if studentID == "" {
		return fmt.Errorf("--student is required with --store")
	}

	st, err := store.NewStore(types.StoreConfig{DBPath: setting(cmd, "db", "store.db")})
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Save(cmd.Context(), studentID, summaries); err != nil {
		return err
	}
	log.Info().Str("student", studentID).Msg("saved transcript")
	return nil
}

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/opine"
)

type countOptions struct {
	number    int
	pos       bool
	stopwords bool
}

func countCmd(cfg *Config, global *globalOptions) *cobra.Command {
	opts := &countOptions{}

	cmd := &cobra.Command{
		Use:   "count TEXT-FILE",
		Short: "Print the most common lemmas of a text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := global.logger(cmd)
			defer func() { _ = logger.Sync() }()

			doc, err := readDocument(args[0], global, logger)
			if err != nil {
				return err
			}
			counter := opine.NewLemmaCounter(
				opine.CountingStopwords(opts.stopwords),
				opine.CountingPartOfSpeech(opts.pos),
			)
			counter.AddDocument(doc)
			return writeCounts(cmd.OutOrStdout(), counter.MostCommon(opts.number), opts.pos)
		},
	}

	cmd.Flags().IntVarP(&opts.number, "number", "n", cfg.Number, "number of most common lemmas to print, 0=all")
	cmd.Flags().BoolVarP(&opts.pos, "pos", "p", false,
		`include the part of speech, so words might show multiple times, e.g. "pretty" as ADJ and ADV`)
	cmd.Flags().BoolVarP(&opts.stopwords, "stopwords", "s", false, "also count stopwords")

	return cmd
}

func unknownCmd(global *globalOptions) *cobra.Command {
	var compact bool

	cmd := &cobra.Command{
		Use:   "unknown LEXICON TEXT-FILE",
		Short: "Print lemmas of a text that are not part of a lexicon yet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := global.logger(cmd)
			defer func() { _ = logger.Sync() }()

			lexicon, err := loadLexicon(args[0], global.encoding, compact, logger)
			if err != nil {
				return err
			}
			doc, err := readDocument(args[1], global, logger)
			if err != nil {
				return err
			}
			counter := opine.NewLemmaCounter()
			for i := range doc.Sentences() {
				counter.Add(lexicon.UnknownTokens(doc.Tokens(i)))
			}
			return writeCounts(cmd.OutOrStdout(), counter.Counts(), false)
		},
	}

	cmd.Flags().BoolVar(&compact, "compact", false,
		"lexicon rows are lemma, topic, rating without a reserved second column")

	return cmd
}

func readDocument(path string, global *globalOptions, logger *zap.Logger) (*opine.Document, error) {
	logger.Info("reading and tokenizing text", zap.String("path", path))
	text, err := opine.ReadText(path, global.encoding)
	if err != nil {
		return nil, err
	}
	lang, err := global.resolveLanguage(text)
	if err != nil {
		return nil, err
	}
	return opine.NewDocument(text, opine.WithLanguage(lang))
}

func writeCounts(w io.Writer, counts []opine.LemmaCount, withTag bool) error {
	for _, count := range counts {
		row := []string{strconv.Itoa(count.Count), count.Lemma}
		if withTag {
			row = append(row, count.Tag)
		}
		if _, err := fmt.Fprintln(w, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"encoding/csv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/opine"
)

type analyzeOptions struct {
	immediately   bool
	compact       bool
	topic         string
	normalization string
	sentiment     string
}

func analyzeCmd(cfg *Config, global *globalOptions) *cobra.Command {
	opts := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze LEXICON TEXT-FILE...",
		Short: "Print the topic and rating of each sentence as CSV",
		Example: `  opine analyze restaurant.csv feedback.txt
  opine analyze -i restaurant.csv The schnitzel was not very tasty.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, global, opts, args[0], args[1:])
		},
	}

	cmd.Flags().BoolVarP(&opts.immediately, "immediately", "i", false,
		"analyze the remaining arguments as text instead of reading files")
	cmd.Flags().BoolVar(&opts.compact, "compact", false,
		"lexicon rows are lemma, topic, rating without a reserved second column")
	cmd.Flags().StringVar(&opts.topic, "topic", "", "topic to assume for sentences that mention none")
	cmd.Flags().StringVar(&opts.normalization, "normalization", cfg.Normalization,
		"YAML file with synonyms, abbreviations and emoticons")
	cmd.Flags().StringVar(&opts.sentiment, "sentiment", "",
		"JSON file with modifiers, rated words and idioms replacing the built-in ones")

	return cmd
}

func runAnalyze(cmd *cobra.Command, global *globalOptions, opts *analyzeOptions, lexiconPath string, sources []string) error {
	logger := global.logger(cmd)
	defer func() { _ = logger.Sync() }()

	lexicon, err := loadLexicon(lexiconPath, global.encoding, opts.compact, logger)
	if err != nil {
		return err
	}

	var analyzeOpts []opine.AnalyzeOpt[RestaurantTopic]
	if opts.topic != "" {
		topic, err := lexicon.Topic(opts.topic)
		if err != nil {
			return err
		}
		analyzeOpts = append(analyzeOpts, opine.WithExpectedTopic(topic))
	}

	normalization, err := LoadNormalization(opts.normalization)
	if err != nil {
		return err
	}
	minerOpts, err := normalization.MinerOpts(global.encoding, logger)
	if err != nil {
		return err
	}

	texts := []string{strings.Join(sources, " ")}
	if !opts.immediately {
		texts = texts[:0]
		for _, path := range sources {
			logger.Info("reading text", zap.String("path", path))
			text, err := opine.ReadText(path, global.encoding)
			if err != nil {
				return err
			}
			texts = append(texts, text)
		}
	}

	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"# topic", "rating", "text"}); err != nil {
		return err
	}

	miners := make(map[opine.Language]*opine.OpinionMiner[RestaurantTopic])
	for _, text := range texts {
		lang, err := global.resolveLanguage(text)
		if err != nil {
			return err
		}
		miner, found := miners[lang]
		if !found {
			if miner, err = newMiner(lang, lexicon, opts.sentiment, minerOpts, logger); err != nil {
				return err
			}
			miners[lang] = miner
		}
		for opinion := range miner.Opinions(text, analyzeOpts...) {
			if err := w.Write(opinionRow(opinion)); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func loadLexicon(path, encoding string, compact bool, logger *zap.Logger) (*opine.Lexicon[RestaurantTopic], error) {
	var lexiconOpts []opine.LexiconOpt
	if compact {
		lexiconOpts = append(lexiconOpts, opine.UsingLayout(opine.CompactLexiconLayout))
	}
	lexicon, err := opine.NewLexicon(RestaurantTopics(), lexiconOpts...)
	if err != nil {
		return nil, err
	}
	logger.Info("reading lexicon", zap.String("path", path))
	if err := lexicon.ReadCSVFile(path, encoding); err != nil {
		return nil, err
	}
	logger.Debug("read lexicon", zap.Stringer("lexicon", lexicon))
	return lexicon, nil
}

func newMiner(lang opine.Language, lexicon *opine.Lexicon[RestaurantTopic], sentimentPath string, minerOpts []opine.MinerOpt, logger *zap.Logger) (*opine.OpinionMiner[RestaurantTopic], error) {
	pipeline, err := opine.NewPipeline(lang)
	if err != nil {
		return nil, err
	}
	sentiment := opine.LanguageSentimentFor(string(lang), logger)
	if sentimentPath != "" {
		if sentiment, err = opine.LoadLanguageSentiment(lang, sentimentPath); err != nil {
			return nil, err
		}
	}
	return opine.NewOpinionMiner(pipeline, lexicon, sentiment, minerOpts...)
}

func opinionRow(opinion opine.Opinion[RestaurantTopic]) []string {
	var topic, rating string
	if opinion.HasTopic {
		topic = strings.ToLower(opinion.Topic.String())
	}
	if opinion.Rating != opine.NoRating {
		rating = strings.ToLower(opinion.Rating.String())
	}
	return []string{topic, rating, opinion.Sentence.Text}
}

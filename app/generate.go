package app

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/keyforge/keyforge/internal/charset"
	"github.com/keyforge/keyforge/internal/config"
	"github.com/keyforge/keyforge/internal/export"
	"github.com/keyforge/keyforge/internal/keygen"
	"github.com/keyforge/keyforge/internal/logger"
	"github.com/keyforge/keyforge/internal/request"
)

func init() { //nolint: gochecknoinits
	f := generateCmd.Flags()

	f.IntVar(&keyLength, "length", 0, "Key length")
	f.StringVar(&excludeSpec, "exclude", "", "Exclusion profile name or literal characters to exclude")
	f.IntVar(&excludeIndex, "exclude-index", 0, "Exclusion profile index (see the chart command)")
	f.BoolVar(&includeAll, "include-all", false, "Include all characters, no exclusions")
	f.BoolVar(&uniqueChars, "unique", false, "Ensure no character repeats within a key")
	f.BoolVar(&bypassUnique, "bypass-unique-limit", false, "Allow unique mode past the charset capacity")
	f.BoolVar(&encoded, "encode", false, "Base64 encode the key")
	f.BoolVar(&urlSafe, "urlsafe", false, "URL-safe base64 encode the key")
	f.StringVar(&separator, "sep", "", "Separator character for wrapping")
	f.IntVar(&sepWidth, "sep-width", 0, "Fixed chunk width for wrapping")
	f.IntSliceVar(&sepWidths, "sep-widths", nil, "Successive chunk widths for wrapping")
	f.BoolVar(&useWords, "words", false, "Generate words instead of characters")
	f.IntVar(&wordCount, "word-count", 0, "Number of words in word mode")
	f.IntVar(&keyCount, "count", 0, "Number of keys to generate")
	f.StringVar(&outFile, "out", "", "Export the result to this file")
	f.BoolVar(&overwrite, "overwrite", false, "Overwrite an existing key file")
	f.BoolVar(&verbose, "verbose", false, "Enable diagnostic output")

	rootCmd.AddCommand(generateCmd)
}

var (
	cfg config.Config
	err error

	keyLength    int
	excludeSpec  string
	excludeIndex int
	includeAll   bool
	uniqueChars  bool
	bypassUnique bool
	encoded      bool
	urlSafe      bool
	separator    string
	sepWidth     int
	sepWidths    []int
	useWords     bool
	wordCount    int
	keyCount     int
	outFile      string
	overwrite    bool
	verbose      bool

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate one or more random keys",
		PreRun: func(cmd *cobra.Command, _ []string) {
			if cfg, err = config.ReadConfig(configPath); err != nil {
				panic(err)
			}

			applyDefaults(cmd)

			if verbose && cfg.Log.LogLevel != "trace" {
				cfg.Log.LogLevel = "debug"
			}

			if err = logger.Init(cfg.Log); err != nil {
				panic(err)
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := buildRequest()

			rcfg, err := request.Validate(req)
			if err != nil {
				return err
			}

			eng := keygen.New(rcfg)

			if cmd.Flags().Changed("count") {
				return emitKeys(eng)
			}

			return emitKey(eng)
		},
	}
)

// applyDefaults fills flags the caller left unset from the config file.
func applyDefaults(cmd *cobra.Command) {
	f := cmd.Flags()

	if !f.Changed("length") {
		keyLength = cfg.Generator.Length
	}

	if !f.Changed("count") {
		keyCount = cfg.Generator.KeyCount
	}

	if !f.Changed("sep") {
		separator = cfg.Generator.Separator
	}

	if !f.Changed("sep-width") {
		sepWidth = cfg.Generator.SepWidth
	}

	if !f.Changed("exclude") {
		excludeSpec = cfg.Generator.Exclude
	}

	if !f.Changed("verbose") {
		verbose = cfg.Generator.Verbose
	}
}

func buildRequest() request.Request {
	req := request.Request{
		Length:            keyLength,
		IncludeAll:        includeAll,
		Unique:            uniqueChars,
		BypassUniqueLimit: bypassUnique,
		Encoded:           encoded,
		URLSafe:           urlSafe,
		Separator:         separator,
		SepWidth:          sepWidth,
		SepWidths:         sepWidths,
		UseWords:          useWords,
		WordCount:         wordCount,
		KeyCount:          keyCount,
		Verbose:           verbose,
	}

	switch {
	case includeAll:
		// no exclusions
	case excludeIndex > 0:
		req.Exclude = request.ByProfileIndex(excludeIndex)
	case excludeSpec != "":
		if charset.IsProfile(excludeSpec) {
			req.Exclude = request.ByProfileName(excludeSpec)
		} else {
			if verbose {
				log.Warn().
					Str("exclude", excludeSpec).
					Msg("not a profile name, excluding the characters literally")
			}

			req.Exclude = request.ByLiteralChars(excludeSpec)
		}
	}

	return req
}

func emitKey(eng *keygen.Engine) error {
	k, err := eng.Key()
	if err != nil {
		return err
	}

	if outFile != "" {
		_, err = export.Key(k, outFile, overwrite)
		return err
	}

	fmt.Println(k.String())

	return nil
}

func emitKeys(eng *keygen.Engine) error {
	keys, err := eng.Keys()
	if err != nil {
		return err
	}

	if outFile != "" {
		_, err = export.Keys(keys, outFile, overwrite)
		return err
	}

	for i, label := range keys.Labels() {
		fmt.Printf("%s: %s\n", label, keys.At(i).String())
	}

	return nil
}

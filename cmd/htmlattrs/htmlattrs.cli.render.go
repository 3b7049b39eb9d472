package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/itsatony/go-htmlattrs"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// renderConfig holds parsed render command configuration
type renderConfig struct {
	dataInline    string
	dataFilePath  string
	outputPath    string
	configPath    string
	envFilePath   string
	quote         string
	assignment    string
	separator     string
	shortCircuit  bool
	removeHelpers []string
	format        string
	newline       bool
}

// renderOutput represents JSON output for render
type renderOutput struct {
	Attributes string   `json:"attributes"`
	Names      []string `json:"names"`
}

func newRenderCmd() *cobra.Command {
	cfg := &renderConfig{}

	cmd := &cobra.Command{
		Use:     RenderUse,
		Short:   RenderShort,
		Example: RenderExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.dataInline, FlagData, FlagDataShort, "", FlagUsageData)
	flags.StringVarP(&cfg.dataFilePath, FlagDataFile, FlagDataFileShort, "", FlagUsageDataFile)
	flags.StringVarP(&cfg.outputPath, FlagOutput, FlagOutputShort, FlagDefaultOutput, FlagUsageOutput)
	flags.StringVarP(&cfg.configPath, FlagConfig, FlagConfigShort, "", FlagUsageConfig)
	flags.StringVar(&cfg.envFilePath, FlagEnvFile, "", FlagUsageEnvFile)
	flags.StringVar(&cfg.quote, FlagQuote, htmlattrs.DefaultQuote, FlagUsageQuote)
	flags.StringVar(&cfg.assignment, FlagAssignment, htmlattrs.DefaultAssignment, FlagUsageAssignment)
	flags.StringVar(&cfg.separator, FlagSeparator, htmlattrs.DefaultSeparator, FlagUsageSeparator)
	flags.BoolVar(&cfg.shortCircuit, FlagShortCircuit, false, FlagUsageShortCircuit)
	flags.StringSliceVar(&cfg.removeHelpers, FlagRemoveHelper, nil, FlagUsageRemoveHelper)
	flags.StringVarP(&cfg.format, FlagFormat, FlagFormatShort, FlagDefaultFormat, FlagUsageFormat)
	flags.BoolVar(&cfg.newline, FlagNewline, true, FlagUsageNewline)

	return cmd
}

func runRender(cmd *cobra.Command, cfg *renderConfig) error {
	if cfg.dataInline != "" && cfg.dataFilePath != "" {
		return newCLIError(ExitCodeUsageError, ErrMsgConflictingData, nil)
	}
	if cfg.format != OutputFormatText && cfg.format != OutputFormatJSON {
		return newCLIError(ExitCodeUsageError, ErrMsgInvalidFormat, nil)
	}

	source, err := readDocument(cfg, cmd.InOrStdin())
	if err != nil {
		return newCLIError(ExitCodeInputError, ErrMsgReadFileFailed, err)
	}

	attrs, err := htmlattrs.ParseAttributes(source)
	if err != nil {
		return newCLIError(ExitCodeInputError, ErrMsgInvalidData, err)
	}

	formatter, err := buildFormatter(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	result, err := formatter.Format(attrs)
	if err != nil {
		return newCLIError(ExitCodeError, ErrMsgFormatFailed, err)
	}

	out, err := encodeResult(cfg, attrs, result)
	if err != nil {
		return newCLIError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}

	if err := writeOutput(cfg.outputPath, out, cmd.OutOrStdout()); err != nil {
		return newCLIError(ExitCodeError, ErrMsgWriteOutputFailed, err)
	}
	return nil
}

// buildFormatter resolves punctuation with precedence flag > env > config >
// built-in default.
func buildFormatter(flags *pflag.FlagSet, cfg *renderConfig) (*htmlattrs.Formatter, error) {
	fileConfig := &htmlattrs.Config{}
	if cfg.configPath != "" {
		loaded, err := htmlattrs.LoadConfig(cfg.configPath)
		if err != nil {
			return nil, newCLIError(ExitCodeInputError, ErrMsgLoadConfigFailed, err)
		}
		fileConfig = loaded
	}

	var dotenv map[string]string
	if cfg.envFilePath != "" {
		vars, err := godotenv.Read(cfg.envFilePath)
		if err != nil {
			return nil, newCLIError(ExitCodeInputError, ErrMsgLoadEnvFailed, err)
		}
		dotenv = vars
	}

	punct := fileConfig.Format.Merge(envFormatOptions(dotenv))

	if flags.Changed(FlagQuote) {
		punct = punct.WithQuote(cfg.quote)
	}
	if flags.Changed(FlagAssignment) {
		punct = punct.WithAssignment(cfg.assignment)
	}
	if flags.Changed(FlagSeparator) {
		punct = punct.WithSeparator(cfg.separator)
	}

	opts := []htmlattrs.Option{htmlattrs.WithDefaults(punct)}
	if flags.Changed(FlagShortCircuit) {
		opts = append(opts, htmlattrs.WithShortCircuit(cfg.shortCircuit))
	}

	formatter, err := fileConfig.NewFormatter(opts...)
	if err != nil {
		return nil, newCLIError(ExitCodeInputError, ErrMsgLoadConfigFailed, err)
	}
	for _, name := range cfg.removeHelpers {
		formatter.RemoveHelper(name)
	}
	return formatter, nil
}

// envFormatOptions reads punctuation overrides from the environment, then
// from dotenv for variables the environment does not set. A variable that
// is set but empty still overrides. The process environment is not
// modified.
func envFormatOptions(dotenv map[string]string) htmlattrs.FormatOptions {
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	var opts htmlattrs.FormatOptions
	if v, ok := lookup(EnvQuote); ok {
		opts = opts.WithQuote(v)
	}
	if v, ok := lookup(EnvAssignment); ok {
		opts = opts.WithAssignment(v)
	}
	if v, ok := lookup(EnvSeparator); ok {
		opts = opts.WithSeparator(v)
	}
	return opts
}

// readDocument returns the attribute document from --data, --data-file or
// stdin when neither is given.
func readDocument(cfg *renderConfig, stdin io.Reader) ([]byte, error) {
	switch {
	case cfg.dataInline != "":
		return []byte(cfg.dataInline), nil
	case cfg.dataFilePath == "" || cfg.dataFilePath == InputSourceStdin:
		return io.ReadAll(stdin)
	default:
		return os.ReadFile(cfg.dataFilePath)
	}
}

func encodeResult(cfg *renderConfig, attrs htmlattrs.Attributes, result string) ([]byte, error) {
	if cfg.format == OutputFormatJSON {
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(renderOutput{Attributes: result, Names: attrs.Names()}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	if cfg.newline {
		result += FmtNewline
	}
	return []byte(result), nil
}

// writeOutput writes content to a file or stdout
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == FlagDefaultOutput {
		_, err := stdout.Write(data)
		return err
	}

	return os.WriteFile(path, data, FilePermissions)
}

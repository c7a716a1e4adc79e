package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/boyter/gocodewalker"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	codegen "github.com/negative0/graphql-code-generator"
	"github.com/negative0/graphql-code-generator/language"
	"github.com/negative0/graphql-code-generator/sdl"

	// Register languages.
	_ "github.com/negative0/graphql-code-generator/language/typescript"
)

// Generate command errors.
var (
	ErrNoSchemaFiles    = errors.New("no schema files found")
	ErrUnknownLanguage  = errors.New("unknown language")
	ErrGenerationErrors = errors.New("schema generation failed")
)

// schemaExtensions are the file extensions recognized as schema files.
var schemaExtensions = []string{"graphql", "graphqls"}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"gen"},
		Usage:     "Generate code from GraphQL schema files",
		ArgsUsage: "[files or directories...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "lang",
				Aliases: []string{"l"},
				Usage:   "target language (typescript)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory (default: current directory)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "verbose output",
			},
		},
		Action: runGenerate,
	}
}

func runGenerate(ctx context.Context, cmd *cli.Command) error {
	logger := newLogger(cmd.Bool("verbose"))
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting cwd: %w", err)
	}

	// A missing config file is fine (defaults apply); a broken one is not.
	cfg, configDir, err := loadConfigWithDir(cwd)
	if err != nil && !errors.Is(err, codegen.ErrConfigNotFound) {
		return fmt.Errorf("loading config: %w", err)
	}

	langName := firstNonEmpty(cmd.String("lang"), cfgLang(cfg), codegen.LangTypeScript)
	outputDir := firstNonEmpty(cmd.String("out"), cfgOut(cfg), ".")

	args := cmd.Args().Slice()
	if len(args) == 0 {
		args = configSchemaPaths(cfg, configDir)
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := discoverSchemaFiles(args)
	if err != nil {
		return fmt.Errorf("discovering schema files: %w", err)
	}

	if len(files) == 0 {
		return ErrNoSchemaFiles
	}

	parsed := make([]sdl.ParsedFile, 0, len(files))

	for _, path := range files {
		data, err := os.ReadFile(path) //nolint:gosec // G304: file path from user input is expected
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		doc, err := sdl.Parse(path, data)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}

		logger.Debug("parsed schema file", zap.String("path", path))
		parsed = append(parsed, sdl.ParsedFile{Doc: doc, Path: path})
	}

	merged, err := sdl.MergeDocuments(parsed)
	if err != nil {
		return fmt.Errorf("merging schema files: %w", err)
	}

	schema := sdl.Convert(merged)
	logger.Debug("loaded schema", zap.Int("types", len(schema.Types())))

	lang, ok := language.Get(langName)
	if !ok {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownLanguage, langName, language.RegisteredLanguages())
	}

	var tsOpts *codegen.TypeScriptOptions
	if cfg != nil {
		tsOpts = &cfg.TypeScript
	}

	out, genErr := lang.Generate(&language.GenerateContext{
		Schema:     schema,
		OutputDir:  outputDir,
		TypeScript: tsOpts,
	})
	if genErr != nil {
		var cfgErrs codegen.ConfigurationErrors
		if errors.As(genErr, &cfgErrs) {
			for _, e := range cfgErrs {
				fmt.Fprintf(os.Stderr, "error: %s\n", e)
			}

			return ErrGenerationErrors
		}

		return genErr
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	names := make([]string, 0, len(out))
	for name := range out {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, out[name], 0o644); err != nil { //nolint:gosec // G306: generated source is world-readable
			return fmt.Errorf("writing %s: %w", path, err)
		}

		logger.Debug("wrote file", zap.String("path", path))

		if isatty.IsTerminal(os.Stdout.Fd()) {
			fmt.Printf("generated %s\n", path)
		}
	}

	return nil
}

// discoverSchemaFiles expands files and directories into a sorted list of
// schema files. Directory walks respect .gitignore.
func discoverSchemaFiles(args []string) ([]string, error) {
	var (
		files []string
		mu    sync.Mutex
	)

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}

		if info.IsDir() {
			if err := walkDir(arg, func(path string) {
				mu.Lock()
				files = append(files, path)
				mu.Unlock()
			}); err != nil {
				return nil, err
			}
		} else if hasSchemaExtension(arg) {
			files = append(files, arg)
		}
	}

	// Walk order is not guaranteed; sort for deterministic output.
	sort.Strings(files)

	return files, nil
}

// walkDir walks a directory for schema files, respecting .gitignore.
func walkDir(root string, callback func(path string)) error {
	fileListQueue := make(chan *gocodewalker.File, 100)

	fileWalker := gocodewalker.NewFileWalker(root, fileListQueue)
	fileWalker.AllowListExtensions = schemaExtensions

	var walkErr error
	fileWalker.SetErrorHandler(func(e error) bool {
		walkErr = e
		return true
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for f := range fileListQueue {
			callback(f.Location)
		}
	}()

	if err := fileWalker.Start(); err != nil {
		return err
	}

	wg.Wait()
	return walkErr
}

func hasSchemaExtension(path string) bool {
	for _, ext := range schemaExtensions {
		if strings.HasSuffix(path, "."+ext) {
			return true
		}
	}

	return false
}

// newLogger builds the command logger. Verbose mode logs to stderr with
// development formatting; color only on a terminal.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}

	cfg := zap.NewDevelopmentConfig()
	if isatty.IsTerminal(os.Stderr.Fd()) {
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// Config accessors tolerant of a missing config file.

func cfgLang(cfg *codegen.Config) string {
	if cfg == nil {
		return ""
	}

	return cfg.Generate.Lang
}

func cfgOut(cfg *codegen.Config) string {
	if cfg == nil {
		return ""
	}

	return cfg.Generate.Out
}

func configSchemaPaths(cfg *codegen.Config, configDir string) []string {
	if cfg == nil {
		return nil
	}

	paths := make([]string, 0, len(cfg.Schema))
	for _, p := range cfg.Schema {
		if !filepath.IsAbs(p) {
			p = filepath.Join(configDir, p)
		}

		paths = append(paths, p)
	}

	return paths
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ojtools/ojextract/internal/app"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		url         string
		inputPath   string
		outputPath  string
		configPath  string
		envFile     string
		strictLang  bool
		mapVJ       bool
		verbose     bool
		showVersion bool
	)

	flag.StringVar(&url, "url", "", "URL of the submission page the markup came from (or OJEXTRACT_URL)")
	flag.StringVar(&inputPath, "input", "-", "Path to the rendered markup ('-' reads stdin)")
	flag.StringVar(&outputPath, "output", "-", "Path to write the JSON result ('-' writes stdout)")
	flag.StringVar(&configPath, "config", "", "Optional YAML/JSON config file (or OJEXTRACT_CONFIG)")
	flag.StringVar(&envFile, "env", ".env", "Dotenv file loaded before flags are resolved")
	flag.BoolVar(&strictLang, "lang.strict", false, "Reject unrecognized language text instead of defaulting to C++17")
	flag.BoolVar(&mapVJ, "map.vjudge", false, "Split proxied VJudge records into their origin judge and problem id")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("ojextract %s (%s, %s)\n", app.BuildVersion, app.BuildCommit, app.BuildDate)
		return
	}

	// Dotenv must land in the environment before the env fallbacks are
	// resolved, so flags left unset can pick up values from the file.
	if err := app.LoadEnvFiles(envFile); err != nil {
		log.Warn().Err(err).Str("path", envFile).Msg("dotenv load failed")
	}
	if configPath == "" {
		configPath = os.Getenv("OJEXTRACT_CONFIG")
	}

	cfg := app.Config{
		URL:             url,
		InputPath:       inputPath,
		OutputPath:      outputPath,
		StrictLanguage:  strictLang,
		MapVirtualJudge: mapVJ,
		Verbose:         verbose,
	}
	app.ApplyEnv(&cfg)

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file load failed")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if err := app.ValidateConfig(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		os.Exit(2)
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("extraction failed")
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	content, err := readInput(cfg.InputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	p := app.New(cfg)
	_, name, nameErr := p.CreateExtractor(cfg.URL)
	if nameErr == nil {
		log.Debug().Str("extractor", name).Msg("extractor selected")
	}

	sub, err := p.Extract(cfg.URL, content)
	res := app.BuildResult(name, sub, err)

	if werr := writeOutput(cfg.OutputPath, res); werr != nil {
		return fmt.Errorf("write output: %w", werr)
	}
	// The envelope already reports the failure to the consumer; the exit
	// code mirrors it for shell callers.
	return err
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func writeOutput(path string, res app.Result) error {
	var w io.Writer = os.Stdout
	if path != "-" && path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/epireport/incubation-analysis/analysis"
	"github.com/epireport/incubation-analysis/consts"
	"github.com/epireport/incubation-analysis/fit"
	"github.com/epireport/incubation-analysis/linelist"
	"github.com/epireport/incubation-analysis/report"
	"github.com/epireport/incubation-analysis/schema"
	"github.com/epireport/incubation-analysis/store"
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("epireport")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("linelist.path", "linelist.csv")
	viper.SetDefault("analysis.reference_epoch", "2019-12-01")
	viper.SetDefault("analysis.min_exposure_left", "2019-12-01")
	viper.SetDefault("analysis.origin", "Wuhan")
	viper.SetDefault("analysis.family", "lognormal")
	viper.SetDefault("analysis.min_cases", 2)
	viper.SetDefault("analysis.zero_width", "drop")
	viper.SetDefault("analysis.nudge", 0.5)
	viper.SetDefault("analysis.min_reviewers", 2)
	viper.SetDefault("fit.max_iterations", 1000)
	viper.SetDefault("bootstrap.replicates", 1000)
	viper.SetDefault("bootstrap.seed", 1)
	viper.SetDefault("bootstrap.workers", 0)
	viper.SetDefault("bootstrap.max_discard", 0.05)
	viper.SetDefault("bootstrap.width", 95)
	viper.SetDefault("results.dir", "results")
	viper.SetDefault("results.db", "results/results.db")
	viper.SetDefault("compare.path", "")
}

func configDate(key string) time.Time {
	t, err := time.Parse("2006-01-02", viper.GetString(key))
	if nil != err {
		log.Panicf("parse %s with error: %s", key, err)
	}
	return t
}

// buildConfig assembles the analysis configuration from viper.
func buildConfig() analysis.Config {
	family, err := fit.FamilyByName(viper.GetString("analysis.family"))
	if nil != err {
		log.Panic(err)
	}

	zeroWidth := schema.ZeroWidthRule(viper.GetString("analysis.zero_width"))
	switch zeroWidth {
	case schema.ZeroWidthDrop, schema.ZeroWidthNudge, schema.ZeroWidthKeep:
	default:
		log.Panicf("unknown analysis.zero_width %q", zeroWidth)
	}

	quantiles := append([]float64{0}, consts.DefaultQuantiles...)
	if viper.IsSet("analysis.quantiles") {
		var qs []float64
		if err := viper.UnmarshalKey("analysis.quantiles", &qs); err != nil {
			log.Panicf("parse analysis.quantiles with error: %s", err)
		}
		quantiles = append([]float64{0}, qs...)
	}

	return analysis.Config{
		Derive: schema.DerivePolicy{
			ReferenceEpoch:  configDate("analysis.reference_epoch"),
			MinExposureLeft: configDate("analysis.min_exposure_left"),
		},
		Filter: schema.FilterPolicy{
			ZeroWidth:    zeroWidth,
			Nudge:        viper.GetFloat64("analysis.nudge"),
			MinReviewers: viper.GetInt("analysis.min_reviewers"),
		},
		Origin: viper.GetString("analysis.origin"),
		Fit: fit.Config{
			Family:        family,
			Quantiles:     quantiles,
			MaxIterations: viper.GetInt("fit.max_iterations"),
			MinCases:      viper.GetInt("analysis.min_cases"),
		},
		Bootstrap: fit.BootstrapConfig{
			Replicates:     viper.GetInt("bootstrap.replicates"),
			Seed:           viper.GetInt64("bootstrap.seed"),
			Workers:        viper.GetInt("bootstrap.workers"),
			MaxDiscardFrac: viper.GetFloat64("bootstrap.max_discard"),
			Width:          viper.GetFloat64("bootstrap.width"),
		},
	}
}

func fatal(err error) {
	sentry.CaptureException(err)
	sentry.Flush(2 * time.Second)
	log.Panic(err)
}

func main() {
	var configFile string

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	cfg := buildConfig()

	sourcePath := viper.GetString("linelist.path")
	records, _, err := linelist.Load(sourcePath)
	if nil != err {
		fatal(err)
	}

	runID := uuid.New().String()
	startedAt := time.Now().UTC()

	results, err := analysis.Run(records, cfg)
	if nil != err {
		fatal(err)
	}

	table := report.BuildTable(runID, startedAt, results)
	published, err := report.LoadComparisons(viper.GetString("compare.path"))
	if nil != err {
		fatal(err)
	}
	report.MergeComparisons(&table, published)

	resultsDir := viper.GetString("results.dir")
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		fatal(err)
	}

	var resultStore store.ResultStore
	if dbPath := viper.GetString("results.db"); dbPath != "" {
		resultStore, err = store.NewSQLiteStore(dbPath)
		if nil != err {
			fatal(err)
		}
		defer resultStore.Close()
	}

	writer := report.Writer{Dir: resultsDir, Store: resultStore}
	info := schema.RunInfo{
		ID:         runID,
		CreatedAt:  startedAt,
		Source:     sourcePath,
		Family:     cfg.Fit.Family.Name(),
		Seed:       cfg.Bootstrap.Seed,
		Replicates: cfg.Bootstrap.Replicates,
	}
	if err := writer.Write(info, table, results); nil != err {
		fatal(err)
	}

	log.WithFields(log.Fields{
		"prefix":   "main",
		"run_id":   runID,
		"rows":     len(table.Rows),
		"duration": time.Since(startedAt).Round(time.Millisecond).String(),
	}).Info("report complete")
}

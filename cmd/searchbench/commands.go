package main

import (
	"github.com/spf13/cobra"
)

var (
	dataURI     string
	configPath  string
	seed        int64
	codecName   string
	logLevel    string
	logFormat   string
	metricsOut  string
	outURI      string
	compression string
	genSeed     int64
	genTargets  int
	force       bool

	rootCmd = &cobra.Command{
		Use:   "searchbench",
		Short: "Benchmark linear search against binary search on fixture datasets",
		Long: `searchbench checks three search primitives for correctness, compares
their latency on each configured dataset, and reports how many searches it
takes for sorting once plus binary search to beat repeated linear scans.

Without a subcommand it behaves like "searchbench run".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBenchmark,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run correctness checks, comparisons and the break-even analysis",
		RunE:  runBenchmark,
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Run only the correctness checks",
		RunE:  runCheck,
	}

	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Write the default fixture set and test cases",
		RunE:  runGenerate,
	}
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")
	pf.StringVar(&logFormat, "log-format", "text", "log format: text or json")
	pf.StringVar(&codecName, "codec", "go-json", "fixture codec: json or go-json")

	for _, cmd := range []*cobra.Command{rootCmd, runCmd} {
		f := cmd.Flags()
		f.StringVar(&dataURI, "data", "data", "fixture source: directory, file://dir, s3://bucket/prefix or minio://host:port/bucket/prefix")
		f.StringVar(&configPath, "config", "", "YAML file overriding the dataset table and batch sizes")
		f.Int64Var(&seed, "seed", 0, "seed for shuffling comparison batches (0 = time based)")
		f.StringVar(&metricsOut, "metrics-out", "", "write Prometheus metrics to this textfile")
	}

	gf := generateCmd.Flags()
	gf.StringVar(&outURI, "out", "data", "fixture destination, same forms as --data")
	gf.StringVar(&compression, "compress", "none", "fixture compression: none, zst, gz or lz4")
	gf.Int64Var(&genSeed, "seed", 42, "generator seed")
	gf.IntVar(&genTargets, "targets", 100, "present and absent targets per dataset")
	gf.BoolVar(&force, "force", false, "overwrite fixtures that already exist at --out")

	rootCmd.AddCommand(runCmd, checkCmd, generateCmd)
}

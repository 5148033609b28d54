package runner

import (
	"os"
	"strconv"

	"github.com/logrusorgru/aurora/v4"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/formatter"
	"github.com/projectdiscovery/gologger/levels"
	envutil "github.com/projectdiscovery/utils/env"
	fileutil "github.com/projectdiscovery/utils/file"

	"github.com/rollcalldev/rollcall/pkg/probe"
	"github.com/rollcalldev/rollcall/pkg/render"
	"github.com/rollcalldev/rollcall/pkg/sweep"
	"github.com/rollcalldev/rollcall/pkg/version"
)

var au *aurora.Aurora

var (
	ConcurrencyEnv = envutil.GetEnvOrDefault("ROLLCALL_CONCURRENCY", "")
	TimeoutEnv     = envutil.GetEnvOrDefault("ROLLCALL_TIMEOUT", "")
	LabelFileEnv   = envutil.GetEnvOrDefault("ROLLCALL_LABEL_FILE", "")
	PrivilegedEnv  = envutil.GetEnvOrDefault("ROLLCALL_PRIVILEGED", "")
)

// Options contains the configuration options for a sweep run.
type Options struct {
	Targets    string `yaml:"targets"`
	Local      bool   `yaml:"local"`
	ConfigFile string `yaml:"-"`

	ProbeKind   string `yaml:"probe"`
	Timeout     int    `yaml:"timeout"`
	Concurrency int    `yaml:"concurrency"`
	Ports       string `yaml:"ports"`
	Privileged  bool   `yaml:"privileged"`
	MaxHosts    int    `yaml:"max-hosts"`

	DNS       bool                `yaml:"dns"`
	Names     goflags.StringSlice `yaml:"names"`
	NoLabels  bool                `yaml:"no-labels"`
	LabelFile string              `yaml:"label-file"`

	ColWidth int  `yaml:"col-width"`
	Version  bool `yaml:"-"`
	Verbose  bool `yaml:"verbose"`
	Silent   bool `yaml:"silent"`
	NoColor  bool `yaml:"no-color"`
}

// ParseOptions parses the command line flags provided by a user
func ParseOptions() *Options {
	options := &Options{}
	flagSet := goflags.NewFlagSet()

	flagSet.SetDescription(`rollcall sweeps networks for reachable hosts and prints who answered, side by side per network.

Usage: rollcall [flags] <cidr>[,<cidr>...]`)

	flagSet.CreateGroup("input", "Input",
		flagSet.BoolVar(&options.Local, "local", false, "sweep the private networks of local interfaces"),
		flagSet.StringVar(&options.ConfigFile, "config", "", "yaml configuration file with flag defaults"),
	)

	flagSet.CreateGroup("probe", "Probe",
		flagSet.StringVar(&options.ProbeKind, "probe", string(probe.ICMP), "probe mechanism (icmp, tcp)"),
		flagSet.IntVar(&options.Timeout, "timeout", envInt(TimeoutEnv, 1), "seconds to wait for each probe reply"),
		flagSet.IntVarP(&options.Concurrency, "concurrency", "c", envInt(ConcurrencyEnv, sweep.DefaultConcurrency), "maximum concurrent probes"),
		flagSet.StringVarP(&options.Ports, "ports", "p", "", "comma separated ports for the tcp probe"),
		flagSet.BoolVar(&options.Privileged, "privileged", envBool(PrivilegedEnv, probe.DefaultPrivileged()), "use raw socket icmp instead of the platform default"),
		flagSet.IntVarP(&options.MaxHosts, "max-hosts", "mh", 0, "skip networks expanding beyond this many hosts"),
	)

	flagSet.CreateGroup("resolve", "Resolve",
		flagSet.BoolVarP(&options.DNS, "dns", "d", false, "resolve addresses via reverse dns"),
		flagSet.StringSliceVarP(&options.Names, "names", "n", nil, "display names matched by position to the networks", goflags.CommaSeparatedStringSliceOptions),
		flagSet.BoolVarP(&options.NoLabels, "no-labels", "nl", false, "disable label file discovery"),
		flagSet.StringVarP(&options.LabelFile, "label-file", "lf", LabelFileEnv, "load labels from this file instead of discovering"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.IntVarP(&options.ColWidth, "col-width", "cw", render.DefaultColumnWidth, "column width of the results table"),
		flagSet.BoolVar(&options.Silent, "silent", false, "show only the results table"),
		flagSet.BoolVarP(&options.NoColor, "no-color", "nc", false, "disable output content coloring (ANSI escape codes)"),
	)

	flagSet.CreateGroup("debug", "Debug",
		flagSet.BoolVar(&options.Version, "version", false, "show version of the project"),
		flagSet.BoolVarP(&options.Verbose, "verbose", "v", false, "show verbose output"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("%s\n", err)
	}

	args := flagSet.CommandLine.Args()
	switch {
	case len(args) == 1:
		options.Targets = args[0]
	case len(args) > 1:
		gologger.Fatal().Msgf("Expected a single comma separated network list, got %d arguments\n", len(args))
	}

	// configure aurora for logging
	au = aurora.New(aurora.WithColors(true))

	options.configureOutput()

	showBanner()

	if options.Version {
		gologger.Info().Msgf("Current Version: %s\n", version.GetVersion())
		os.Exit(0)
	}

	if options.ConfigFile != "" {
		if err := options.loadConfigFrom(options.ConfigFile); err != nil {
			gologger.Warning().Msgf("Could not load config file %s: %s", options.ConfigFile, err)
		}
	}

	if options.Targets == "" && !options.Local {
		gologger.Fatal().Msgf("No networks to scan. Usage: rollcall [flags] <cidr>[,<cidr>...]\n")
	}

	return options
}

// configureOutput configures the output on the screen
func (options *Options) configureOutput() {
	// If the user desires verbose output, show verbose output
	if options.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if options.NoColor {
		gologger.DefaultLogger.SetFormatter(formatter.NewCLI(true))
		au = aurora.New(aurora.WithColors(false))
	}
	if options.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	}
}

func (options *Options) loadConfigFrom(location string) error {
	return fileutil.Unmarshal(fileutil.YAML, []byte(location), options)
}

func envInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envBool(value string, fallback bool) bool {
	if value == "" {
		return fallback
	}
	return value == "1" || value == "true"
}

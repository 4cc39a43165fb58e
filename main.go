// dpll is a minimal SAT solver for CNF problems in the DIMACS format,
// built on the classical DPLL procedure.
package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/solverlab/dpll/config"
	"github.com/solverlab/dpll/dpll"
)

func main() {
	conf := config.New()
	var confPath string
	flag.BoolVar(&conf.Verbose, "verbose", false, "sets verbose mode on")
	flag.BoolVar(&conf.Stats, "stats", false, "displays statistics once solving is done")
	flag.StringVar(&conf.Output, "output", "", "writes the result to the given file rather than stdout")
	flag.StringVar(&confPath, "config", "", "reads settings from the given JSON file")
	flag.Parse()
	if confPath != "" {
		loadConfig(conf, confPath)
	}
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Syntax : %s [options] file.cnf\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	if conf.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	pb, err := parse(flag.Arg(0))
	if err != nil {
		log.Fatalf("could not parse problem: %v", err)
	}
	solve(pb, conf)
}

// loadConfig fills conf from a settings file; flags given explicitly on the
// command line keep precedence over it.
func loadConfig(conf *config.Config, path string) {
	fileConf, err := config.FromFile(path)
	if err != nil {
		log.Fatal(err)
	}
	if !flag.CommandLine.Changed("verbose") {
		conf.Verbose = fileConf.Verbose
	}
	if !flag.CommandLine.Changed("stats") {
		conf.Stats = fileConf.Stats
	}
	if !flag.CommandLine.Changed("output") {
		conf.Output = fileConf.Output
	}
}

func parse(path string) (*dpll.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %v", path, err)
	}
	defer f.Close()
	return dpll.ParseCNF(f)
}

func solve(pb *dpll.Problem, conf *config.Config) {
	log.Debugf("solving %d clauses over %d variables", len(pb.Formula), pb.NbVars)
	start := time.Now()
	status := pb.Solve()
	log.Debugf("%v after %v", status, time.Since(start))
	if conf.Stats {
		log.WithFields(log.Fields{
			"decisions":    pb.Stats.NbDecisions,
			"propagations": pb.Stats.NbPropagations,
			"pureLiterals": pb.Stats.NbPureLits,
			"maxDepth":     pb.Stats.MaxDepth,
		}).Info("solving done")
	}
	out := os.Stdout
	if conf.Output != "" {
		f, err := os.Create(conf.Output)
		if err != nil {
			log.Fatalf("could not create %q: %v", conf.Output, err)
		}
		defer f.Close()
		out = f
	}
	pb.OutputModel(out)
}

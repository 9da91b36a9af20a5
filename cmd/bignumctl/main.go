// Command bignumctl is the CLI entry point for the big-integer
// arithmetic library: one-shot numtheory computations, an interactive
// repl, a terminal or graphical calculator front end, and an HTTP job
// server. Uses the usual Version/Commit/Date ldflags vars, dispatch on a
// positional subcommand, and graceful signal handling around the API
// server.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/lookbusy1344/bignum/bignum"
	"github.com/lookbusy1344/bignum/api"
	"github.com/lookbusy1344/bignum/config"
	"github.com/lookbusy1344/bignum/gui"
	"github.com/lookbusy1344/bignum/numtheory"
	"github.com/lookbusy1344/bignum/repl"
	"github.com/lookbusy1344/bignum/tui"
)

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")
	configPath := flag.String("config", "", "Path to config file (default: platform config dir)")

	flag.Parse()

	if *showVersion {
		fmt.Printf("bignumctl %s\n", Version)
		if Commit != "unknown" {
			fmt.Printf("Commit: %s\n", Commit)
		}
		if Date != "unknown" {
			fmt.Printf("Built: %s\n", Date)
		}
		os.Exit(0)
	}

	if *showHelp || flag.NArg() == 0 {
		printHelp()
		if *showHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	if w, err := cfg.DiagnosticWriter(); err == nil {
		bignum.SetDiagnosticStream(w)
	}
	if cfg.Arithmetic.KaratsubaCutoff > 0 {
		bignum.SetKaratsubaCutoff(cfg.Arithmetic.KaratsubaCutoff)
	}
	if cfg.Trace.OutputFile != "" {
		closeTrace := setupTrace(cfg)
		defer closeTrace()
	}

	args := flag.Args()
	switch args[0] {
	case "collatz":
		runCollatz(args[1:])
	case "lucas-lehmer":
		runLucasLehmer(args[1:])
	case "selfcheck":
		runSelfCheck(args[1:])
	case "repl":
		runRepl(cfg)
	case "tui":
		runTUI(cfg)
	case "gui":
		runGUI()
	case "api-server":
		runAPIServer(args[1:], cfg)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		printHelp()
		os.Exit(1)
	}
}

// setupTrace opens cfg.Trace.OutputFile and installs a bignum trace
// hook that logs limb-growth and Karatsuba-dispatch events to it,
// optionally timestamped per cfg.Trace.IncludeTiming. Returns a func
// that closes the file; best-effort only, since a CLI subcommand that
// exits early (os.Exit) won't run a deferred close.
func setupTrace(cfg *config.Config) func() {
	f, err := os.OpenFile(cfg.Trace.OutputFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open trace file %q: %v\n", cfg.Trace.OutputFile, err)
		return func() {}
	}

	bignum.SetTraceFunc(func(event bignum.TraceEvent, detail string) {
		if cfg.Trace.IncludeTiming {
			fmt.Fprintf(f, "%s %s %s\n", time.Now().Format(time.RFC3339Nano), event, detail)
		} else {
			fmt.Fprintf(f, "%s %s\n", event, detail)
		}
	})

	return func() {
		bignum.SetTraceFunc(nil)
		f.Close()
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

func printHelp() {
	fmt.Println(`bignumctl - arbitrary-precision arithmetic toolkit

Usage:
  bignumctl <command> [arguments]

Commands:
  collatz <seed>          Compute the Collatz trajectory maximum and step count for seed
  lucas-lehmer <p>         Test whether 2^p - 1 is prime
  selfcheck [-rounds=N]    Run randomized arithmetic property checks
  repl                     Start an interactive expression calculator
  tui                      Start the terminal viewer
  gui                      Start the graphical viewer
  api-server [-port=N]     Start the HTTP job server

Flags:
  -version                Show version information
  -help                   Show this help text
  -config <path>           Path to a config file`)
}

func runCollatz(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: bignumctl collatz <seed>")
		os.Exit(1)
	}

	seed := bignum.New()
	if _, ok := new(big.Int).SetString(args[0], 10); !ok {
		fmt.Fprintf(os.Stderr, "%q is not a valid non-negative decimal integer\n", args[0])
		os.Exit(1)
	}
	seed.SetString(args[0])

	steps, max := numtheory.CollatzSteps(seed)
	fmt.Printf("steps: %d\n", steps)
	fmt.Printf("max:   %s\n", max.String())
}

func runLucasLehmer(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: bignumctl lucas-lehmer <p>")
		os.Exit(1)
	}

	p, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%q is not a valid exponent: %v\n", args[0], err)
		os.Exit(1)
	}

	isPrime := numtheory.LucasLehmer(uint32(p))
	if isPrime {
		fmt.Printf("2^%d - 1 is prime\n", p)
	} else {
		fmt.Printf("2^%d - 1 is not prime\n", p)
	}
}

func runSelfCheck(args []string) {
	fs := flag.NewFlagSet("selfcheck", flag.ExitOnError)
	rounds := fs.Int("rounds", 1000, "number of randomized rounds to run")
	seed := fs.Int64("seed", 1, "random seed")
	_ = fs.Parse(args)

	rng := rand.New(rand.NewSource(*seed))
	if err := numtheory.RandomSelfCheck(*rounds, rng); err != nil {
		fmt.Fprintf(os.Stderr, "self-check failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%d rounds passed\n", *rounds)
}

func runRepl(cfg *config.Config) {
	r := repl.New(os.Stdin, os.Stdout, cfg.REPL.Prompt, cfg.REPL.HistorySize)
	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "repl error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg *config.Config) {
	r := repl.New(os.Stdin, os.Stdout, cfg.REPL.Prompt, cfg.REPL.HistorySize)
	t := tui.New(r)
	if err := t.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "tui error: %v\n", err)
		os.Exit(1)
	}
}

func runGUI() {
	gui.New().Run()
}

func runAPIServer(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("api-server", flag.ExitOnError)
	port := fs.Int("port", cfg.Server.Port, "API server port")
	_ = fs.Parse(args)

	server := api.NewServerWithConcurrencyLimit(*port, cfg.Server.MaxConcurrentJobs)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "API server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	fmt.Println("\nshutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error during shutdown: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("API server stopped")
}

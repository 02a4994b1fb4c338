package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	bf "bfsearch"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

var (
	hexInput   string
	extra      uint
	beta       float64
	gamma      float64
	maxSteps   uint64
	demoSteps  uint64
	dbPath     string
	configPath string
	showHelp   bool
	showVer    bool
)

func registerFlags() {
	flag.StringVar(&hexInput, "hex", "", "Target as a hex string, overrides decimal bytes")
	flag.StringVar(&hexInput, "x", "", "Shorthand for --hex")

	flag.UintVar(&extra, "extra", 64, "Extra output bytes to display beyond the target during demo")
	flag.UintVar(&extra, "e", 64, "Shorthand for --extra")

	flag.Float64Var(&beta, "beta", 1.0, "Score weight beta")
	flag.Float64Var(&beta, "b", 1.0, "Shorthand for --beta")

	flag.Float64Var(&gamma, "gamma", 1.0, "Score weight gamma")
	flag.Float64Var(&gamma, "g", 1.0, "Shorthand for --gamma")

	flag.Uint64Var(&maxSteps, "max-steps", 1_000_000, "Per-search-node step cap")
	flag.Uint64Var(&demoSteps, "demo-steps", 1_000_000, "Per-demo step cap")

	flag.StringVar(&dbPath, "db", "", "Optional SQLite path for solution history (supplemental, see SPEC_FULL.md §6.1)")
	flag.StringVar(&configPath, "config", "", "Optional TOML config file; explicit flags still override its values")

	flag.BoolVar(&showHelp, "help", false, "Print usage")
	flag.BoolVar(&showHelp, "h", false, "Shorthand for --help")
	flag.BoolVar(&showVer, "version", false, "Print version")
	flag.BoolVar(&showVer, "V", false, "Shorthand for --version")
}

const version = "bfsearch 0.1.0"

// applyConfigFile decodes a TOML SearchConfig from configPath and layers
// onto it whichever flags the user explicitly set on the command line,
// mirroring the teacher's cmd/addpop and cmd/rungen decode-then-override
// pattern (toml.NewDecoder(file).Decode(&cfg), then flag-set values win).
func applyConfigFile() {
	if configPath == "" {
		return
	}
	f, err := os.Open(configPath)
	if err != nil {
		log.Fatalf("Failed to open config file %q: %v", configPath, err)
	}
	defer f.Close()

	cfg := bf.DefaultSearchConfig()
	if _, err := toml.NewDecoder(f).Decode(cfg); err != nil {
		log.Fatalf("Failed to decode config file %q: %v", configPath, err)
	}

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	if !set["beta"] && !set["b"] {
		beta = cfg.Beta
	}
	if !set["gamma"] && !set["g"] {
		gamma = cfg.Gamma
	}
	if !set["max-steps"] {
		maxSteps = cfg.MaxSteps
	}
	if !set["demo-steps"] {
		demoSteps = cfg.DemoSteps
	}
	if !set["extra"] && !set["e"] {
		extra = cfg.Extra
	}
	if !set["db"] && cfg.DBPath != "" {
		dbPath = cfg.DBPath
	}
}

func main() {
	registerFlags()
	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}
	if showVer {
		fmt.Println(version)
		os.Exit(0)
	}

	applyConfigFile()

	target, err := resolveTarget(hexInput, flag.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(target) == 0 {
		fmt.Fprintln(os.Stderr, "Target sequence must not be empty. Provide decimal bytes (0..=255), e.g.:")
		fmt.Fprintln(os.Stderr, "  bfsearch 0 1 2 3")
		os.Exit(2)
	}

	if beta <= 0 || gamma <= 0 {
		fmt.Fprintln(os.Stderr, "--beta and --gamma must be strictly positive")
		os.Exit(2)
	}

	run(target)
}

// resolveTarget implements spec.md §6's input preference: --hex overrides
// decimal positional bytes. Hex parsing mirrors the original
// implementation's parse_hex_bytes: filter to hex digits, require an even
// count.
func resolveTarget(hex string, positional []string) ([]byte, error) {
	if hex != "" {
		return parseHexBytes(hex)
	}
	return parseDecimalBytes(positional)
}

func parseHexBytes(s string) ([]byte, error) {
	var filtered []byte
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			filtered = append(filtered, byte(r))
		}
	}
	if len(filtered)%2 != 0 {
		return nil, fmt.Errorf("Invalid hex input: hex string must have an even number of hex digits")
	}
	out := make([]byte, 0, len(filtered)/2)
	for i := 0; i < len(filtered); i += 2 {
		v, err := strconv.ParseUint(string(filtered[i:i+2]), 16, 8)
		if err != nil {
			return nil, fmt.Errorf("Invalid hex input: %w", err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func parseDecimalBytes(args []string) ([]byte, error) {
	var tokens []string
	for _, a := range args {
		for _, piece := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
			if piece != "" {
				tokens = append(tokens, piece)
			}
		}
	}
	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("Invalid target byte %q: %w", tok, err)
		}
		out = append(out, byte(v))
	}
	return out, nil
}

func run(target []byte) {
	fmt.Printf("Target length: %d bytes\n", len(target))
	fmt.Printf("Scoring: score = correct - %.3f * min_len - %.3f * log2(steps + 1)\n", beta, gamma)
	fmt.Println("Press Ctrl+C to stop at any time.")

	out := presentationWriter()

	driver := bf.NewDriver(target, bf.ScoreParams{Beta: beta, Gamma: gamma}, maxSteps)
	driver.Diagnose = bf.LogPrune
	driver.Metrics = &bf.FrontierMetrics{}

	var persist *bf.Persistence
	var sessionID uint
	if dbPath != "" {
		p, err := bf.NewPersistence(&bf.PersistenceConfig{Path: dbPath})
		if err != nil {
			log.Fatalf("Failed to open solution database: %v", err)
		}
		defer p.Shutdown()
		persist = p

		prior, err := p.PreviousPrograms(string(target))
		if err != nil {
			log.Fatalf("Failed to load prior solutions: %v", err)
		}
		if len(prior) > 0 {
			fmt.Printf("Seeding dedup set with %d previously found solution(s).\n", len(prior))
			driver.Seed(prior)
		}

		session := &bf.SearchSession{
			Target:    string(target),
			Beta:      beta,
			Gamma:     gamma,
			MaxSteps:  maxSteps,
			StartedAt: time.Now(),
		}
		id, err := p.StartSession(session)
		if err != nil {
			log.Fatalf("Failed to record search session: %v", err)
		}
		sessionID = id
	}

	term := liner.NewLiner()
	defer term.Close()
	term.SetCtrlCAborts(true)

	showLimit := len(target) + int(extra)

	for {
		sol, ok := driver.Next()
		if !ok {
			fmt.Println("Search space exhausted without finding a solution.")
			return
		}

		demoOutput, demoStepCount, halted := bf.RunConcrete(sol.Root, showLimit, demoSteps)
		printSolution(out, sol, showLimit, demoOutput, demoStepCount, halted)

		if persist != nil {
			rec := &bf.SolutionRecord{
				SessionID:  sessionID,
				Num:        sol.Num,
				Program:    sol.Program,
				Instrs:     sol.Root.InstructionCount(),
				DemoOutput: decString(demoOutput),
				DemoSteps:  demoStepCount,
				Halted:     halted,
				EmittedAt:  time.Now(),
			}
			if err := persist.RecordSolution(rec); err != nil {
				log.Printf("Failed to record solution: %v", err)
			}
		}

		fmt.Println()
		line, err := term.Prompt("Press Enter to search for the next different solution (or 'q' + Enter to quit): ")
		if err != nil || strings.EqualFold(strings.TrimSpace(line), "q") {
			return
		}
	}
}

// printSolution renders one solution in spec.md §6's exact format. When
// stdout is a terminal, the header and DEC line go through go-colorable
// with ANSI highlighting; otherwise plain text, so piped output stays
// parseable.
func printSolution(w *bufio.Writer, sol bf.Solution, showLimit int, demoOutput []byte, demoSteps uint64, halted bool) {
	highlight := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	fmt.Fprintln(w)
	writeHeader(w, fmt.Sprintf("Solution #%d found:", sol.Num), highlight)
	fmt.Fprintf(w, "Program length (inst): %d\n", sol.Root.InstructionCount())
	fmt.Fprintln(w, "Program (Brainfuck):")
	fmt.Fprintln(w, sol.Program)

	shown := len(demoOutput)
	if shown > showLimit {
		shown = showLimit
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Output (first %d bytes shown):\n", shown)
	writeHeader(w, "DEC : "+decString(demoOutput[:shown]), highlight)
	fmt.Fprintf(w, "Interpreter steps during demo: %d (halted: %v)\n", demoSteps, halted)
	w.Flush()
}

func writeHeader(w *bufio.Writer, s string, highlight bool) {
	if !highlight {
		fmt.Fprintln(w, s)
		return
	}
	fmt.Fprintf(w, "\x1b[1;36m%s\x1b[0m\n", s)
}

func presentationWriter() *bufio.Writer {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return bufio.NewWriter(colorable.NewColorableStdout())
	}
	return bufio.NewWriter(os.Stdout)
}

func decString(bs []byte) string {
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, " ")
}

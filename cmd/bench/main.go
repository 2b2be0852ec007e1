package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/i5heu/GoContainerBench/internal/testbench"
	"github.com/i5heu/GoContainerBench/pkg/config"
)

// BenchmarkResult holds results for one test run.
type BenchmarkResult struct {
	Implementation string  `json:"implementation"`
	Kind           string  `json:"kind"`
	Size           int     `json:"size"`   // operations per round
	Rounds         int64   `json:"rounds"` // completed workload rounds
	NumOps         int64   `json:"num_ops"`
	TestDuration   string  `json:"test_duration"`  // e.g. "1s"
	ActualElapsed  string  `json:"actual_elapsed"` // measured time
	NsPerOp        float64 `json:"ns_per_op"`
	Baseline       bool    `json:"baseline,omitempty"`
	Timestamp      int64   `json:"timestamp"`
	GoVersion      string  `json:"go_version"`
}

// SystemInfo holds system information.
type SystemInfo struct {
	NumCPU      int     `json:"num_cpu"`
	CPUModel    string  `json:"cpu_model,omitempty"`
	CPUSpeedMHz float64 `json:"cpu_speed_mhz,omitempty"`
	GOARCH      string  `json:"go_arch"`
	TotalMemory uint64  `json:"total_memory_bytes,omitempty"`
}

// FullReport represents a complete test session.
type FullReport struct {
	SessionTime string            `json:"session_time"`
	SystemInfo  SystemInfo        `json:"system_info"`
	Benchmarks  []BenchmarkResult `json:"benchmarks"`
}

// loadSessions reads all sessions stored in jsonFile.
func loadSessions(jsonFile string) ([]FullReport, error) {
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("reading JSON file %q: %w", jsonFile, err)
	}
	var sessions []FullReport
	if err := json.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("unmarshalling JSON: %w", err)
	}
	return sessions, nil
}

// writeMarkdownTable prints the last session as a Markdown table, one row per
// implementation and size, holding the median ns/op over all iterations.
func writeMarkdownTable(w io.Writer, sessions []FullReport) error {
	if len(sessions) == 0 {
		return errors.New("no sessions found in JSON")
	}
	lastSession := sessions[len(sessions)-1]

	implMetaMap := make(map[string]Implementation)
	for _, impl := range getImplementations() {
		implMetaMap[impl.name] = impl
	}

	type rowKey struct {
		kind, impl string
		size       int
	}
	samples := make(map[rowKey][]float64)
	for _, bench := range lastSession.Benchmarks {
		k := rowKey{bench.Kind, bench.Implementation, bench.Size}
		samples[k] = append(samples[k], bench.NsPerOp)
	}

	keys := make([]rowKey, 0, len(samples))
	for k := range samples {
		keys = append(keys, k)
	}
	// Sort by kind, then size, then fastest first.
	medians := make(map[rowKey]float64, len(samples))
	for k, vals := range samples {
		sort.Float64s(vals)
		medians[k] = median(vals)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].kind != keys[j].kind {
			return keys[i].kind < keys[j].kind
		}
		if keys[i].size != keys[j].size {
			return keys[i].size < keys[j].size
		}
		return medians[keys[i]] < medians[keys[j]]
	})

	fmt.Fprintln(w, "## Last Session Benchmark Summary")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Kind  | Implementation           | Package         | Features                    |     Size |    ns/op |")
	fmt.Fprintln(w, "|-------|--------------------------|-----------------|-----------------------------|----------|----------|")
	for _, k := range keys {
		meta := implMetaMap[k.impl]
		fmt.Fprintf(w, "| %-5s | %-24s | %-15s | %-27s | %8d | %8.1f |\n",
			k.kind, k.impl, meta.pkgName, strings.Join(meta.features, ", "), k.size, medians[k])
	}
	return nil
}

func median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// parseSizes parses a comma separated list such as "1000,10000".
func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid size %q: %w", part, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

// filterImplementations keeps implementations of the given kind; "" keeps all.
func filterImplementations(impls []Implementation, kind string) []Implementation {
	if kind == "" {
		return impls
	}
	var out []Implementation
	for _, impl := range impls {
		if impl.kind == kind {
			out = append(out, impl)
		}
	}
	return out
}

// runSession executes every implementation for every size and iteration.
// onResult is called after each run, e.g. to advance a progress bar.
func runSession(impls []Implementation, cfg config.Config, out io.Writer, onResult func()) ([]BenchmarkResult, error) {
	// Key permutations are built up front so no timed round pays for them.
	for _, size := range cfg.Sizes {
		keysFor(size)
	}

	var results []BenchmarkResult
	for _, size := range cfg.Sizes {
		fmt.Fprintf(out, "  [Size: %d]\n", size)
		for iteration := 1; iteration <= cfg.Iterations; iteration++ {
			fmt.Fprintf(out, "    iteration %d/%d\n", iteration, cfg.Iterations)
			for _, impl := range impls {
				runtime.GC()

				res, err := testbench.RunTimedTest(impl.workload, size, cfg.Duration)
				if err != nil {
					return results, fmt.Errorf("%s (size %d): %w", impl.name, size, err)
				}

				fmt.Fprintf(out, "    %-24s => rounds=%d, ops=%d, %.1f ns/op, took=%v\n",
					impl.name, res.Rounds, res.Ops, res.NsPerOp(), res.Elapsed)

				results = append(results, BenchmarkResult{
					Implementation: impl.name,
					Kind:           impl.kind,
					Size:           size,
					Rounds:         res.Rounds,
					NumOps:         res.Ops,
					TestDuration:   cfg.Duration.String(),
					ActualElapsed:  res.Elapsed.String(),
					NsPerOp:        res.NsPerOp(),
					Baseline:       impl.baseline,
					Timestamp:      time.Now().Unix(),
					GoVersion:      runtime.Version(),
				})
				if onResult != nil {
					onResult()
				}
			}
		}
	}
	return results, nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("benchmarking"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionClearOnFinish(),
	)
}

// stopProgress completes the bar after a successful run and freezes it in
// place after a failed one. A nil bar is ignored.
func stopProgress(bar *progressbar.ProgressBar, failed bool) error {
	if bar == nil {
		return nil
	}
	if failed {
		return bar.Exit()
	}
	return bar.Finish()
}

// appendSession appends session to the JSON array stored in filename.
func appendSession(filename string, session FullReport) error {
	var previous []FullReport
	if data, err := os.ReadFile(filename); err == nil && len(data) > 0 {
		if err := json.Unmarshal(data, &previous); err != nil {
			return fmt.Errorf("existing %s is not a session list: %w", filename, err)
		}
	}
	data, err := json.MarshalIndent(append(previous, session), "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling JSON: %w", err)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("writing JSON file: %w", err)
	}
	return nil
}

func main() {
	// Flags.
	configFile := flag.String("config", "", "Path to a YAML benchmark configuration")
	testIterations := flag.Int("iter", 0, "Number of test iterations per size (overrides config)")
	sizesFlag := flag.String("sizes", "", "Comma separated workload sizes, e.g. 1000,10000 (overrides config)")
	durationFlag := flag.Duration("duration", 0, "Duration of a single timed run (overrides config)")
	kindFlag := flag.String("kind", "", "Only benchmark one container kind: queue, list or tree")
	jsonExport := flag.Bool("json", false, "Append results as JSON to -jsonfile")
	markdownTable := flag.Bool("markdown-table", false, "Output markdown table from -jsonfile and exit")
	jsonFile := flag.String("jsonfile", "bench-results.json", "Path to JSON results file")
	progressFlag := flag.Bool("progress", false, "Display a progress bar with ETA")
	flag.Parse()

	if *markdownTable {
		sessions, err := loadSessions(*jsonFile)
		if err == nil {
			err = writeMarkdownTable(os.Stdout, sessions)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		if cfg, err = config.Load(*configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *testIterations > 0 {
		cfg.Iterations = *testIterations
	}
	if *sizesFlag != "" {
		sizes, err := parseSizes(*sizesFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg.Sizes = sizes
	}
	if *durationFlag > 0 {
		cfg.Duration = *durationFlag
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	impls := filterImplementations(getImplementations(), *kindFlag)
	if len(impls) == 0 {
		fmt.Fprintf(os.Stderr, "Error: unknown container kind %q\n", *kindFlag)
		os.Exit(1)
	}

	var bar *progressbar.ProgressBar
	var onResult func()
	if *progressFlag {
		bar = newProgressBar(os.Stderr, len(cfg.Sizes)*cfg.Iterations*len(impls))
		onResult = func() { _ = bar.Add(1) }
	}
	fail := func(err error) {
		_ = stopProgress(bar, true)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sysInfo := gatherSystemInfo()
	fmt.Printf("\n=============================\n")
	fmt.Printf("GOMAXPROCS = %d, %s\n", runtime.GOMAXPROCS(0), sysInfo.CPUModel)
	fmt.Printf("=============================\n")

	results, err := runSession(impls, cfg, os.Stdout, onResult)
	if err != nil {
		fail(err)
	}
	_ = stopProgress(bar, false)

	if *jsonExport {
		fr := FullReport{
			SessionTime: time.Now().Format(time.RFC3339),
			SystemInfo:  sysInfo,
			Benchmarks:  results,
		}
		if err := appendSession(*jsonFile, fr); err != nil {
			fail(err)
		}
		fmt.Printf("\nWrote results to %s\n", *jsonFile)
	}
}

// gatherSystemInfo collects basic CPU and memory details.
func gatherSystemInfo() SystemInfo {
	var cpuModel string
	var cpuSpeed float64
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		cpuModel = infos[0].ModelName
		cpuSpeed = infos[0].Mhz
	}

	var totalMemory uint64
	if vm, err := mem.VirtualMemory(); err == nil {
		totalMemory = vm.Total
	}

	return SystemInfo{
		NumCPU:      runtime.NumCPU(),
		CPUModel:    cpuModel,
		CPUSpeedMHz: cpuSpeed,
		GOARCH:      runtime.GOARCH,
		TotalMemory: totalMemory,
	}
}

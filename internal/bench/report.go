// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"

	"github.com/sugawarayuuta/sonnet"
)

// Session is one invocation of the harness.
type Session struct {
	SessionTime string     `json:"session_time"`
	SystemInfo  SystemInfo `json:"system_info"`
	Results     []Result   `json:"results"`
}

// Summary aggregates the iterations of one (target, producers) pair.
type Summary struct {
	Target    string
	Producers int
	Runs      int
	Median    float64 // msgs/sec
	Min       float64
	Max       float64
}

// LoadReport reads the sessions stored at path. A missing file is an
// empty report.
func LoadReport(path string) ([]Session, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var sessions []Session
	if err := sonnet.Unmarshal(data, &sessions); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}
	return sessions, nil
}

// AppendReport appends sessions to the JSON array stored at path, creating
// the file if needed.
func AppendReport(path string, sessions ...Session) error {
	previous, err := LoadReport(path)
	if err != nil {
		return err
	}
	data, err := sonnet.Marshal(append(previous, sessions...))
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Summarize groups results by target and producer count, sorted by median
// throughput descending.
func Summarize(results []Result) []Summary {
	type key struct {
		target    string
		producers int
	}
	groups := make(map[key][]float64)
	var order []key
	for _, r := range results {
		k := key{r.Target, r.Producers}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r.Throughput)
	}

	out := make([]Summary, 0, len(order))
	for _, k := range order {
		vals := groups[k]
		slices.Sort(vals)
		out = append(out, Summary{
			Target:    k.target,
			Producers: k.producers,
			Runs:      len(vals),
			Median:    median(vals),
			Min:       vals[0],
			Max:       vals[len(vals)-1],
		})
	}
	slices.SortStableFunc(out, func(a, b Summary) int {
		return cmp.Compare(b.Median, a.Median)
	})
	return out
}

func median(sorted []float64) float64 {
	n := len(sorted)
	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return 0.5 * (sorted[mid-1] + sorted[mid])
}

// Markdown writes a summary table of s to w.
func Markdown(w io.Writer, s Session) error {
	var err error
	printf := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("## Session %s\n\n", s.SessionTime)
	printf("%s/%s, %d CPUs (GOMAXPROCS %d)", s.SystemInfo.GOOS, s.SystemInfo.GOARCH, s.SystemInfo.NumCPU, s.SystemInfo.GOMAXPROCS)
	if s.SystemInfo.CPUModel != "" {
		printf(", %s", s.SystemInfo.CPUModel)
	}
	printf("\n\n")
	printf("| Target       | Producers | Runs | Median (msgs/sec) | Min (msgs/sec) | Max (msgs/sec) |\n")
	printf("|--------------|-----------|------|-------------------|----------------|----------------|\n")
	for _, sum := range Summarize(s.Results) {
		printf("| %-12s | %9d | %4d | %17.0f | %14.0f | %14.0f |\n",
			sum.Target, sum.Producers, sum.Runs, sum.Median, sum.Min, sum.Max)
	}
	return err
}

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ivlev/deck2video/internal/timeline"
)

const benchmarkLog = "benchmark.log"

// SceneTable renders per-scene counters of a run.
func SceneTable(stats []timeline.SceneStats) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Scene", "Slides", "Added", "Removed", "Cleared"})
	var slides, added int
	for i, st := range stats {
		tw.AppendRow(table.Row{i + 1, st.Scene, st.Slides, st.Added, st.Removed, st.Cleared})
		slides += st.Slides
		added += st.Added
	}
	tw.AppendFooter(table.Row{"", "Total", slides, added, "", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})
	return tw.Render()
}

func (p *Project) report(res *Result) {
	t := res.Timings
	fps := float64(len(res.Timeline.Slides)) / t.Total.Seconds()

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle("PERFORMANCE REPORT")
	tw.AppendRows([]table.Row{
		{"Build", p.Config.BuildVersion},
		{"Total Time", seconds(t.Total)},
		{"Compose", seconds(t.Compose)},
		{"Render + Encode", seconds(t.Render)},
		{"Concatenation", seconds(t.Concat)},
		{"Slides/s", fmt.Sprintf("%.2f", fps)},
	})
	fmt.Fprintln(p.Out, SceneTable(res.Stats))
	fmt.Fprintln(p.Out, tw.Render())

	logEntry := fmt.Sprintf("[%s] Build: %s | Deck: %s | Slides: %d | Total: %.2fs | Render: %.2fs | Concat: %.2fs | Slides/s: %.2f\n",
		time.Now().Format("2006-01-02 15:04:05"),
		p.Config.BuildVersion,
		filepath.Base(res.TimelinePath),
		len(res.Timeline.Slides),
		t.Total.Seconds(),
		t.Render.Seconds(),
		t.Concat.Seconds(),
		fps,
	)
	f, err := os.OpenFile(benchmarkLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(p.Out, "[!] Не удалось записать %s: %v\n", benchmarkLog, err)
		return
	}
	defer f.Close()
	f.WriteString(logEntry)
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}

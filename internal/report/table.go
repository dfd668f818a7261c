package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jar0582/procsched/internal/sched"
)

// ganttSlot is one cell of the console Gantt strip.
type ganttSlot struct {
	label       string
	start, stop int64
}

// WriteTable writes the console report of every result to w.
func WriteTable(w io.Writer, results ...sched.Result) {
	for _, r := range results {
		summary := sched.Summarize(r)

		outputTitle(w, r.Heading())
		outputGantt(w, r.Segments)
		outputSchedule(w, r, summary)
		outputTimes(w, r, summary)
	}
}

// titleWidth is the narrowest rule drawn around a heading.
const titleWidth = 40

func outputTitle(w io.Writer, heading string) {
	width := max(titleWidth, len(heading)+4)
	rule := strings.Repeat("=", width)
	indent := strings.Repeat(" ", (width-len(heading))/2)

	_, _ = fmt.Fprintf(w, "%s\n%s%s\n%s\n", rule, indent, heading, rule)
}

// slots turns segments into Gantt cells, filling gaps with idle cells.
func slots(segments []sched.Segment) []ganttSlot {
	var (
		out  []ganttSlot
		last int64
	)
	for _, s := range segments {
		if s.Start > last {
			out = append(out, ganttSlot{label: "idle", start: last, stop: s.Start})
		}
		out = append(out, ganttSlot{label: s.ID, start: s.Start, stop: s.End})
		last = s.End
	}
	return out
}

func outputGantt(w io.Writer, segments []sched.Segment) {
	gantt := slots(segments)

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := gantt[i].label
		padding := strings.Repeat(" ", max(0, 8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, r sched.Result, s sched.Summary) {
	rows := make([][]string, len(r.Entries))
	for i, e := range r.Entries {
		rows[i] = []string{
			e.ID,
			fmt.Sprint(e.Priority),
			fmt.Sprint(e.Burst),
			fmt.Sprint(e.Arrival),
			fmt.Sprint(e.Start),
			fmt.Sprint(e.Waiting),
			fmt.Sprint(e.Turnaround),
			fmt.Sprint(e.Response),
			fmt.Sprint(e.Finish),
		}
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", s.AvgWaiting),
		fmt.Sprintf("Average\n%.2f", s.AvgTurnaround),
		fmt.Sprintf("Average\n%.2f", s.AvgResponse),
		fmt.Sprintf("Throughput\n%.2f/t", s.Throughput)})
	table.Render()
}

// outputTimes writes the waiting (TE) and turnaround (TS) table in input
// order, closed by an average row.
func outputTimes(w io.Writer, r sched.Result, s sched.Summary) {
	_, _ = fmt.Fprintln(w, "Waiting and turnaround times")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "TE", "TS"})
	for _, e := range r.Entries {
		table.Append([]string{e.ID, fmt.Sprint(e.Waiting), fmt.Sprint(e.Turnaround)})
	}
	table.Append([]string{"Average", fmt.Sprintf("%.2f", s.AvgWaiting), fmt.Sprintf("%.2f", s.AvgTurnaround)})
	table.Render()

	_, _ = fmt.Fprintf(w, "CPU utilisation %.1f%%, idle %d, makespan %d\n\n", s.Utilization*100, s.IdleTime, s.Makespan)
}

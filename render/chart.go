// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/axiomic/primes"
)

// DefaultChartWidth is the bar length of the fullest bucket.
const DefaultChartWidth = 40

// ChartOption customizes BarChart.
type ChartOption func(*chartOptions)

type chartOptions struct {
	width int
	bar   lipgloss.Style
}

// WithWidth sets the length of the longest bar. Panics if w < 1.
func WithWidth(w int) ChartOption {
	if w < 1 {
		panic("render: WithWidth(w<1)")
	}

	return func(o *chartOptions) { o.width = w }
}

// WithStyle sets the lipgloss style applied to every bar.
func WithStyle(s lipgloss.Style) ChartOption {
	return func(o *chartOptions) { o.bar = s }
}

// BarChart draws one horizontal bar per bucket, scaled to the largest count.
// Non-empty buckets always get at least one cell.
func BarChart(buckets []primes.Bucket, opts ...ChartOption) string {
	o := chartOptions{
		width: DefaultChartWidth,
		bar:   lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if len(buckets) == 0 {
		return "no data"
	}

	top, labelW := 0, 0
	labels := make([]string, len(buckets))
	for i, bk := range buckets {
		if bk.Count > top {
			top = bk.Count
		}
		labels[i] = fmt.Sprintf("[%d, %d)", bk.Lo, bk.Hi)
		if w := lipgloss.Width(labels[i]); w > labelW {
			labelW = w
		}
	}

	lines := make([]string, len(buckets))
	for i, bk := range buckets {
		n := 0
		if top > 0 {
			n = bk.Count * o.width / top
		}
		if n == 0 && bk.Count > 0 {
			n = 1
		}
		bar := o.bar.Render(strings.Repeat("█", n))
		lines[i] = fmt.Sprintf("%-*s │%s %d", labelW, labels[i], bar, bk.Count)
	}

	return strings.Join(lines, "\n")
}

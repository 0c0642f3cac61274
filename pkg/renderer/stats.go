package renderer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Scene         string
	Width         int
	Height        int
	Pixels        int64 // Pixels written to the frame buffer
	PathsPerPixel int   // 4 strata × samples per stratum
	Paths         int64 // Camera paths traced across all workers
	Workers       int
	DepthLimit    int
	Background    string
	Primitives    int
	BVHNodes      int
	BVHDepth      int
	RenderTime    time.Duration
	SaveTime      time.Duration
	OutputPath    string
}

// PathsPerSecond returns the camera path throughput of the render
func (s RenderStats) PathsPerSecond() float64 {
	if s.RenderTime <= 0 {
		return 0
	}
	return float64(s.Paths) / s.RenderTime.Seconds()
}

// Table formats the statistics as a two-column text table
func (s RenderStats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Statistic", "Value"})

	table.Append([]string{"Scene", s.Scene})
	table.Append([]string{"Resolution", fmt.Sprintf("%dx%d", s.Width, s.Height)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", s.Pixels)})
	table.Append([]string{"Paths per pixel", fmt.Sprintf("%d", s.PathsPerPixel)})
	table.Append([]string{"Camera paths", fmt.Sprintf("%d", s.Paths)})
	table.Append([]string{"Paths/s", fmt.Sprintf("%.0f", s.PathsPerSecond())})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	table.Append([]string{"Depth limit", fmt.Sprintf("%d", s.DepthLimit)})
	table.Append([]string{"Background", s.Background})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", s.Primitives)})
	table.Append([]string{"BVH nodes / depth", fmt.Sprintf("%d / %d", s.BVHNodes, s.BVHDepth)})
	table.Append([]string{"Save time", s.SaveTime.String()})
	table.SetFooter([]string{"Render time", s.RenderTime.String()})

	table.Render()
	return buf.String()
}

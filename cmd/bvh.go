package cmd

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/df07/orbitrace/pkg/core"
	"github.com/df07/orbitrace/pkg/geometry"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Build the BVH for a scene and display its shape.
func DescribeBVH(ctx *cli.Context) error {
	setupLogging(ctx)

	params := paramsFromFlags(ctx)
	sc, err := loadScene(ctx, &params)
	if err != nil {
		return err
	}

	start := time.Now()
	root, err := core.BuildBVHWithConfig(sc.Objects, core.BVHConfig{NarrowTraversal: params.NarrowTraversal})
	if err != nil {
		return err
	}
	buildTime := time.Since(start)

	displayBVHStats(sc.Name, countPrimitives(sc.Objects), core.CollectBVHStats(root), root.BoundingBox(), buildTime)
	return nil
}

func primitiveKind(obj core.Hittable) string {
	switch obj.(type) {
	case *geometry.Sphere:
		return "sphere"
	case *geometry.Triangle:
		return "triangle"
	case *core.BVHNode:
		return "bvh"
	default:
		return fmt.Sprintf("%T", obj)
	}
}

func displayBVHStats(name string, counts map[string]int, stats core.BVHStats, box core.AABB, buildTime time.Duration) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Metric", "Value"})

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		table.Append([]string{kind + "s", fmt.Sprintf("%d", counts[kind])})
	}

	table.Append([]string{"total nodes", fmt.Sprintf("%d", stats.TotalNodes)})
	table.Append([]string{"internal nodes", fmt.Sprintf("%d", stats.InternalNodes)})
	table.Append([]string{"leaves", fmt.Sprintf("%d", stats.LeafNodes)})
	table.Append([]string{"max depth", fmt.Sprintf("%d", stats.MaxDepth)})
	table.Append([]string{"avg leaf depth", fmt.Sprintf("%.2f", stats.AvgDepth)})
	table.Append([]string{"bounds min", fmt.Sprintf("%.3f %.3f %.3f", box.Min.X, box.Min.Y, box.Min.Z)})
	table.Append([]string{"bounds max", fmt.Sprintf("%.3f %.3f %.3f", box.Max.X, box.Max.Y, box.Max.Z)})
	table.SetFooter([]string{"BUILD TIME", buildTime.String()})

	table.Render()
	logger.Noticef("bvh statistics for scene %q\n%s", name, buf.String())
}

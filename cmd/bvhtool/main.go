// Command bvhtool builds a synthetic scene, exercises both BVH builders
// and both query engines against it, and prints a tabular summary. It is
// a demo/inspection tool, not part of the core library.
package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"

	"github.com/jazwinn/go-bvh/bvh"
	"github.com/jazwinn/go-bvh/debug"
	"github.com/jazwinn/go-bvh/internal/stats"
	"github.com/jazwinn/go-bvh/log"
	"github.com/jazwinn/go-bvh/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

var logger = log.New("bvhtool")

// sceneObject is the minimal bvh.Handle implementation the demo builds
// its synthetic scene out of.
type sceneObject struct {
	bv   types.AABB
	id   uint32
	hook bvh.Hook
}

func (o *sceneObject) AABB() types.AABB { return o.bv }
func (o *sceneObject) ID() uint32       { return o.id }
func (o *sceneObject) Hook() *bvh.Hook  { return &o.hook }

func randomScene(n int, seed int64) []bvh.Handle {
	rng := rand.New(rand.NewSource(seed))
	objects := make([]bvh.Handle, n)
	for i := 0; i < n; i++ {
		cx, cy, cz := rng.Float32()*200-100, rng.Float32()*200-100, rng.Float32()*200-100
		hx, hy, hz := rng.Float32()*2+0.1, rng.Float32()*2+0.1, rng.Float32()*2+0.1
		objects[i] = &sceneObject{
			id: uint32(i),
			bv: types.NewAABB(
				types.XYZ(cx-hx, cy-hy, cz-hz),
				types.XYZ(cx+hx, cy+hy, cz+hz),
			),
		}
	}
	return objects
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Build a synthetic scene with both builders and print a tree-shape
// comparison table.
func buildScene(ctx *cli.Context) error {
	setupLogging(ctx)

	count := ctx.Int("count")
	objects := randomScene(count, 42)

	topDown := bvh.New()
	topDown.BuildTopDown(append([]bvh.Handle(nil), objects...), bvh.DefaultBuildConfig())

	incremental := bvh.New()
	incremental.InsertAll(objects, bvh.DefaultBuildConfig())

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Builder", "Depth", "Size", "Objects"})
	table.Append([]string{"BuildTopDown", fmt.Sprint(topDown.Depth()), fmt.Sprint(topDown.Size()), fmt.Sprint(topDown.ObjectCount())})
	table.Append([]string{"Insert", fmt.Sprint(incremental.Depth()), fmt.Sprint(incremental.Size()), fmt.Sprint(incremental.ObjectCount())})
	table.Render()

	logger.Noticef("built scene with %d objects\n", count)
	fmt.Fprint(os.Stdout, buf.String())

	if ctx.Bool("dump-graph") {
		debug.DumpGraph(os.Stdout, topDown)
	}

	return nil
}

// Build a synthetic scene and run a frustum query and a ray query against
// it, reporting the AABB-test counts each one cost.
func queryScene(ctx *cli.Context) error {
	setupLogging(ctx)

	count := ctx.Int("count")
	objects := randomScene(count, 7)

	tree := bvh.New()
	tree.InsertAll(objects, bvh.DefaultBuildConfig())

	frustum := types.FrustumFromMatrix(types.Ident4())

	stats.Reset()
	visible := tree.Query(frustum)
	logger.Debugf("frustum query: %d visible objects, %d AABB tests\n", len(visible), stats.FrustumVsAABB())

	ray := types.NewRay(types.XYZ(-500, 0, 0), types.XYZ(1, 0, 0))
	var hits []uint32
	var tested []*bvh.Node

	stats.Reset()
	closest, ok := tree.QueryDebug(ray, true, &hits, &tested)
	if !ok {
		logger.Notice("ray query: no hit")
		return nil
	}
	logger.Noticef("ray query: closest hit is object %d (%d nodes tested, %d AABB tests)\n", closest, len(tested), stats.RayVsAABB())

	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "bvhtool"
	app.Usage = "build and query a bounding volume hierarchy over a synthetic scene"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v", Usage: "enable verbose logging"},
		cli.BoolFlag{Name: "vv", Usage: "enable even more verbose logging"},
	}
	app.Commands = []cli.Command{
		{
			Name:  "build",
			Usage: "build a synthetic scene with both builders and compare tree shapes",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "count", Value: 1000, Usage: "number of objects in the synthetic scene"},
				cli.BoolFlag{Name: "dump-graph", Usage: "also print a DOT graph of the top-down tree"},
			},
			Action: buildScene,
		},
		{
			Name:  "query",
			Usage: "build a synthetic scene and run a frustum and a ray query against it",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "count", Value: 1000, Usage: "number of objects in the synthetic scene"},
			},
			Action: queryScene,
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

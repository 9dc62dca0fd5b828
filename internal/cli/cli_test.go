package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphkit/converters"
	"github.com/katalvlaran/graphkit/core"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

// ringDoc is the 8-node network whose MST weighs 14.
func ringDoc() *converters.Document {
	doc := &converters.Document{Name: "ring", Nodes: 8}
	for _, e := range [][3]int{
		{0, 1, 4}, {0, 2, 3}, {1, 2, 1}, {1, 3, 2}, {2, 3, 4}, {2, 4, 5}, {3, 4, 1},
		{3, 5, 6}, {4, 5, 2}, {4, 6, 3}, {5, 6, 4}, {5, 7, 5}, {6, 7, 2},
	} {
		doc.Edges = append(doc.Edges, converters.EdgeDoc{From: e[0], To: e[1], Weight: float64(e[2])})
	}

	return doc
}

// courierDoc is the 7-node delivery network; distances from 0 are [0 10 15 15 22 21 25].
func courierDoc() *converters.Document {
	doc := &converters.Document{Name: "courier", Nodes: 7}
	for _, e := range [][3]int{
		{0, 1, 10}, {0, 2, 15}, {0, 3, 20}, {1, 3, 5}, {1, 4, 12}, {2, 3, 8},
		{2, 5, 7}, {3, 5, 6}, {3, 6, 10}, {4, 6, 9}, {5, 6, 4},
	} {
		doc.Edges = append(doc.Edges, converters.EdgeDoc{From: e[0], To: e[1], Weight: float64(e[2])})
	}

	return doc
}

func saveDoc(t *testing.T, name string, doc *converters.Document) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, converters.Save(path, doc))

	return path
}

type result struct {
	stdout string
	stderr string
	err    error
}

// execute runs the command tree with an isolated config directory.
func execute(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out, errb bytes.Buffer
	c := New(&errb, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&errb)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())

	return result{stdout: out.String(), stderr: errb.String(), err: err}
}

func TestMST(t *testing.T) {
	path := saveDoc(t, "ring.yaml", ringDoc())

	for _, method := range []string{"prim", "kruskal"} {
		t.Run(method, func(t *testing.T) {
			r := execute(t, "mst", path, "--method", method)
			require.NoError(t, r.err)
			assert.Contains(t, r.stdout, "Minimum spanning tree · "+method+" · ring")
			assert.Regexp(t, `edges\s+7`, r.stdout)
			assert.Regexp(t, `total\s+14`, r.stdout)
		})
	}

	r := execute(t, "mst", path, "-m", "both", "--start", "5")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "prim and kruskal agree on total 14")
}

func TestMST_Narrate(t *testing.T) {
	path := saveDoc(t, "ring.toml", ringDoc())

	r := execute(t, "mst", path, "--narrate")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "decision=accepted")
	assert.Contains(t, r.stderr, "method=kruskal")
	assert.Contains(t, r.stderr, "run=")
	assert.Equal(t, 7, strings.Count(r.stderr, "decision=accepted"))
}

func TestMST_Errors(t *testing.T) {
	split := &converters.Document{Nodes: 4, Edges: []converters.EdgeDoc{{From: 0, To: 1, Weight: 1}, {From: 2, To: 3, Weight: 1}}}
	path := saveDoc(t, "split.hcl", split)

	r := execute(t, "mst", path)
	assert.ErrorIs(t, r.err, prim_kruskal.ErrDisconnected)

	r = execute(t, "mst", path, "--method", "boruvka")
	assert.ErrorIs(t, r.err, prim_kruskal.ErrUnknownMethod)

	r = execute(t, "mst", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, r.err, os.ErrNotExist)

	r = execute(t, "mst", saveDoc(t, "ring.yaml", ringDoc()), "--method", "prim", "--start", "8")
	assert.ErrorIs(t, r.err, core.ErrNodeOutOfRange)

	r = execute(t, "mst")
	assert.Error(t, r.err, "file argument is required")
}

func TestConfigFile(t *testing.T) {
	path := saveDoc(t, "ring.yaml", ringDoc())
	cfg := filepath.Join(t.TempDir(), "graphkit.toml")
	require.NoError(t, os.WriteFile(cfg, []byte("method = \"prim\"\nnarrate = true\n"), 0o644))

	r := execute(t, "--config", cfg, "mst", path)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "· prim ·")
	assert.Contains(t, r.stderr, "method=prim")

	// flags win over the file
	r = execute(t, "--config", cfg, "mst", path, "--method", "kruskal", "--narrate=false")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "· kruskal ·")
	assert.NotContains(t, r.stderr, "decision=")

	require.NoError(t, os.WriteFile(cfg, []byte("workers = 0\n"), 0o644))
	r = execute(t, "--config", cfg, "mst", path)
	assert.Error(t, r.err)
}

func TestPath(t *testing.T) {
	path := saveDoc(t, "courier.yaml", courierDoc())

	r := execute(t, "path", path, "--source", "0", "--to", "6")
	require.NoError(t, r.err)
	assert.Regexp(t, `route\s+0 → 1 → 3 → 6`, r.stdout)
	assert.Regexp(t, `distance\s+25`, r.stdout)
	assert.Regexp(t, `hops\s+3`, r.stdout)

	r = execute(t, "path", path)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "farthest 6 at 25")
	assert.Contains(t, r.stdout, "22  via 0 → 1 → 4")
	assert.NotContains(t, r.stdout, "unreachable")

	r = execute(t, "path", path, "--narrate")
	require.NoError(t, r.err)
	assert.Equal(t, 7, strings.Count(r.stderr, "decision=finalized"))
}

func TestPath_Unreachable(t *testing.T) {
	doc := &converters.Document{Nodes: 3, Edges: []converters.EdgeDoc{{From: 0, To: 1, Weight: 2}}}
	path := saveDoc(t, "pair.yaml", doc)

	r := execute(t, "path", path)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "1 node(s) unreachable from 0")

	r = execute(t, "path", path, "--to", "2")
	assert.ErrorIs(t, r.err, dijkstra.ErrUnreachable)

	r = execute(t, "path", path, "--source", "3")
	assert.ErrorIs(t, r.err, core.ErrNodeOutOfRange)
}

func TestNaNWeightRefused(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nan.yaml")
	src := "nodes: 3\nedges:\n  - {from: 0, to: 1, weight: .nan}\n  - {from: 1, to: 2, weight: 1}\n  - {from: 0, to: 2, weight: 5}\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	for _, cmd := range []string{"path", "mst", "apsp"} {
		r := execute(t, cmd, path)
		assert.ErrorIs(t, r.err, converters.ErrInvalidDocument, cmd)
		assert.Empty(t, r.stdout, cmd)
	}
}

func TestAPSP(t *testing.T) {
	oneWay := true
	doc := &converters.Document{Nodes: 3, Edges: []converters.EdgeDoc{
		{From: 0, To: 1, Weight: 5, Directed: &oneWay},
		{From: 1, To: 2, Weight: 2},
	}}
	path := saveDoc(t, "apsp.yaml", doc)

	for _, workers := range []string{"1", "4"} {
		r := execute(t, "apsp", path, "--workers", workers)
		require.NoError(t, r.err)
		assert.Contains(t, r.stdout, "  [0, 5, 7]\n  [∞, 0, 2]\n  [∞, 2, 0]\n")
	}

	r := execute(t, "apsp", path, "--workers", "0")
	assert.Error(t, r.err)
}

func TestInspect(t *testing.T) {
	r := execute(t, "inspect", saveDoc(t, "ring.yaml", ringDoc()))
	require.NoError(t, r.err)
	assert.Regexp(t, `nodes\s+8`, r.stdout)
	assert.Regexp(t, `edges\s+13`, r.stdout)
	assert.Regexp(t, `components\s+1`, r.stdout)
	assert.Regexp(t, `cycle\s+0 → 1 → 2`, r.stdout)
	assert.Contains(t, r.stdout, "ready for mst")
	assert.Contains(t, r.stdout, "8 of 8 nodes from 0 in 4 hop(s)")

	split := &converters.Document{Nodes: 3, Edges: []converters.EdgeDoc{{From: 0, To: 1, Weight: 1}}}
	r = execute(t, "inspect", saveDoc(t, "split.yaml", split))
	require.NoError(t, r.err)
	assert.Regexp(t, `components\s+2`, r.stdout)
	assert.Regexp(t, `cycle\s+none`, r.stdout)
	assert.Contains(t, r.stdout, "#2: [2]")
	assert.Contains(t, r.stdout, "2 of 3 nodes from 0 in 1 hop(s)")
	assert.NotContains(t, r.stdout, "order")

	r = execute(t, "inspect", saveDoc(t, "split.yaml", split), "--source", "3")
	assert.ErrorIs(t, r.err, core.ErrNodeOutOfRange)
}

func TestInspect_DirectedAcyclic(t *testing.T) {
	dag := &converters.Document{Name: "dag", Nodes: 4, Directed: true, Edges: []converters.EdgeDoc{
		{From: 0, To: 1, Weight: 1}, {From: 0, To: 2, Weight: 1}, {From: 1, To: 3, Weight: 1}, {From: 2, To: 3, Weight: 1},
	}}
	path := saveDoc(t, "dag.yaml", dag)

	r := execute(t, "inspect", path)
	require.NoError(t, r.err)
	assert.Regexp(t, `order\s+0 → 2 → 1 → 3`, r.stdout)
	assert.Regexp(t, `cycle\s+none`, r.stdout)
	assert.Contains(t, r.stdout, "4 of 4 nodes from 0 in 2 hop(s)")

	// from the sink nothing else is reachable
	r = execute(t, "inspect", path, "-s", "3")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "1 of 4 nodes from 3 in 0 hop(s)")

	dag.Edges = append(dag.Edges, converters.EdgeDoc{From: 3, To: 0, Weight: 1})
	r = execute(t, "inspect", saveDoc(t, "loop.yaml", dag))
	require.NoError(t, r.err)
	assert.NotContains(t, r.stdout, "order")
	assert.NotRegexp(t, `cycle\s+none`, r.stdout)
}

func TestGenerate(t *testing.T) {
	r := execute(t, "generate", "--nodes", "6", "--extra", "3", "--seed", "7", "--max-weight", "9")
	require.NoError(t, r.err)

	doc, err := converters.Decode([]byte(r.stdout), converters.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "random", doc.Name)
	assert.Equal(t, 6, doc.Nodes)
	assert.Len(t, doc.Edges, 8)
	for _, e := range doc.Edges {
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, 9.0)
	}

	again := execute(t, "generate", "--nodes", "6", "--extra", "3", "--seed", "7", "--max-weight", "9")
	require.NoError(t, again.err)
	assert.Equal(t, r.stdout, again.stdout, "same seed, same document")

	out := filepath.Join(t.TempDir(), "gen.toml")
	r = execute(t, "generate", "-n", "10", "-o", out)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "generated 10 nodes, 13 edges")
	saved, err := converters.Load(out)
	require.NoError(t, err)
	assert.Equal(t, 10, saved.Nodes)

	r = execute(t, "generate", "--nodes", "4", "--extra", "9")
	assert.Error(t, r.err)
}

func TestRender_DOT(t *testing.T) {
	ring := saveDoc(t, "ring.yaml", ringDoc())
	out := filepath.Join(t.TempDir(), "ring.dot")

	r := execute(t, "render", ring, "-o", out, "--highlight", "mst")
	require.NoError(t, r.err)
	dot, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 7, strings.Count(string(dot), "penwidth=3"))
	assert.Contains(t, r.stdout, "7 highlighted edges")

	courier := saveDoc(t, "courier.yaml", courierDoc())
	r = execute(t, "render", courier, "-o", out, "--highlight", "path", "--source", "0")
	require.NoError(t, r.err)
	dot, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, 6, strings.Count(string(dot), "penwidth=3"))
	assert.Contains(t, string(dot), `3 -- 6 [label="10", penwidth=3`)

	r = execute(t, "render", ring, "-o", out)
	require.NoError(t, r.err)
	dot, err = os.ReadFile(out)
	require.NoError(t, err)
	assert.NotContains(t, string(dot), "penwidth=3")
}

func TestRender_SVG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "ring.svg")
	r := execute(t, "render", saveDoc(t, "ring.yaml", ringDoc()), "-o", out, "--highlight", "mst")
	require.NoError(t, r.err)

	svg, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")
}

func TestRender_Errors(t *testing.T) {
	ring := saveDoc(t, "ring.yaml", ringDoc())

	r := execute(t, "render", ring, "-o", filepath.Join(t.TempDir(), "ring.png"))
	assert.ErrorIs(t, r.err, errBadOutput)

	r = execute(t, "render", ring, "-o", filepath.Join(t.TempDir(), "ring.dot"), "--highlight", "maze")
	assert.Error(t, r.err)

	r = execute(t, "render", ring)
	assert.Error(t, r.err, "--output is required")
}

func TestVersion(t *testing.T) {
	r := execute(t, "--version")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "graphkit version dev")
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestVerbose(t *testing.T) {
	path := saveDoc(t, "ring.yaml", ringDoc())

	r := execute(t, "-v", "inspect", path)
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "loaded graph")

	r = execute(t, "inspect", path)
	require.NoError(t, r.err)
	assert.NotContains(t, r.stderr, "loaded graph")
}

package dot

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/goccy/go-graphviz"
)

// location of the dot executable for converting from .dot to images;
// usually at /usr/bin/dot. Resolved lazily.
var dotExe string

const tmplCluster = `{{define "cluster" -}}
	{{printf "subgraph %q {" .}}
		{{printf "%s" .Attrs.Lines}}
		{{range .Nodes}}
		{{template "node" .}}
		{{- end}}
	{{println "}" }}
{{- end}}`

const tmplEdge = `{{define "edge" -}}
	{{printf "%q -> %q [ %s ]" .From .To .Attrs}}
{{- end}}`

const tmplNode = `{{define "node" -}}
	{{printf "%q [ %s ]" .ID .Attrs}}
{{- end}}`

const tmplGraph = `digraph {{or .Name "FixpointGraph"}} {
	label="{{.Title}}";
	labeljust="l";
	fontname="Arial";
	fontsize="14";
	rankdir="{{or .Options.rankdir "TB"}}";

	node [shape="box" style="rounded" fontname="Verdana" penwidth="1.0" margin="0.05,0.0"];

	{{- range .Clusters}}
	{{template "cluster" .}}
	{{- end}}

	{{range .Nodes}}
	{{template "node" .}}
	{{- end}}

	{{- range .Edges}}
	{{template "edge" .}}
	{{- end}}
}
`

// DotCluster groups nodes in a rendered subgraph.
type DotCluster struct {
	ID    string
	Nodes []*DotNode
	Attrs DotAttrs
}

func NewDotCluster(id string) *DotCluster {
	return &DotCluster{
		ID:    id,
		Attrs: make(DotAttrs),
	}
}

func (c *DotCluster) String() string {
	return fmt.Sprintf("cluster_%s", c.ID)
}

// DotNode is a rendered graph node.
type DotNode struct {
	ID    string
	Attrs DotAttrs
}

func (n *DotNode) String() string {
	return n.ID
}

// DotEdge is a rendered directed edge.
type DotEdge struct {
	From  *DotNode
	To    *DotNode
	Attrs DotAttrs
}

// DotAttrs are rendered dot attributes.
type DotAttrs map[string]string

func (p DotAttrs) List() []string {
	l := []string{}
	for _, k := range p.sortedKeys() {
		l = append(l, fmt.Sprintf("%s=%q;", k, p[k]))
	}
	return l
}

func (p DotAttrs) sortedKeys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p DotAttrs) String() string {
	return strings.Join(p.List(), " ")
}

func (p DotAttrs) Lines() string {
	return strings.Join(p.List(), "\n")
}

// DotGraph is a renderable graph model.
type DotGraph struct {
	Name     string
	Title    string
	Attrs    DotAttrs
	Clusters []*DotCluster
	Nodes    []*DotNode
	Edges    []*DotEdge
	Options  map[string]string
}

// WriteDot renders the graph in dot syntax.
func (g *DotGraph) WriteDot(w io.Writer) error {
	t := template.New("dot")
	// Make missing map keys render as the zero value
	t.Option("missingkey=zero")
	for _, s := range []string{tmplCluster, tmplNode, tmplEdge, tmplGraph} {
		if _, err := t.Parse(s); err != nil {
			return err
		}
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, g); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderImage renders the graph to an image file of the given format,
// returning the file path. The dot executable is preferred; when it is not
// installed the embedded graphviz library is used instead.
func (g *DotGraph) RenderImage(outfname, format string) (string, error) {
	var buf bytes.Buffer
	if err := g.WriteDot(&buf); err != nil {
		return "", err
	}
	return DotToImage(outfname, format, buf.Bytes())
}

// DotToImage converts a graph in dot syntax to an image file, returning
// its path.
func DotToImage(outfname, format string, dot []byte) (string, error) {
	if dotExe == "" {
		if exe, err := exec.LookPath("dot"); err == nil {
			dotExe = exe
		}
	}
	if dotExe != "" {
		return dotToImageExe(outfname, format, dot)
	}

	g := graphviz.New()
	graph, err := graphviz.ParseBytes(dot)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := graph.Close(); err != nil {
			log.Fatal(err)
		}
		g.Close()
	}()
	img := imagePath(outfname, format)
	if err := g.RenderFilename(graph, graphviz.Format(format), img); err != nil {
		return "", err
	}
	return img, nil
}

// dotToImageExe generates an image using the dot utility.
func dotToImageExe(outfname, format string, dot []byte) (string, error) {
	img := imagePath(outfname, format)
	cmd := exec.Command(dotExe, fmt.Sprintf("-T%s", format), "-o", img)
	cmd.Stdin = bytes.NewReader(dot)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("command '%v': %v\n%v", cmd, err, stderr.String())
	}
	return img, nil
}

func imagePath(outfname, format string) string {
	if outfname == "" {
		return filepath.Join(os.TempDir(), fmt.Sprintf("ibex_export.%s", format))
	}
	return fmt.Sprintf("%s.%s", outfname, format)
}

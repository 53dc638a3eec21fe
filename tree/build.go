package tree

import (
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/gogpu/indiepixel"
	"github.com/gogpu/indiepixel/colors"
	"github.com/gogpu/indiepixel/fonts"
)

// Build constructs the widget tree the node describes. A nil env is
// NewEnv(). Errors name the path of the offending node, such as
// "root.child.row.children[1].text.color".
func (n *Node) Build(env *Env) (indiepixel.Widget, error) {
	if env == nil {
		env = NewEnv()
	}
	b := builder{env: env}
	return b.node(n, "")
}

type builder struct {
	env *Env
}

// errorf wraps err with the node path.
func errorf(path string, err error) error {
	return fmt.Errorf("tree: %s: %w", path, err)
}

func join(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}

func (b *builder) node(n *Node, path string) (indiepixel.Widget, error) {
	kinds := n.kinds()
	switch len(kinds) {
	case 0:
		if path == "" {
			path = "(top)"
		}
		return nil, errorf(path, ErrUnknownWidget)
	case 1:
	default:
		return nil, errorf(path, fmt.Errorf("%w: %s", ErrAmbiguousNode, strings.Join(kinds, ", ")))
	}
	path = join(path, kinds[0])

	switch {
	case n.Root != nil:
		return b.root(n.Root, path)
	case n.Box != nil:
		return b.box(n.Box, path)
	case n.Row != nil:
		children, err := b.children(n.Row.Children, path)
		if err != nil {
			return nil, err
		}
		return indiepixel.NewRow(children, indiepixel.WithExpand(n.Row.Expand)), nil
	case n.Column != nil:
		children, err := b.children(n.Column.Children, path)
		if err != nil {
			return nil, err
		}
		return indiepixel.NewColumn(children, indiepixel.WithExpand(n.Column.Expand)), nil
	case n.Stack != nil:
		children, err := b.children(n.Stack.Children, path)
		if err != nil {
			return nil, err
		}
		return indiepixel.NewStack(children), nil
	case n.Animation != nil:
		if len(n.Animation.Children) == 0 {
			return nil, errorf(path, ErrEmptyAnimation)
		}
		children, err := b.children(n.Animation.Children, path)
		if err != nil {
			return nil, err
		}
		return indiepixel.NewAnimation(children, indiepixel.WithLabel(n.Animation.Label)), nil
	case n.Rect != nil:
		return b.rect(n.Rect, path)
	case n.Text != nil:
		return b.text(n.Text, path)
	case n.WrappedText != nil:
		return b.wrappedText(n.WrappedText, path)
	case n.Image != nil:
		return b.image(n.Image, path)
	case n.Circle != nil:
		return b.circle(n.Circle, path)
	default:
		return b.pieChart(n.PieChart, path)
	}
}

func (b *builder) children(nodes []Node, path string) ([]indiepixel.Widget, error) {
	out := make([]indiepixel.Widget, len(nodes))
	for i := range nodes {
		w, err := b.node(&nodes[i], fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out[i] = w
	}
	return out, nil
}

func (b *builder) root(r *RootNode, path string) (indiepixel.Widget, error) {
	child, err := b.node(&r.Child, join(path, "child"))
	if err != nil {
		return nil, err
	}
	opts := []indiepixel.Option{indiepixel.WithShowFullApplication(r.ShowFullApplication)}
	if r.Width > 0 || r.Height > 0 {
		opts = append(opts, indiepixel.WithCanvasSize(
			orDefault(r.Width, indiepixel.DefaultCanvasWidth),
			orDefault(r.Height, indiepixel.DefaultCanvasHeight)))
	}
	if r.MaxAge > 0 {
		opts = append(opts, indiepixel.WithMaxAge(time.Duration(r.MaxAge)*time.Second))
	}
	if r.Delay > 0 {
		opts = append(opts, indiepixel.WithDelay(time.Duration(r.Delay)*time.Millisecond))
	}
	return indiepixel.NewRoot(child, opts...), nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func (b *builder) box(x *BoxNode, path string) (indiepixel.Widget, error) {
	bg, err := parseColor(x.Background, join(path, "background"))
	if err != nil {
		return nil, err
	}
	child, err := b.node(&x.Child, join(path, "child"))
	if err != nil {
		return nil, err
	}
	return indiepixel.NewBox(child,
		indiepixel.WithPadding(x.Padding),
		indiepixel.WithBackground(bg),
		indiepixel.WithExpand(x.Expand),
	), nil
}

func (b *builder) rect(r *RectNode, path string) (indiepixel.Widget, error) {
	c, err := parseColor(r.Color, join(path, "color"))
	if err != nil {
		return nil, err
	}
	opts := []indiepixel.Option{indiepixel.WithColor(c)}
	if r.Width != nil {
		opts = append(opts, indiepixel.WithWidth(*r.Width))
	}
	if r.Height != nil {
		opts = append(opts, indiepixel.WithHeight(*r.Height))
	}
	return indiepixel.NewRect(opts...), nil
}

// textOptions collects the options shared by both text widgets.
func textOptions(color, font, path string) ([]indiepixel.Option, error) {
	var opts []indiepixel.Option
	if color != "" {
		c, err := parseColor(color, join(path, "color"))
		if err != nil {
			return nil, err
		}
		opts = append(opts, indiepixel.WithColor(c))
	}
	if font != "" {
		opts = append(opts, indiepixel.WithFont(font))
	}
	return opts, nil
}

func (b *builder) text(t *TextNode, path string) (indiepixel.Widget, error) {
	opts, err := textOptions(t.Color, t.Font, path)
	if err != nil {
		return nil, err
	}
	content, err := b.expand(t.Content, join(path, "content"))
	if err != nil {
		return nil, err
	}
	w, err := indiepixel.NewText(b.env.fonts, content, opts...)
	if err != nil {
		return nil, errorf(join(path, "font"), err)
	}
	return w, nil
}

func (b *builder) wrappedText(t *WrappedTextNode, path string) (indiepixel.Widget, error) {
	opts, err := textOptions(t.Color, t.Font, path)
	if err != nil {
		return nil, err
	}
	align, err := fonts.ParseAlign(t.Align)
	if err != nil {
		return nil, errorf(join(path, "align"), err)
	}
	opts = append(opts, indiepixel.WithAlign(align), indiepixel.WithLineSpacing(t.LineSpacing))
	if t.Width != nil {
		opts = append(opts, indiepixel.WithWidth(*t.Width))
	}
	content, err := b.expand(t.Content, join(path, "content"))
	if err != nil {
		return nil, err
	}
	w, err := indiepixel.NewWrappedText(b.env.fonts, content, opts...)
	if err != nil {
		return nil, errorf(join(path, "font"), err)
	}
	return w, nil
}

func (b *builder) image(m *ImageNode, path string) (indiepixel.Widget, error) {
	if m.Src == "" {
		return nil, errorf(join(path, "src"), ErrMissingField)
	}
	src := m.Src
	if !filepath.IsAbs(src) && b.env.baseDir != "" {
		src = filepath.Join(b.env.baseDir, src)
	}
	if b.env.assets == nil {
		w, err := indiepixel.NewImage(src)
		if err != nil {
			return nil, errorf(join(path, "src"), err)
		}
		return w, nil
	}
	asset, err := b.env.assets.Open(src)
	if err != nil {
		return nil, errorf(join(path, "src"), err)
	}
	return indiepixel.NewImageFromAsset(asset), nil
}

func (b *builder) circle(c *CircleNode, path string) (indiepixel.Widget, error) {
	fill, err := parseColor(c.Color, join(path, "color"))
	if err != nil {
		return nil, err
	}
	opts := []indiepixel.Option{indiepixel.WithColor(fill)}
	if c.Diameter != nil {
		opts = append(opts, indiepixel.WithDiameter(*c.Diameter))
	}
	var child indiepixel.Widget
	if c.Child != nil {
		child, err = b.node(c.Child, join(path, "child"))
		if err != nil {
			return nil, err
		}
	}
	return indiepixel.NewCircle(child, opts...), nil
}

func (b *builder) pieChart(p *PieChartNode, path string) (indiepixel.Widget, error) {
	cs := make([]colors.Color, len(p.Colors))
	for i, s := range p.Colors {
		c, err := parseColor(s, fmt.Sprintf("%s.colors[%d]", path, i))
		if err != nil {
			return nil, err
		}
		cs[i] = c
	}
	var opts []indiepixel.Option
	if p.Diameter != nil {
		opts = append(opts, indiepixel.WithDiameter(*p.Diameter))
	}
	w, err := indiepixel.NewPieChart(cs, p.Weights, opts...)
	if err != nil {
		return nil, errorf(join(path, "weights"), err)
	}
	return w, nil
}

func parseColor(s, path string) (colors.Color, error) {
	c, err := colors.Parse(s)
	if err != nil {
		return colors.None, errorf(path, err)
	}
	return c, nil
}

// expand evaluates content as a template when it contains an action.
func (b *builder) expand(content, path string) (string, error) {
	if !strings.Contains(content, "{{") {
		return content, nil
	}
	tmpl, err := template.New(path).Funcs(template.FuncMap{
		"now": b.env.Now,
	}).Parse(content)
	if err != nil {
		return "", errorf(path, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, nil); err != nil {
		return "", errorf(path, err)
	}
	return sb.String(), nil
}

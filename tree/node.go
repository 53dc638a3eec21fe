// Package tree reads widget trees from YAML, TOML or JSON definition files.
//
// A definition is a nested Node. Each node holds exactly one widget, keyed
// by its kind:
//
//	root:
//	  delay: 500
//	  child:
//	    column:
//	      children:
//	        - text: {content: "{{ now.Format \"15:04\" }}", color: orange}
//	        - pie_chart: {colors: [red, blue], weights: [2, 1]}
//
// Build turns a Node into an indiepixel.Widget. Text content containing
// "{{" is a text/template with a now function, evaluated at build time.
package tree

// Node is one widget of a definition. Exactly one field must be set.
type Node struct {
	Root        *RootNode        `yaml:"root,omitempty" toml:"root,omitempty" json:"root,omitempty"`
	Box         *BoxNode         `yaml:"box,omitempty" toml:"box,omitempty" json:"box,omitempty"`
	Row         *RowNode         `yaml:"row,omitempty" toml:"row,omitempty" json:"row,omitempty"`
	Column      *ColumnNode      `yaml:"column,omitempty" toml:"column,omitempty" json:"column,omitempty"`
	Stack       *StackNode       `yaml:"stack,omitempty" toml:"stack,omitempty" json:"stack,omitempty"`
	Animation   *AnimationNode   `yaml:"animation,omitempty" toml:"animation,omitempty" json:"animation,omitempty"`
	Rect        *RectNode        `yaml:"rect,omitempty" toml:"rect,omitempty" json:"rect,omitempty"`
	Text        *TextNode        `yaml:"text,omitempty" toml:"text,omitempty" json:"text,omitempty"`
	WrappedText *WrappedTextNode `yaml:"wrapped_text,omitempty" toml:"wrapped_text,omitempty" json:"wrapped_text,omitempty"`
	Image       *ImageNode       `yaml:"image,omitempty" toml:"image,omitempty" json:"image,omitempty"`
	Circle      *CircleNode      `yaml:"circle,omitempty" toml:"circle,omitempty" json:"circle,omitempty"`
	PieChart    *PieChartNode    `yaml:"pie_chart,omitempty" toml:"pie_chart,omitempty" json:"pie_chart,omitempty"`
}

// RootNode anchors a tree to a canvas. MaxAge is in seconds and Delay in
// milliseconds; zero selects the defaults.
type RootNode struct {
	Child               Node `yaml:"child" toml:"child" json:"child"`
	Width               int  `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height              int  `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	MaxAge              int  `yaml:"max_age,omitempty" toml:"max_age,omitempty" json:"max_age,omitempty"`
	Delay               int  `yaml:"delay,omitempty" toml:"delay,omitempty" json:"delay,omitempty"`
	ShowFullApplication bool `yaml:"show_full_application,omitempty" toml:"show_full_application,omitempty" json:"show_full_application,omitempty"`
}

// BoxNode is a box around one child.
type BoxNode struct {
	Child      Node   `yaml:"child" toml:"child" json:"child"`
	Padding    int    `yaml:"padding,omitempty" toml:"padding,omitempty" json:"padding,omitempty"`
	Background string `yaml:"background,omitempty" toml:"background,omitempty" json:"background,omitempty"`
	Expand     bool   `yaml:"expand,omitempty" toml:"expand,omitempty" json:"expand,omitempty"`
}

// RowNode lays children out horizontally.
type RowNode struct {
	Children []Node `yaml:"children" toml:"children" json:"children"`
	Expand   bool   `yaml:"expand,omitempty" toml:"expand,omitempty" json:"expand,omitempty"`
}

// ColumnNode lays children out vertically.
type ColumnNode struct {
	Children []Node `yaml:"children" toml:"children" json:"children"`
	Expand   bool   `yaml:"expand,omitempty" toml:"expand,omitempty" json:"expand,omitempty"`
}

// StackNode overlays children.
type StackNode struct {
	Children []Node `yaml:"children" toml:"children" json:"children"`
}

// AnimationNode plays children one after another.
type AnimationNode struct {
	Children []Node `yaml:"children" toml:"children" json:"children"`
	Label    string `yaml:"label,omitempty" toml:"label,omitempty" json:"label,omitempty"`
}

// RectNode is a solid rectangle.
type RectNode struct {
	Width  *int   `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	Height *int   `yaml:"height,omitempty" toml:"height,omitempty" json:"height,omitempty"`
	Color  string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
}

// TextNode is a single line of text.
type TextNode struct {
	Content string `yaml:"content" toml:"content" json:"content"`
	Color   string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Font    string `yaml:"font,omitempty" toml:"font,omitempty" json:"font,omitempty"`
}

// WrappedTextNode is text wrapped to a width.
type WrappedTextNode struct {
	Content     string `yaml:"content" toml:"content" json:"content"`
	Width       *int   `yaml:"width,omitempty" toml:"width,omitempty" json:"width,omitempty"`
	LineSpacing int    `yaml:"line_spacing,omitempty" toml:"line_spacing,omitempty" json:"line_spacing,omitempty"`
	Align       string `yaml:"align,omitempty" toml:"align,omitempty" json:"align,omitempty"`
	Color       string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Font        string `yaml:"font,omitempty" toml:"font,omitempty" json:"font,omitempty"`
}

// ImageNode is an image file. Relative paths resolve against the
// environment's base directory.
type ImageNode struct {
	Src string `yaml:"src" toml:"src" json:"src"`
}

// CircleNode is a filled circle with an optional child.
type CircleNode struct {
	Diameter *int   `yaml:"diameter,omitempty" toml:"diameter,omitempty" json:"diameter,omitempty"`
	Color    string `yaml:"color,omitempty" toml:"color,omitempty" json:"color,omitempty"`
	Child    *Node  `yaml:"child,omitempty" toml:"child,omitempty" json:"child,omitempty"`
}

// PieChartNode is a pie chart.
type PieChartNode struct {
	Diameter *int      `yaml:"diameter,omitempty" toml:"diameter,omitempty" json:"diameter,omitempty"`
	Colors   []string  `yaml:"colors" toml:"colors" json:"colors"`
	Weights  []float64 `yaml:"weights" toml:"weights" json:"weights"`
}

// Kind returns the key of the widget the node holds, such as "row", or ""
// when the node holds none. With more than one widget set it returns the
// first in declaration order.
func (n *Node) Kind() string {
	kinds := n.kinds()
	if len(kinds) == 0 {
		return ""
	}
	return kinds[0]
}

func (n *Node) kinds() []string {
	var out []string
	add := func(set bool, kind string) {
		if set {
			out = append(out, kind)
		}
	}
	add(n.Root != nil, "root")
	add(n.Box != nil, "box")
	add(n.Row != nil, "row")
	add(n.Column != nil, "column")
	add(n.Stack != nil, "stack")
	add(n.Animation != nil, "animation")
	add(n.Rect != nil, "rect")
	add(n.Text != nil, "text")
	add(n.WrappedText != nil, "wrapped_text")
	add(n.Image != nil, "image")
	add(n.Circle != nil, "circle")
	add(n.PieChart != nil, "pie_chart")
	return out
}

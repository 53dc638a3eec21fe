// Package indiepixel renders small bitmap displays, such as 64×32 LED
// matrices, from a tree of layout widgets.
//
// # Overview
//
// A widget tree is built from leaves (Rect, Text, WrappedText, Image, Circle,
// PieChart) and containers (Box, Row, Column, Stack, Animation, Root). Every
// widget answers three questions: how big it is inside given bounds, how many
// animation frames it produces, and how to paint a given frame.
//
// # Quick Start
//
//	root := indiepixel.NewRoot(
//	    indiepixel.NewBox(
//	        indiepixel.NewRow([]indiepixel.Widget{
//	            indiepixel.NewRect(indiepixel.WithColor(colors.MustParse("red"))),
//	            indiepixel.NewCircle(nil, indiepixel.WithColor(colors.MustParse("#0f0"))),
//	        }),
//	        indiepixel.WithPadding(2),
//	    ),
//	)
//
//	frames := indiepixel.Render(root)
//	err := encode.GIF(w, frames, 100*time.Millisecond)
//
// # Layout
//
// Layout is a single top-down pass. Containers ask children for their size
// against the bounds they were given and paint them at derived bounds. Sizes
// are recomputed on every call; nothing is cached between frames.
//
// Box, Row and Column add one pixel after each child. Surface rectangles are
// inclusive of both corners, so a Rect of width 10 covers 11 columns and the
// extra pixel keeps adjacent siblings from overlapping.
//
// # Animation
//
// An Animation plays its children one after another: its frame count is the
// sum of theirs, and global frame n is painted by the child owning n with the
// frame number local to that child. Stack, Row and Column play children side
// by side; a child with fewer frames holds its last frame.
//
// # Related Packages
//
//   - colors: CSS-style color parsing
//   - fonts: font registry, measurement and drawing
//   - canvas: the raster surface and decoded image assets
//   - encode: GIF and PNG output
//   - tree: widget trees from YAML, TOML or JSON files
//   - server: HTTP preview server with hot reload
package indiepixel

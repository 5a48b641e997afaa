// Package vtcore provides a headless VT220/VT525-class terminal core.
//
// This package emulates a terminal without owning any display, windowing,
// or font-rendering surface, making it suitable for:
//   - Terminal multiplexers and session recorders
//   - Headless automation and screen scraping of CLI tools
//   - Server-side rendering of terminal output (to HTML, images, or a
//     custom GPU surface owned by the caller)
//   - Regression testing of programs that emit ANSI escape sequences
//
// # Quick Start
//
//	term := vtcore.New()
//	term.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(term.String()) // "Hello World!"
//
// # Architecture
//
// Byte decoding and function dispatch (C0/ESC/CSI/DCS/OSC/SOS-PM-APC) are
// delegated to [github.com/danielgatis/go-ansicode], a deterministic
// byte-at-a-time state machine. Terminal implements [ansicode.Handler] and
// owns everything downstream of dispatch:
//
//   - [Terminal]: the façade — owns both buffers, the cursor, modes, and
//     drives the ansicode decoder
//   - [Buffer]: the screen grid, a ring of rows; the primary buffer hands
//     lines that scroll off the top to its [ScrollbackProvider]. Resize
//     truncates or pads rows and does not reflow them
//     ([Buffer.ReflowOnResize] returns a reflowed copy instead)
//   - [Cell]: a single grid cell — rune, colors, attributes, optional
//     image fragment
//   - [Viewport]: the scroll offset into history that a renderer is
//     currently looking at
//   - [RenderBuffer] / [RenderDoubleBuffer]: a flat, renderer-agnostic
//     snapshot of visible cells plus the double-buffered swap protocol
//     a pull-based renderer polls
//   - [PTY]: the external-process collaborator (C1), backed by
//     [github.com/creack/pty] in production and fakeable in tests
//
// # Dual Buffers
//
//   - Primary buffer: normal mode, with scrollback via a pluggable
//     [ScrollbackProvider]
//   - Alternate buffer: used by full-screen apps (vim, less, htop), never
//     has scrollback
//
// Applications switch buffers via CSI ?1049h/l:
//
//	if term.IsAlternateScreen() {
//	    // full-screen app is running
//	}
//
// # Cells and Attributes
//
//	cell := term.Cell(row, col)
//	if cell != nil {
//	    fmt.Printf("Char: %c\n", cell.Char)
//	    fmt.Printf("Bold: %v\n", cell.HasFlag(vtcore.CellFlagBold))
//	}
//
// # Colors
//
// Colors are stored using [image/color]. The package supports named
// (0-15), 256-color palette, and 24-bit true color, plus a palette save
// stack (XTPUSHCOLORS/XTPOPCOLORS) in [PalettePushPop].
//
// # Scrollback, Viewport, and Selection
//
//	var storage vtcore.ScrollbackProvider = newMyScrollback() // host-supplied implementation
//	term := vtcore.New(vtcore.WithScrollback(storage))
//
//	term.ScrollUpBy(10)           // move the viewport into history
//	term.ScrollToBottom()
//
//	term.BeginSelection(vtcore.Position{Row: 0, Col: 0}, vtcore.SelectionLinear)
//	term.ExtendSelection(vtcore.Position{Row: 2, Col: 10})
//	text := term.SelectedText()
//
// # PTY and the Terminal Loop
//
// [RunLoop] wires a [PTY] to a Terminal: it reads from the pty in a
// dedicated goroutine, hands bytes to [Terminal.Write], and after each
// read it dispatches calls MarkDirty on the [RenderDoubleBuffer] attached
// to the Terminal, if any.
//
//	p, _ := vtcore.OpenPTY(exec.Command("bash"), vtcore.PTYSize{Rows: 24, Cols: 80})
//	loop := vtcore.NewRunLoop(term, p)
//	go loop.Run(ctx)
//
// # Providers
//
// Providers handle terminal events and queries, all optional with no-op
// defaults: [BellProvider], [TitleProvider], [ClipboardProvider],
// [ScrollbackProvider], [RecordingProvider], [SizeProvider],
// [ShellIntegrationProvider].
//
// # Middleware
//
// Middleware intercepts ansicode.Handler calls for custom behavior; see
// [Middleware] and [Terminal.SetMiddleware].
//
// # Logging and Errors
//
// Terminal never returns parser errors to the caller. Instead it logs
// them, at a level chosen per error kind, through an injectable
// [*zap.Logger] (see [WithLogger]); the default is silent.
//
// # Images
//
// Sixel and Kitty graphics protocols are supported; decoded images larger
// than 4096 pixels on a side are downscaled with [golang.org/x/image/draw],
// and images are tracked by a memory-budgeted [ImageManager]. Terminal
// stores images at their decoded size; [RasterizeToCells] resamples an
// image to a cell grid for hosts that want it.
//
// # Thread Safety
//
// All Terminal methods are safe for concurrent use via internal locking.
package vtcore

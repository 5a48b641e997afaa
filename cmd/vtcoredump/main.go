// Command vtcoredump spawns a child process on a real pty, drives it
// through a Terminal, and periodically prints a text render-buffer
// snapshot — an end-to-end demonstration of the C1 (pty)/C14 (façade +
// run loop) wiring with no GUI or rasterization dependency.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/vtcore/vtcore"
)

func main() {
	var (
		rows int
		cols int
		rate time.Duration
	)

	root := &cobra.Command{
		Use:   "vtcoredump -- <command> [args...]",
		Short: "Run a command on a pty and dump periodic render-buffer snapshots",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args, rows, cols, rate)
		},
	}

	root.Flags().IntVar(&rows, "rows", 24, "terminal rows")
	root.Flags().IntVar(&cols, "cols", 80, "terminal columns")
	root.Flags().DurationVar(&rate, "interval", time.Second, "snapshot interval")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vtcoredump:", err)
		os.Exit(1)
	}
}

func run(args []string, rows, cols int, rate time.Duration) error {
	term := vtcore.New(vtcore.WithSize(rows, cols))
	rdb := vtcore.NewRenderDoubleBuffer(term)

	child := exec.Command(args[0], args[1:]...)
	p, err := vtcore.OpenPTY(child, vtcore.PTYSize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return fmt.Errorf("open pty: %w", err)
	}

	loop := vtcore.NewRunLoop(term, p)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		if err := loop.Run(ctx); err != nil && ctx.Err() == nil {
			fmt.Fprintln(os.Stderr, "vtcoredump: run loop exited:", err)
		}
	}()
	defer loop.Close()

	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			rdb.MarkDirty(nil)
			rdb.TrySwapBuffers()
			printSnapshot(rdb.Front())
		}
	}
}

func printSnapshot(rb *vtcore.RenderBuffer) {
	if rb == nil {
		return
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[2J\x1b[H--- generation %d ---\n", rb.Generation)
	for row := 0; row < rb.Rows; row++ {
		for col := 0; col < rb.Cols; col++ {
			c := rb.Cells[row][col].Char
			if c == 0 {
				c = ' '
			}
			sb.WriteRune(c)
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}

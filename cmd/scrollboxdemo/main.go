// Scrollbox demo: a text file (or generated lines) inside a scrollbox with
// custom thumbs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func main() {
	log.SetFlags(log.Llongfile)

	opt := &Options{}
	flag.StringVar(&opt.Filename, "file", "", "text file to show, reloaded when it changes")
	flag.IntVar(&opt.Lines, "lines", 200, "generated lines when no file is given")
	flag.IntVar(&opt.Cols, "cols", 120, "generated columns when no file is given")
	flag.IntVar(&opt.Width, "width", 0, "scrollbox width, zero uses the window width")
	flag.IntVar(&opt.Height, "height", 0, "scrollbox height, zero uses the window height")
	flag.StringVar(&opt.Background, "bg", "", "scrollbox background color (ex: #f0f0f0)")
	flag.Float64Var(&opt.FontSize, "fontsize", 12, "font size")
	flag.IntVar(&opt.FPS, "fps", 37, "draw frame rate")
	flag.Parse()

	if err := run(opt); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

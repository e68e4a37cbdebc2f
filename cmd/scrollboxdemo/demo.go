package main

import (
	"fmt"
	"image"
	"io/ioutil"
	"log"
	"strings"

	"github.com/jmigpin/scrollbox/driver"
	"github.com/jmigpin/scrollbox/util/fontutil"
	"github.com/jmigpin/scrollbox/util/fswatcher"
	"github.com/jmigpin/scrollbox/util/imageutil"
	"github.com/jmigpin/scrollbox/util/uiutil"
	"github.com/jmigpin/scrollbox/util/uiutil/event"
	"github.com/jmigpin/scrollbox/util/uiutil/widget"
	"github.com/pkg/errors"
)

type Options struct {
	Filename   string
	Lines      int
	Cols       int
	Width      int
	Height     int
	Background string
	FontSize   float64
	FPS        int
}

type Demo struct {
	opt    *Options
	ui     *uiutil.BasicUI
	box    *widget.ScrollBox
	text   *widget.TextContent
	fw     *fswatcher.FileWatcher
	events chan interface{}
}

func run(opt *Options) error {
	d, err := NewDemo(opt)
	if err != nil {
		return err
	}
	defer d.Close()
	d.EventLoop()
	return nil
}

func NewDemo(opt *Options) (*Demo, error) {
	d := &Demo{opt: opt, events: make(chan interface{}, 64)}

	win, err := driver.NewWindow()
	if err != nil {
		return nil, errors.Wrap(err, "new window")
	}
	d.ui = uiutil.NewBasicUI(d.events, win, "scrollbox")
	if opt.FPS > 0 {
		d.ui.DrawFrameRate = opt.FPS
	}

	ff := fontutil.DefaultFont().FontFace2(opt.FontSize)
	d.text = widget.NewTextContent(d.ui, ff)
	d.box = widget.NewScrollBox(d.ui, d.text)
	d.box.SetWidth(opt.Width)
	d.box.SetHeight(opt.Height)
	if opt.Background != "" {
		c, err := imageutil.ParseRgbaHex(opt.Background)
		if err != nil {
			d.ui.Close()
			return nil, errors.Wrap(err, "bg")
		}
		d.box.Background = c
	}

	root := &placeNode{ctx: d.ui}
	root.Append(d.box)
	d.ui.SetRootNode(root)

	if err := d.loadContent(); err != nil {
		d.ui.Close()
		return nil, err
	}
	if opt.Filename != "" {
		fw, err := fswatcher.NewFileWatcher(opt.Filename)
		if err != nil {
			d.ui.Close()
			return nil, err
		}
		d.fw = fw
		go d.watchLoop()
	}

	d.box.Mount()
	d.ui.StartWindowEvents()
	return d, nil
}

func (d *Demo) Close() {
	d.box.Unmount()
	if d.fw != nil {
		if err := d.fw.Close(); err != nil {
			log.Println(err)
		}
	}
	d.ui.Close()
}

//----------

func (d *Demo) EventLoop() {
	for {
		ev := <-d.events
		if _, ok := ev.(*event.WindowClose); ok {
			return
		}
		d.ui.HandleEvent(ev)
		d.ui.PaintIfTime()
	}
}

//----------

func (d *Demo) loadContent() error {
	if d.opt.Filename == "" {
		d.text.SetText(generatedText(d.opt.Lines, d.opt.Cols))
		return nil
	}
	b, err := ioutil.ReadFile(d.opt.Filename)
	if err != nil {
		return errors.Wrap(err, "load content")
	}
	d.text.SetText(string(b))
	return nil
}

// Runs outside the ui goroutine. Reloads are sent to the ui goroutine.
func (d *Demo) watchLoop() {
	for ev := range d.fw.Events() {
		switch t := ev.(type) {
		case error:
			log.Println(t)
		case *fswatcher.Event:
			d.ui.RunOnUIThread(func() {
				if err := d.loadContent(); err != nil {
					log.Println(err)
				}
			})
		}
	}
}

//----------

func generatedText(lines, cols int) string {
	sb := strings.Builder{}
	for i := 0; i < lines; i++ {
		if i > 0 {
			sb.WriteString("\n")
		}
		s := fmt.Sprintf("%d: ", i+1)
		for j := 0; len(s) < cols; j++ {
			s += string(rune('a' + (i+j)%26))
		}
		sb.WriteString(s)
	}
	return sb.String()
}

//----------

// Root node: places its single child at the top-left corner with the child
// measured size, limited to the window.
type placeNode struct {
	widget.ENode
	ctx widget.ImageContext
}

func (pn *placeNode) Layout() {
	pn.IterateWrappers2(func(c widget.Node) {
		m := c.Measure(pn.Bounds.Size())
		r := image.Rectangle{Min: pn.Bounds.Min, Max: pn.Bounds.Min.Add(m)}
		c.Embed().Bounds = r.Intersect(pn.Bounds)
	})
}

func (pn *placeNode) Paint() {
	c := pn.TreeThemePaletteColor("bg")
	imageutil.FillRectangle(pn.ctx.Image(), pn.Bounds, c)
}

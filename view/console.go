package view

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI is the interactive terminal front end: a field pane showing the
// grid, side panes with configuration and status, and keybindings that drive
// the simulation.
type ConsoleUI struct {
	c          Controller
	g          *gocui.Gui
	k          []keyBinding
	liveFiller string
	deadFiller string
}

// NewConsoleUI builds the terminal UI on the given controller.
func NewConsoleUI(c Controller) *ConsoleUI {
	t := &ConsoleUI{
		c:          c,
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}

	var err error
	if t.g, err = gocui.NewGui(gocui.OutputNormal); err != nil {
		log.Panicln(err)
	}
	t.g.Mouse = true

	t.k = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Random seed", t.cmdRandomize, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdToggle, "field"},
	}
	t.g.SetManagerFunc(t.layout)
	for _, kb := range t.k {
		h := kb.handler
		if err = t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			log.Panicln(err)
		}
	}
	return t
}

// Start runs the UI main loop until the user quits.
func (t *ConsoleUI) Start() {
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	t.g.Close()
}

// Refresh redraws the field and status panes from a fresh snapshot.
func (t *ConsoleUI) Refresh() {
	f := t.c.Snapshot()
	t.renderField(f)
	t.renderStatus(f)
}

func (t *ConsoleUI) renderField(f Frame) {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("field")
		if e != nil {
			return e
		}
		// the whole field redraws at once; gocui diffs the characters
		v.Clear()

		var (
			maxW, maxH = v.Size()
			width      = f.Grid.GetWidth()
			height     = f.Grid.GetHeight()
			cropped    = width > maxW || height > maxH
			b          bytes.Buffer
		)
		for y := 0; y < height && y < maxH; y++ {
			if y != 0 {
				b.WriteByte('\n')
			}
			if cropped && y == maxH-1 {
				b.WriteString(aurora.Red("The grid is larger than the viewing area").String())
				break
			}
			for x := 0; x < width && x < maxW; x++ {
				if cell, err := f.Grid.Get(x, y); err == nil && cell.IsAlive() {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus(f Frame) {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			v.Clear()
			mode := aurora.Blue("waiting").String()
			if f.Running {
				mode = aurora.Cyan("running").String()
			}
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", f.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live cells", "%v", f.Alive))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", f.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
		}
		if v, e := g.View("configuration"); e == nil {
			v.Clear()
			topology := "bounded"
			if f.Config.Toroidal {
				topology = "toroidal"
			}
			_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", f.Grid.GetWidth(), f.Grid.GetHeight()))
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", f.Config.FrameRate))
			_, _ = fmt.Fprintln(v, t.renderProp("Topology", "%v", topology))
			_, _ = fmt.Fprintln(v, t.renderProp("Max steps", "%v", f.Config.MaxGenerations))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name, valueFormat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Green(name).String()+": "+valueFormat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	leftColumnWidth := 28

	if v, err := g.SetView("configuration", 0, 0, leftColumnWidth, (maxY-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}

	if v, err := g.SetView("status", 0, (maxY-3)/2+1, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("field", leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "World"
		v.Frame = true
	}
	t.Refresh()

	if v, err := g.SetView("help", -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	t.c.Step()
	return nil
}

func (t *ConsoleUI) cmdRun(_ *gocui.View) error {
	t.c.Run()
	return nil
}

func (t *ConsoleUI) cmdStop(_ *gocui.View) error {
	t.c.Stop()
	return nil
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.c.Clear()
	return nil
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.c.Randomize()
	return nil
}

func (t *ConsoleUI) cmdToggle(v *gocui.View) error {
	cx, cy := v.Cursor()
	t.c.Toggle(cx, cy)
	return nil
}

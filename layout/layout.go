package layout

import (
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"sync"

	"github.com/Luismorlan/star_notary/commands"
	"github.com/jroimartin/gocui"
)

type cmd struct {
	str   string
	ready bool
	m     sync.RWMutex
}

var command cmd = cmd{}

// PastCmd is the ViewManager that logs past command.
type PastCmd struct {
	name string
}

// Input box for wallet commands.
type WalletInput struct {
	name string
	cmd  chan commands.ClientCommand
}

type Logger struct {
	name string
}

type Manual struct {
	name string
	path string
}

func (pc *PastCmd) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom left corner.
	v, _ := g.SetView(pc.name, 1, maxY*2/3, maxX/3, maxY-6)
	v.Autoscroll = true
	v.Wrap = true

	command.m.RLock()
	defer command.m.RUnlock()
	if command.ready {
		fmt.Fprintln(v, "> "+command.str)
	}
	command.ready = false

	return nil
}

func (w *WalletInput) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Bottom left.
	v, err := g.SetView(w.name, 1, maxY-5, maxX-1, maxY-1)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	v.Wrap = true
	v.Autoscroll = true
	v.Editor = w
	v.Editable = true
	return nil
}

func (l *Logger) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Right hand side.
	v, _ := g.SetView(l.name, maxX/3+1, 1, maxX-1, maxY-6)
	v.Autoscroll = true
	v.Wrap = true
	return nil
}

func (m *Manual) Layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	// Top left corner.
	v, _ := g.SetView(m.name, 1, 1, maxX/3, maxY*2/3-1)
	v.Autoscroll = true
	v.Wrap = true
	v.Clear()
	dat, err := ioutil.ReadFile(m.path)
	if err != nil {
		g.Close()
		log.Fatal(err)
	}
	fmt.Fprintln(v, string(dat))
	return nil
}

func (w *WalletInput) Edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	switch {
	case key == gocui.KeyEnter:
		// Read buffer.
		s := v.Buffer()
		// Remove \n from string.
		s = strings.Replace(s, "\n", "", -1)
		op, err := commands.CreateClientCommand(s)
		command.m.Lock()
		command.str = s
		if err != nil {
			command.str = s + "\n" + err.Error()
		}
		command.ready = true
		command.m.Unlock()
		if err == nil {
			// If a valid command, send to the wallet for processing.
			w.cmd <- op
		}

		// Reset cursor.
		v.Clear()
		v.SetOrigin(0, 0)
		v.SetCursor(0, 0)

	case ch != 0 && mod == 0:
		v.EditWrite(ch)
	case key == gocui.KeySpace:
		v.EditWrite(' ')
	case key == gocui.KeyBackspace || key == gocui.KeyBackspace2:
		v.EditDelete(true)
	}
}

func SetFocus(name string) func(g *gocui.Gui) error {
	return func(g *gocui.Gui) error {
		_, err := g.SetCurrentView(name)
		return err
	}
}

// Create a GUI, using the command channel to pass commands to the wallet.
func CreateGui(cmd chan commands.ClientCommand, manualPath string) (*gocui.Gui, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}

	g.Cursor = true

	pc := &PastCmd{name: "pastcommand"}
	l := &Logger{name: "logger"}
	m := &Manual{name: "manual", path: manualPath}
	input := &WalletInput{name: "input", cmd: cmd}
	focus := gocui.ManagerFunc(SetFocus("input"))
	g.SetManager(pc, input, l, m, focus)

	if err := g.SetKeybinding("", gocui.KeyCtrlC, gocui.ModNone, quit); err != nil {
		return nil, err
	}

	return g, nil
}

func quit(g *gocui.Gui, v *gocui.View) error {
	return gocui.ErrQuit
}

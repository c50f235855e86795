package chart

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// viewer shows a rendered chart and blocks until the user closes it.
type viewer struct {
	body   string
	closed bool
}

func (v viewer) Init() tea.Cmd {
	return nil
}

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "q", "esc", "enter", "ctrl+c":
			v.closed = true
			return v, tea.Quit
		}
	}
	return v, nil
}

func (v viewer) View() string {
	if v.closed {
		return v.body
	}
	return v.body + "\n" + keyHint.Render("q/esc/enter: close")
}

func hold(body string, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithOutput(out)}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	_, err := tea.NewProgram(viewer{body: body}, opts...).Run()
	return err
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// InputReader abstracts line input so the shell loop is testable.
type InputReader interface {
	// ReadLine blocks for one line and returns it trimmed. io.EOF means the
	// input source is finished.
	ReadLine() (string, error)
}

// PromptingInputReader marks readers that draw their own prompt; the shell
// skips printing one for them.
type PromptingInputReader interface {
	InputReader
	SetPrompt(prompt string)
}

// NewInputReader picks the interactive reader on a TTY and a plain buffered
// reader otherwise. plain forces the buffered reader.
func NewInputReader(plain bool) InputReader {
	if plain || (!isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd())) {
		return NewStdinReader()
	}
	return NewInteractiveReader(50)
}

// StdinReader reads newline-terminated lines from stdin. No editing, no
// history; works with piped input.
type StdinReader struct {
	reader *bufio.Reader
}

func NewStdinReader() *StdinReader {
	return &StdinReader{reader: bufio.NewReader(os.Stdin)}
}

func (r *StdinReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// InteractiveReader reads lines through a textinput program with in-session
// history: up and down walk previous commands, Ctrl+C clears the line,
// Ctrl+D ends the session. Not safe for concurrent use.
type InteractiveReader struct {
	history    []string
	maxHistory int
	prompt     string
}

func NewInteractiveReader(maxHistory int) *InteractiveReader {
	return &InteractiveReader{
		history:    make([]string, 0, maxHistory),
		maxHistory: maxHistory,
		prompt:     "> ",
	}
}

func (r *InteractiveReader) SetPrompt(prompt string) {
	r.prompt = prompt
}

func (r *InteractiveReader) ReadLine() (string, error) {
	input := textinput.New()
	input.Prompt = r.prompt
	input.Focus()
	input.CharLimit = 256
	input.Width = 60

	model := inputModel{
		textInput:    input,
		history:      r.history,
		historyIndex: -1,
	}

	// The input UI renders on stderr, keeping stdout clean for results.
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}
	result, ok := finalModel.(inputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type from input program: %T", finalModel)
	}

	if result.cancelled && result.textInput.Value() == "" {
		return "", io.EOF
	}

	line := strings.TrimSpace(result.textInput.Value())
	if line != "" {
		r.remember(line)
	}
	return line, nil
}

func (r *InteractiveReader) remember(line string) {
	// Skip immediate repeats.
	if len(r.history) > 0 && r.history[len(r.history)-1] == line {
		return
	}
	r.history = append(r.history, line)
	if len(r.history) > r.maxHistory {
		r.history = r.history[1:]
	}
}

// inputModel is the bubbletea model behind InteractiveReader.
type inputModel struct {
	textInput    textinput.Model
	history      []string
	historyIndex int    // -1 while not navigating history
	currentInput string // preserved while navigating history
	done         bool
	cancelled    bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlC:
			m.textInput.SetValue("")
			m.done = true
			return m, tea.Quit

		case tea.KeyCtrlD:
			m.cancelled = true
			m.textInput.SetValue("")
			m.done = true
			return m, tea.Quit

		case tea.KeyUp:
			if len(m.history) == 0 {
				return m, nil
			}
			if m.historyIndex == -1 {
				m.currentInput = m.textInput.Value()
				m.historyIndex = len(m.history) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textInput.SetValue(m.history[m.historyIndex])
			m.textInput.CursorEnd()
			return m, nil

		case tea.KeyDown:
			if m.historyIndex == -1 {
				return m, nil
			}
			if m.historyIndex < len(m.history)-1 {
				m.historyIndex++
				m.textInput.SetValue(m.history[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.textInput.SetValue(m.currentInput)
			}
			m.textInput.CursorEnd()
			return m, nil
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	return m.textInput.View()
}

// MockInputReader feeds a scripted sequence of lines and then io.EOF. Used
// by the shell tests.
type MockInputReader struct {
	lines []string
	index int
}

func NewMockInputReader(lines ...string) *MockInputReader {
	return &MockInputReader{lines: lines}
}

func (r *MockInputReader) ReadLine() (string, error) {
	if r.index >= len(r.lines) {
		return "", io.EOF
	}
	line := r.lines[r.index]
	r.index++
	return strings.TrimSpace(line), nil
}

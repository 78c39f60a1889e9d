package domain

// Statistics is the structured summary of a transition table, suitable for
// JSON output or rendering into generated documentation.
type Statistics struct {
	Machine        string `json:"machine,omitempty" yaml:"machine,omitempty"`
	States         int    `json:"states" yaml:"states"`
	VisibleInputs  int    `json:"visible_inputs" yaml:"visible_inputs"`
	HiddenInputs   int    `json:"hidden_inputs" yaml:"hidden_inputs"`
	Transitions    int    `json:"transitions" yaml:"transitions"`
	SelfLoops      int    `json:"self_loops" yaml:"self_loops"`
	TerminalStates int    `json:"terminal_states" yaml:"terminal_states"`
	Initial        State  `json:"initial" yaml:"initial"`
}

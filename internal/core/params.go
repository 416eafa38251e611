package core

// ParamType tells a surface how Value was formatted.
type ParamType string

const (
	ParamTypeInt      ParamType = "int"
	ParamTypeFloat    ParamType = "float"
	ParamTypeDuration ParamType = "duration" // time.Duration.String
)

// Parameter is one labelled board setting or run figure, already formatted.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup is a titled block of the info dialog.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot is what Controller.Parameters reports: the board
// settings plus the figures of the current run.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lines flattens the snapshot into "Label: value" lines, one group header
// per group.
func (s ParameterSnapshot) Lines() []string {
	var out []string
	for _, group := range s.Groups {
		if group.Name != "" {
			out = append(out, group.Name)
		}
		for _, p := range group.Params {
			out = append(out, "  "+p.Label+": "+p.Value)
		}
	}
	return out
}

package module

import "fmt"

// Kind classifies what happened to one discovered module.
type Kind int

const (
	Invoked Kind = iota
	NotFound
	Failed
)

func (k Kind) String() string {
	switch k {
	case Invoked:
		return "invoked"
	case NotFound:
		return "not_found"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome records the result of one module in a discovery pass. Err is set
// only for Failed.
type Outcome struct {
	Kind       Kind
	Name       string
	SourcePath string
	Err        error
}

// Message renders the outcome as a session log line.
func (o Outcome) Message() string {
	switch o.Kind {
	case Invoked:
		return fmt.Sprintf("Module %s summoned.", o.Name)
	case NotFound:
		return fmt.Sprintf("Module %s not found.", o.Name)
	default:
		return fmt.Sprintf("Module %s failed: %v", o.Name, o.Err)
	}
}

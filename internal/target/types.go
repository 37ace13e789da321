package target

// TargetType is the kind of binary a target produces.
type TargetType string

const (
	TypeClient  TargetType = "Client"
	TypeServer  TargetType = "Server"
	TypeEditor  TargetType = "Editor"
	TypeGame    TargetType = "Game"
	TypeProgram TargetType = "Program"
)

// typePrefix is the enum qualifier accepted in front of a type name.
const typePrefix = "TargetType."

// TargetTypes returns every recognised target type in declaration order.
func TargetTypes() []TargetType {
	return []TargetType{TypeClient, TypeServer, TypeEditor, TypeGame, TypeProgram}
}

// Known reports whether t is one of the recognised target types.
func (t TargetType) Known() bool {
	switch t {
	case TypeClient, TypeServer, TypeEditor, TypeGame, TypeProgram:
		return true
	}
	return false
}

func (t TargetType) String() string { return string(t) }

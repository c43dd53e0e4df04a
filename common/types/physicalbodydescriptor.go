package types

// PhysicalBodyDescriptor is set as UserData on Box2D Physical bodies to be able to determine collider and collidee from Box2D contact callbacks
type PhysicalBodyDescriptor struct {
	Type _physicaltype
	ID   string
}

type _physicaltype string

func (t _physicaltype) String() string {
	switch t {
	case PhysicalBodyDescriptorType.Tank:
		return "Tank"
	}

	return "UnkownType"
}

// Only tanks have a Box2D body; ammo, targets and power-ups are resolved by the arena itself.
var PhysicalBodyDescriptorType = struct {
	Tank _physicaltype
}{
	Tank: _physicaltype("t"),
}

func MakePhysicalBodyDescriptor(type_ _physicaltype, id string) PhysicalBodyDescriptor {
	return PhysicalBodyDescriptor{
		Type: type_,
		ID:   id,
	}
}

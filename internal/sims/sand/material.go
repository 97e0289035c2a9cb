package sand

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedMaterial reports a material with no density, phase or
	// display mapping. Encountering one during a tick is fatal.
	ErrUnsupportedMaterial = errors.New("unsupported material")
	// ErrInvalidOperation reports a flow-bias update on a non-liquid.
	ErrInvalidOperation = errors.New("invalid material operation")
)

// Kind enumerates the substances a cell can hold.
type Kind uint8

const (
	KindEmpty Kind = iota
	KindStone
	KindSand
	KindWater
	KindLava
)

// Phase classifies which update rule applies to a material.
type Phase uint8

const (
	PhaseUnknown Phase = iota
	PhaseSolid
	PhaseLiquid
	PhaseGas
)

// FlowBias is the horizontal direction a liquid moved last.
type FlowBias uint8

const (
	FlowNone FlowBias = iota
	FlowLeft
	FlowRight
)

const (
	kindMask  = 0x0f
	biasShift = 4
	biasMask  = 0x30
)

// Material is an immutable cell value. The low nibble holds the kind and,
// for liquids, bits 4-5 hold the flow bias.
type Material uint8

const (
	Empty Material = Material(KindEmpty)
	Stone Material = Material(KindStone)
	Sand  Material = Material(KindSand)
	Water Material = Material(KindWater)
	Lava  Material = Material(KindLava)
)

type kindInfo struct {
	name    string
	density int
	phase   Phase
}

var kinds = [...]kindInfo{
	KindEmpty: {name: "empty", density: 0, phase: PhaseGas},
	KindStone: {name: "stone", density: 100, phase: PhaseSolid},
	KindSand:  {name: "sand", density: 3, phase: PhaseSolid},
	KindWater: {name: "water", density: 1, phase: PhaseLiquid},
	KindLava:  {name: "lava", density: 2, phase: PhaseLiquid},
}

func lookup(k Kind) (kindInfo, bool) {
	if int(k) >= len(kinds) {
		return kindInfo{}, false
	}
	return kinds[k], true
}

// Kinds lists every supported kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindEmpty, KindStone, KindSand, KindWater, KindLava}
}

// Of returns the material for a kind with no flow bias.
func Of(k Kind) (Material, error) {
	if _, ok := lookup(k); !ok {
		return Empty, fmt.Errorf("%w: kind %d", ErrUnsupportedMaterial, k)
	}
	return Material(k), nil
}

// ParseMaterial resolves a material by its lower-case name.
func ParseMaterial(name string) (Material, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if kinds[k].name == name {
			return Of(k)
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnsupportedMaterial, name)
}

// Kind returns the substance without flow bias.
func (m Material) Kind() Kind { return Kind(m & kindMask) }

// Validate reports ErrUnsupportedMaterial for values with an unknown kind.
func (m Material) Validate() error {
	if _, ok := lookup(m.Kind()); !ok {
		return fmt.Errorf("%w: %#02x", ErrUnsupportedMaterial, uint8(m))
	}
	return nil
}

// Density ranks materials; a denser material displaces a lighter one.
// Unsupported kinds report -1.
func (m Material) Density() int {
	info, ok := lookup(m.Kind())
	if !ok {
		return -1
	}
	return info.density
}

// Phase returns the update class of the material.
func (m Material) Phase() Phase {
	info, _ := lookup(m.Kind())
	return info.phase
}

// IsStatic reports whether the material is skipped by the update sweep.
func (m Material) IsStatic() bool {
	k := m.Kind()
	return k == KindEmpty || k == KindStone
}

// IsLiquid reports whether the material carries a flow bias.
func (m Material) IsLiquid() bool { return m.Phase() == PhaseLiquid }

// CanDisplace reports whether m may move into a cell holding target.
// Equal densities never displace, so a material never displaces its own kind.
func (m Material) CanDisplace(target Material) bool {
	return m.Density() > target.Density()
}

// FlowBias returns the stored bias of a liquid and FlowNone for anything else.
func (m Material) FlowBias() FlowBias {
	if !m.IsLiquid() {
		return FlowNone
	}
	return FlowBias((m & biasMask) >> biasShift)
}

// WithFlowBias returns a copy of the liquid with bias b.
func (m Material) WithFlowBias(b FlowBias) (Material, error) {
	if !m.IsLiquid() {
		return m, fmt.Errorf("%w: %s has no flow bias", ErrInvalidOperation, m)
	}
	if b > FlowRight {
		return m, fmt.Errorf("%w: flow bias %d", ErrInvalidOperation, b)
	}
	return Material(uint8(m.Kind()) | uint8(b)<<biasShift), nil
}

func (m Material) String() string {
	info, ok := lookup(m.Kind())
	if !ok {
		return fmt.Sprintf("material(%#02x)", uint8(m))
	}
	if b := m.FlowBias(); b != FlowNone {
		return info.name + "(" + b.String() + ")"
	}
	return info.name
}

func (k Kind) String() string {
	if info, ok := lookup(k); ok {
		return info.name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (b FlowBias) String() string {
	switch b {
	case FlowLeft:
		return "left"
	case FlowRight:
		return "right"
	default:
		return "none"
	}
}

func (p Phase) String() string {
	switch p {
	case PhaseSolid:
		return "solid"
	case PhaseLiquid:
		return "liquid"
	case PhaseGas:
		return "gas"
	default:
		return "unknown"
	}
}

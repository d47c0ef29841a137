package tsalign

// Strategies composes the behaviours that vary between alignment runs as a
// struct of plain fields rather than a type hierarchy, per spec §9: "small
// traits with marker types composed at type-instantiation time... in a
// dynamically-typed target language, substitute virtual dispatch guarded by
// a struct-of-function-pointers or an enum-of-strategies." Go has neither
// Rust's trait objects nor a dynamic-dispatch requirement here, so this is a
// plain struct of switches consulted directly in successor generation.
type Strategies struct {
	// AllowTemplateSwitch enables the TemplateSwitchEntrance transition at
	// all; false collapses the search to an ordinary affine-gap alignment.
	AllowTemplateSwitch bool

	// MaxTemplateSwitchCount caps how many template switches (counted when
	// they are entered) a single alignment path may contain. Zero means unlimited when
	// AllowTemplateSwitch is set (bounded in practice by MinSecondaryLength
	// and the sequence lengths).
	MaxTemplateSwitchCount int

	// AllowSecondaryDeletions permits gap steps (not just match/substitution)
	// while inside a secondary alignment detour.
	AllowSecondaryDeletions bool

	// AllowLowerBoundShortcut names the
	// TemplateSwitchLowerBoundShortcutStrategy from spec §4.6. Successor
	// generation does not consult it: no shortcut successors are generated,
	// whichever value it holds.
	AllowLowerBoundShortcut bool
}

// DefaultStrategies returns the permissive defaults: template switching
// enabled, unlimited count, secondary deletions allowed, no shortcut.
func DefaultStrategies() Strategies {
	return Strategies{
		AllowTemplateSwitch:     true,
		MaxTemplateSwitchCount:  0,
		AllowSecondaryDeletions: true,
		AllowLowerBoundShortcut: false,
	}
}

// PrimaryOnlyStrategies disables template switching entirely, reducing the
// search to a plain affine-gap alignment -- used by tests and by callers
// who only want a classical alignment.
func PrimaryOnlyStrategies() Strategies {
	return Strategies{AllowTemplateSwitch: false}
}

func (s Strategies) templateSwitchAllowed(switchesSoFar int) bool {
	if !s.AllowTemplateSwitch {
		return false
	}
	if s.MaxTemplateSwitchCount > 0 && switchesSoFar >= s.MaxTemplateSwitchCount {
		return false
	}

	return true
}

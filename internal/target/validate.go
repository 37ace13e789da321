package target

// Validate checks a single descriptor as a batch of one. A nil descriptor
// has no name and fails with ErrDuplicateName.
func Validate(d *Descriptor) error {
	if d == nil {
		return &ValidationError{Reason: ErrDuplicateName, Detail: "descriptor is nil"}
	}
	return ValidateBatch([]*Descriptor{d})[0]
}

// ValidateBatch checks every descriptor of one load batch and returns one
// error slot per input, nil when the descriptor is valid. Checks run in
// order and stop at the first failure:
//
//  1. the name is non-empty and not taken by an earlier descriptor
//  2. the target type is recognised
//  3. both versions are known and not deprecated
//  4. the extra module list has no duplicates
//
// The first descriptor to use a name owns it even if it fails a later
// check. Nil entries are skipped and keep a nil slot; callers use them for
// records that already failed to load.
func ValidateBatch(ds []*Descriptor) []error {
	errs := make([]error, len(ds))
	owners := make(map[string]int, len(ds))

	for i, d := range ds {
		if d == nil {
			continue
		}
		if d.name == "" {
			errs[i] = invalid(d, ErrDuplicateName, "name is empty")
			continue
		}
		if first, taken := owners[d.name]; taken {
			errs[i] = invalid(d, ErrDuplicateName, "already declared by target #%d", first+1)
			continue
		}
		owners[d.name] = i
		errs[i] = validateOne(d)
	}
	return errs
}

func validateOne(d *Descriptor) error {
	if !d.targetType.Known() {
		return invalid(d, ErrUnknownTargetType, "%q is not one of %v", d.targetType, TargetTypes())
	}

	switch {
	case !d.buildSettings.Known():
		return invalid(d, ErrUnsupportedVersion, "build settings version %s", describeDeclared(d.declaredBuildSettings))
	case d.buildSettings.Deprecated():
		return invalid(d, ErrUnsupportedVersion, "build settings version %s is deprecated", d.buildSettings)
	}

	switch {
	case !d.includeOrder.Known():
		return invalid(d, ErrUnsupportedVersion, "include order version %s", describeDeclared(d.declaredIncludeOrder))
	case d.includeOrder.Deprecated():
		return invalid(d, ErrUnsupportedVersion, "include order version %s is deprecated", d.includeOrder)
	}

	seen := make(map[string]struct{}, len(d.extraModules))
	for _, m := range d.extraModules {
		if _, dup := seen[m]; dup {
			return invalid(d, ErrDuplicateModule, "%q is listed more than once", m)
		}
		seen[m] = struct{}{}
	}
	return nil
}

func describeDeclared(raw string) string {
	if raw == "" {
		return "is not declared"
	}
	return "\"" + raw + "\" is not recognised"
}

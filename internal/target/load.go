package target

import (
	"fmt"
	"strings"

	"github.com/vk/targetplan/internal/config"
	"github.com/vk/targetplan/internal/ident"
)

// Load turns a raw record into a Descriptor. It fails with *ParseError when
// the record carries a decode error, when the name or target type is
// missing or malformed, or when a module name is malformed.
//
// A well-formed but unrecognised target type or version loads fine and is
// left for the validator to reject. Version sentinels are substituted here.
func Load(rec *config.TargetRecord) (*Descriptor, error) {
	if rec == nil {
		return nil, &ParseError{Msg: "nil record"}
	}
	fail := func(field, msg string, err error) error {
		return &ParseError{Target: rec.Name, Source: rec.Source, Field: field, Msg: msg, Err: err}
	}

	if rec.Err != nil {
		return nil, fail("", "", rec.Err)
	}

	if rec.Name == "" {
		return nil, fail("name", "is required", nil)
	}
	name, err := ident.Parse(rec.Name)
	if err != nil {
		return nil, fail("name", "", err)
	}

	rawType := strings.TrimPrefix(rec.TargetType, typePrefix)
	if rawType == "" {
		return nil, fail("targetType", "is required", nil)
	}
	if _, err := ident.Parse(rawType); err != nil {
		return nil, fail("targetType", "", err)
	}

	extra := make([]string, 0, len(rec.ExtraModules))
	for i, m := range rec.ExtraModules {
		modName, err := ident.Parse(m)
		if err != nil {
			return nil, fail(fmt.Sprintf("extraModules[%d]", i), "", err)
		}
		extra = append(extra, modName)
	}

	d := &Descriptor{
		name:                  name,
		targetType:            TargetType(rawType),
		extraModules:          extra,
		source:                rec.Source,
		declaredBuildSettings: rec.BuildSettingsVersion,
		declaredIncludeOrder:  rec.IncludeOrderVersion,
	}
	// Unrecognised names stay Unknown; the validator reports them.
	d.buildSettings, _ = ParseBuildSettingsVersion(rec.BuildSettingsVersion)
	d.includeOrder, _ = ParseIncludeOrderVersion(rec.IncludeOrderVersion)

	return d, nil
}

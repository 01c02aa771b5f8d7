package typeconfig

import (
	"log/slog"
	"strings"
)

// Recover salvages option/value pairs from a possibly corrupted document.
//
// Lines with more than one "=" are discarded, since the boundary between
// option and value cannot be trusted. Lines that do not parse are discarded
// too. Recovery never fails; when an option appears more than once the last
// occurrence wins. Options not in the schema are kept in the result.
func (tc *TypeConfig) Recover(doc string) map[string]string {
	recovered := make(map[string]string)

	for _, line := range CleanLines(doc) {
		if strings.Count(line, "=") > 1 {
			tc.logger.Debug("discarding ambiguous line",
				slog.String("line", line),
			)

			continue
		}

		l, err := ParseLine(line)
		if err != nil {
			tc.logger.Debug("discarding malformed line",
				slog.String("line", line),
				slog.Any("error", err),
			)

			continue
		}

		recovered[l.Option] = l.Value
	}

	return recovered
}

// HealedOptions returns a copy of the schema in which every option that has a
// non-empty recovered value in doc uses that value as its default. The schema
// itself is not modified.
func (tc *TypeConfig) HealedOptions(doc string) []Definition {
	recovered := tc.Recover(doc)

	tc.mu.RLock()
	defer tc.mu.RUnlock()

	defs := tc.snapshot()
	for i := range defs {
		if v := recovered[defs[i].Name]; v != "" {
			defs[i].Default = v
		}
	}

	return defs
}

// HealConfig rebuilds a well-formed document from a corrupted one.
//
// Every option in the schema is rendered. Options with a non-empty value
// recovered by [TypeConfig.Recover] have their Default overwritten in place
// with that value, so the schema remembers the user's value for later calls
// such as [TypeConfig.CreateConfig] and [TypeConfig.ValidateOption]. Use
// [TypeConfig.HealedOptions] with [FormatOption] for a non-mutating variant.
func (tc *TypeConfig) HealConfig(doc string, withTypeTag bool) string {
	recovered := tc.Recover(doc)

	tc.mu.Lock()
	defer tc.mu.Unlock()

	for _, name := range tc.order {
		def := tc.options[name]
		if v := recovered[name]; v != "" && v != def.Default {
			tc.logger.Debug("adopting recovered value as default",
				slog.String("option", name),
				slog.String("value", v),
			)

			def.Default = v
		}
	}

	return formatAll(tc.snapshot(), withTypeTag)
}

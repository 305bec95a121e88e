package tools

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/leapstack-labs/playhdl/pkg/core"
)

func genToolKind() gopter.Gen {
	kinds := core.AllToolKinds()
	values := make([]interface{}, len(kinds))
	for i, k := range kinds {
		values[i] = k
	}
	return gen.OneConstOf(values...)
}

func genDesignKind() gopter.Gen {
	designs := core.AllDesignKinds()
	values := make([]interface{}, len(designs))
	for i, d := range designs {
		values[i] = d
	}
	return gen.OneConstOf(values...)
}

func genSources() gopter.Gen {
	return gen.SliceOfN(3, gen.Identifier()).Map(func(names []string) []string {
		out := make([]string, len(names))
		for i, n := range names {
			out[i] = n + ".sv"
		}
		return out
	})
}

func noEmpty(cmds []string) bool {
	for _, c := range cmds {
		if c == "" {
			return false
		}
	}
	return true
}

func TestGenerateScriptProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("supported pairs produce non-empty build and sim without empty commands", prop.ForAll(
		func(kind core.ToolKind, design core.DesignKind, srcs []string) bool {
			spec, err := Lookup(kind)
			if err != nil || !spec.Supports(design) {
				return true
			}
			p, err := GenerateScript(core.ToolConfig{Kind: kind}, design, srcs)
			if err != nil {
				return false
			}
			return len(p.Build) > 0 && len(p.Sim) > 0 && len(p.Waves) > 0 &&
				noEmpty(p.Build) && noEmpty(p.Sim) && noEmpty(p.Waves)
		},
		genToolKind(), genDesignKind(), genSources(),
	))

	properties.Property("unsupported pairs fail only with UnsupportedDesignError", prop.ForAll(
		func(kind core.ToolKind, design core.DesignKind, srcs []string) bool {
			spec, err := Lookup(kind)
			if err != nil || spec.Supports(design) {
				return true
			}
			_, err = GenerateScript(core.ToolConfig{Kind: kind}, design, srcs)
			var unsupported *core.UnsupportedDesignError
			var mismatch *core.ConfigMismatchError
			return errors.As(err, &unsupported) && !errors.As(err, &mismatch)
		},
		genToolKind(), genDesignKind(), genSources(),
	))

	properties.Property("every source appears rewritten relative to the workdir", prop.ForAll(
		func(kind core.ToolKind, srcs []string) bool {
			p, err := GenerateScript(core.ToolConfig{Kind: kind}, core.DesignSV, srcs)
			if err != nil {
				return false
			}
			for _, s := range srcs {
				found := false
				for _, c := range p.Build {
					if containsWord(c, "../"+s) {
						found = true
						break
					}
				}
				if !found {
					return false
				}
			}
			return true
		},
		genToolKind(), genSources(),
	))

	properties.Property("mismatched kinds always fail with ConfigMismatchError", prop.ForAll(
		func(impl, declared core.ToolKind) bool {
			spec, err := Lookup(impl)
			if err != nil {
				return false
			}
			_, err = spec.New(core.ToolConfig{Kind: declared})
			if impl == declared {
				return err == nil
			}
			var mismatch *core.ConfigMismatchError
			return errors.As(err, &mismatch)
		},
		genToolKind(), genToolKind(),
	))

	properties.TestingRun(t)
}

func containsWord(cmd, word string) bool {
	for _, f := range strings.Fields(cmd) {
		if f == word {
			return true
		}
	}
	return false
}

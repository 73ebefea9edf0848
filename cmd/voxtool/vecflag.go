package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/voxelcast/pkg/math"
)

// vec3Value is a flag.Value holding a comma-separated x,y,z triple.
type vec3Value struct {
	v   math.Vec3
	set bool
}

func (f *vec3Value) String() string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vec3Value) Set(s string) error {
	v, err := parseVec3(s)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

// vecFlag registers a vector flag. An empty def leaves the flag unset.
func vecFlag(fs *flag.FlagSet, name, def, usage string) *vec3Value {
	f := &vec3Value{}
	if def != "" {
		v, err := parseVec3(def)
		if err != nil {
			panic(err)
		}
		f.v = v
	}
	fs.Var(f, name, usage)
	return f
}

func parseVec3(s string) (math.Vec3, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return math.Vec3{}, fmt.Errorf("invalid component %q: %w", p, err)
		}
		vals = append(vals, x)
	}
	return math.Vec3FromSlice(vals)
}

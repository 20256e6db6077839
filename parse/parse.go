// Package parse decodes YAML and JSON documents into ir trees. Object
// field order is preserved so that schema iteration is deterministic.
package parse

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/signadot/structmatch/ir"
)

func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	res, err := fromDecoded(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return res, nil
}

func fromDecoded(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		fields := make([]string, len(x))
		values := make([]*ir.Node, len(x))
		for i, item := range x {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprintf("%v", item.Key)
			}
			n, err := fromDecoded(item.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = k
			values[i] = n
		}
		return ir.FromFields(fields, values), nil
	case []any:
		vs := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := fromDecoded(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return ir.FromSlice(vs), nil
	case time.Time:
		return ir.FromString(x.Format(time.RFC3339)), nil
	default:
		return ir.FromAny(v)
	}
}

package semantic

import (
	"strconv"
	"strings"

	"github.com/stoclang/stoc/internal/types"
)

// mangle computes the link-time name of a function: name_Np_T1T2…TN_rR,
// where N is the parameter count and Ti/R are basic-type names. The
// function "main" is never mangled, since the emitted IR's entry point
// must remain exactly "main".
func mangle(name string, params []types.Type, result types.Type) string {
	if name == "main" {
		return name
	}

	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteString("_")
	sb.WriteString(strconv.Itoa(len(params)))
	sb.WriteString("p_")
	for _, p := range params {
		sb.WriteString(p.Name())
	}
	sb.WriteString("_r")
	sb.WriteString(result.Name())
	return sb.String()
}

package constraintsolve

import (
	"encoding/base64"
	"fmt"
)

// encodeID turns an arbitrary node/color id into a collision-free,
// SAT-variable-safe token: urlsafe base64 without padding, with an "empty"
// fallback for the empty string. Node ids are caller-chosen and may contain
// colons, commas, or anything else unfriendly to a variable name, so raw
// ids are never interpolated into names directly.
func encodeID(raw string) string {
	enc := base64.RawURLEncoding.EncodeToString([]byte(raw))
	if enc == "" {
		return "empty"
	}

	return enc
}

// colorVarName names the Boolean "node n is colored colorIdx" variable.
func colorVarName(node string, colorIdx int) string {
	return fmt.Sprintf("col_%s_%d", encodeID(node), colorIdx)
}

// unusedVarName names the Boolean "node n holds no color" variable.
func unusedVarName(node string) string {
	return fmt.Sprintf("unused_%s", encodeID(node))
}

// distVarName names the Boolean "node n is at BFS-distance k from color's
// start terminal" variable, k ranging over [0, V] with k==V reserved as the
// "not this color" sentinel.
func distVarName(color, node string, k int) string {
	return fmt.Sprintf("dist_%s_%d", encodeID(color+"::"+node), k)
}

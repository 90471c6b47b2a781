package pattern

// CapKind classifies a capture span for the machine's post-processing. The
// compiler stores kinds opaquely; only the translator chooses them.
type CapKind byte

const (
	// CapStr captures the matched substring verbatim.
	CapStr CapKind = iota

	// CapAction runs the attached code payload on match.
	CapAction

	// The CapJSON kinds reify the matched span into a JSON value.
	CapJSONString
	CapJSONInt
	CapJSONFloat
	CapJSONArray
	CapJSONObject

	// CapJSONFieldFixed attaches the inner value to an object under the
	// field name carried by the open marker; CapJSONFieldDynamic takes
	// the field name from a sibling capture at run time.
	CapJSONFieldFixed
	CapJSONFieldDynamic
)

var capKindNames = []string{
	"Str",
	"Action",
	"JString",
	"JInt",
	"JFloat",
	"JArray",
	"JObject",
	"JFieldFixed",
	"JFieldDynamic",
}

func (k CapKind) String() string {
	i := int(k)
	assert(i < len(capKindNames), "capture kind %d out of range", i)
	return capKindNames[i]
}
